package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifySortColumn(t *testing.T) {
	// Identificador simple: se antepone el alias.
	assert.Equal(t, "d.dokumen_name", qualifySortColumn("dokumen_name", "d"))

	// Columna ya calificada: pasa tal cual.
	assert.Equal(t, "mc.master_category_name_en", qualifySortColumn("mc.master_category_name_en", "d"))

	// Sin alias: identificador simple sin prefijo.
	assert.Equal(t, "created_at", qualifySortColumn("created_at", ""))

	// Vacío o sospechoso cae al orden por defecto.
	assert.Equal(t, "d.created_at", qualifySortColumn("", "d"))
	assert.Equal(t, "d.created_at", qualifySortColumn("name; DROP TABLE dokumen", "d"))
	assert.Equal(t, "d.created_at", qualifySortColumn("UPPER(name)", "d"))
	assert.Equal(t, "d.created_at", qualifySortColumn("a.b.c", "d"))
}

func TestSortDirection(t *testing.T) {
	assert.Equal(t, "asc", sortDirection("asc"))
	assert.Equal(t, "asc", sortDirection("ASC"))
	assert.Equal(t, "desc", sortDirection("desc"))
	assert.Equal(t, "desc", sortDirection(""))
	assert.Equal(t, "desc", sortDirection("descending; --"))
}

func TestEmptyToNil(t *testing.T) {
	assert.Nil(t, emptyToNil(nil))

	vacio := ""
	assert.Nil(t, emptyToNil(&vacio), "cadena vacía equivale a ausente")

	id := "0f1e2d3c"
	assert.Equal(t, &id, emptyToNil(&id))
}

func TestIlikePattern(t *testing.T) {
	assert.Equal(t, "%motor%", ilikePattern("motor"))
	assert.Equal(t, "%%", ilikePattern(""))
}

func TestIsSafeIdentifier(t *testing.T) {
	assert.True(t, isSafeIdentifier("created_at"))
	assert.True(t, isSafeIdentifier("d.dokumen_name"))
	assert.True(t, isSafeIdentifier("col2"))

	assert.False(t, isSafeIdentifier("a.b.c"), "más de un punto no es una columna calificada")
	assert.False(t, isSafeIdentifier("name "))
	assert.False(t, isSafeIdentifier("name;"))
	assert.False(t, isSafeIdentifier("NAME"), "solo se aceptan minúsculas")
}
