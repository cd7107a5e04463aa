package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

const liveItemCategoriesWhere = `WHERE ic.deleted_at IS NULL AND ic.is_delete = false`

// ──────────────────────────────────────────────────────────────────────────────
// itemCategoryListWhere
// ──────────────────────────────────────────────────────────────────────────────

func TestItemCategoryListWhere_SinBusquedaSoloFilasVivas(t *testing.T) {
	where, args := itemCategoryListWhere(repository.ListQuery{}, repository.ItemCategoryFilters{})

	assert.Equal(t, liveItemCategoriesWhere, where)
	assert.Empty(t, args)
}

func TestItemCategoryListWhere_BusquedaVaciaEquivaleAOmitida(t *testing.T) {
	omitida, argsOmitida := itemCategoryListWhere(repository.ListQuery{}, repository.ItemCategoryFilters{})
	vacia, argsVacia := itemCategoryListWhere(repository.ListQuery{Search: ""}, repository.ItemCategoryFilters{})

	assert.Equal(t, omitida, vacia, "search '' desactiva el predicado, no es match de cadena vacía")
	assert.Equal(t, argsOmitida, argsVacia)
}

func TestItemCategoryListWhere_BusquedaCubreDokumenYAmbasRutas(t *testing.T) {
	where, args := itemCategoryListWhere(repository.ListQuery{Search: "motor"}, repository.ItemCategoryFilters{})

	assert.Equal(t, []any{"%motor%"}, args)
	assert.Contains(t, where, "d.dokumen_name ILIKE $1")
	assert.Contains(t, where, "mc_type.master_category_name_en ILIKE $1")
	assert.Contains(t, where, "mc_type.master_category_name_cn ILIKE $1")
	assert.Contains(t, where, "mc_direct.master_category_name_en ILIKE $1")
	assert.Contains(t, where, "mc_direct.master_category_name_cn ILIKE $1")
}

func TestItemCategoryListWhere_FiltrosNumeranArgumentosEnOrden(t *testing.T) {
	where, args := itemCategoryListWhere(
		repository.ListQuery{Search: "motor"},
		repository.ItemCategoryFilters{MasterCategoryNameEN: "Engine", DokumenName: "EPC"},
	)

	assert.Equal(t, []any{"%motor%", "%Engine%", "%EPC%"}, args)
	assert.Contains(t, where, "mc_type.master_category_name_en ILIKE $2")
	assert.Contains(t, where, "mc_direct.master_category_name_en ILIKE $2")
	assert.Contains(t, where, "d.dokumen_name ILIKE $3")
}

// ──────────────────────────────────────────────────────────────────────────────
// dokumenItemsWhere
// ──────────────────────────────────────────────────────────────────────────────

func TestDokumenItemsWhere_SinBusquedaSoloDokumenYVivas(t *testing.T) {
	where, args := dokumenItemsWhere(repository.ListQuery{})

	assert.Equal(t, `WHERE ic.dokumen_id = $1 AND ic.deleted_at IS NULL AND ic.is_delete = false`, where)
	assert.Empty(t, args)

	vacia, argsVacia := dokumenItemsWhere(repository.ListQuery{Search: ""})
	assert.Equal(t, where, vacia)
	assert.Equal(t, args, argsVacia)
}

func TestDokumenItemsWhere_BusquedaSoloNombresDeMaster(t *testing.T) {
	where, args := dokumenItemsWhere(repository.ListQuery{Search: "engine"})

	assert.Equal(t, []any{"%engine%"}, args)
	assert.Contains(t, where, "mc_type.master_category_name_en ILIKE $2")
	assert.Contains(t, where, "mc_direct.master_category_name_en ILIKE $2")
	assert.Contains(t, where, "mc_type.master_category_name_cn ILIKE $2")
	assert.Contains(t, where, "mc_direct.master_category_name_cn ILIKE $2")
	assert.NotContains(t, where, "dokumen_name ILIKE",
		"la búsqueda por dokumen no filtra sobre el nombre del propio dokumen")
}
