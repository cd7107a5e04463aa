package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andriansp/epc-catalog-api/internal/domain"
)

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Classify — preferencia entre las dos rutas de clasificación
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_RutaIndirectaGanaSiAmbasPresentes(t *testing.T) {
	c := domain.Classify(strPtr("tc-1"), strPtr("cat-1"))

	assert.Equal(t, domain.ViaTypeCategory, c.Kind,
		"con ambas referencias pobladas gana la ruta vía type_category")
	assert.Equal(t, "tc-1", c.TypeCategoryID)
	assert.Empty(t, c.CategoryID, "la ruta perdedora no debe exponerse")
}

func TestClassify_SoloCategoriaDirecta(t *testing.T) {
	c := domain.Classify(nil, strPtr("cat-1"))

	assert.Equal(t, domain.ViaCategoryDirect, c.Kind)
	assert.Equal(t, "cat-1", c.CategoryID)
	assert.Empty(t, c.TypeCategoryID)
}

func TestClassify_SoloTypeCategory(t *testing.T) {
	c := domain.Classify(strPtr("tc-1"), nil)

	assert.Equal(t, domain.ViaTypeCategory, c.Kind)
	assert.Equal(t, "tc-1", c.TypeCategoryID)
}

func TestClassify_SinReferencias(t *testing.T) {
	c := domain.Classify(nil, nil)
	assert.Equal(t, domain.Unclassified, c.Kind)
}

// La cadena vacía cuenta como ausente, igual que nil.
func TestClassify_CadenaVaciaEquivaleANil(t *testing.T) {
	c := domain.Classify(strPtr(""), strPtr("cat-1"))
	assert.Equal(t, domain.ViaCategoryDirect, c.Kind,
		"type_category_id vacío no debe contar como presente")

	c = domain.Classify(strPtr(""), strPtr(""))
	assert.Equal(t, domain.Unclassified, c.Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// CoalesceHierarchy — combinación campo a campo de las dos rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestCoalesceHierarchy_PrefiereRutaViaType(t *testing.T) {
	viaType := domain.HierarchyFields{
		CategoryNameEN:       strPtr("Engine"),
		MasterCategoryID:     strPtr("mc-1"),
		MasterCategoryNameEN: strPtr("Powertrain"),
	}
	direct := domain.HierarchyFields{
		CategoryNameEN:       strPtr("Chassis"),
		CategoryNameCN:       strPtr("底盘"),
		MasterCategoryID:     strPtr("mc-2"),
		MasterCategoryNameEN: strPtr("Body"),
		MasterCategoryNameCN: strPtr("车身"),
	}

	out := domain.CoalesceHierarchy(viaType, direct)

	assert.Equal(t, "Engine", *out.CategoryNameEN, "la ruta indirecta gana campo a campo")
	assert.Equal(t, "mc-1", *out.MasterCategoryID)
	assert.Equal(t, "Powertrain", *out.MasterCategoryNameEN)
	// Campos nulos en la ruta indirecta caen a la directa.
	assert.Equal(t, "底盘", *out.CategoryNameCN)
	assert.Equal(t, "车身", *out.MasterCategoryNameCN)
}

func TestCoalesceHierarchy_AmbasVacias(t *testing.T) {
	out := domain.CoalesceHierarchy(domain.HierarchyFields{}, domain.HierarchyFields{})

	assert.Nil(t, out.CategoryNameEN)
	assert.Nil(t, out.CategoryNameCN)
	assert.Nil(t, out.MasterCategoryID)
	assert.Nil(t, out.MasterCategoryNameEN)
	assert.Nil(t, out.MasterCategoryNameCN)
}
