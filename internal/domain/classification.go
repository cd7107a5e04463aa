package domain

// ClassificationKind indica por cuál de las dos rutas alternativas se clasifica
// un ItemCategory.
type ClassificationKind int

const (
	// Unclassified sin ninguna de las dos referencias.
	Unclassified ClassificationKind = iota
	// ViaTypeCategory ruta indirecta: type_category -> category -> master_category.
	// Cuando ambas referencias están pobladas, esta ruta gana.
	ViaTypeCategory
	// ViaCategoryDirect ruta directa: category -> master_category.
	ViaCategoryDirect
)

// Classification clasificación efectiva de un ItemCategory, calculada una sola
// vez al cargar la fila para que lectura puntual y listados no puedan divergir.
type Classification struct {
	Kind           ClassificationKind
	TypeCategoryID string // poblado solo si Kind == ViaTypeCategory
	CategoryID     string // poblado solo si Kind == ViaCategoryDirect
}

// Classify deriva la clasificación a partir de las dos referencias opcionales.
// Preferencia: la ruta indirecta (type_category_id) gana si está presente.
func Classify(typeCategoryID, categoryID *string) Classification {
	if typeCategoryID != nil && *typeCategoryID != "" {
		return Classification{Kind: ViaTypeCategory, TypeCategoryID: *typeCategoryID}
	}
	if categoryID != nil && *categoryID != "" {
		return Classification{Kind: ViaCategoryDirect, CategoryID: *categoryID}
	}
	return Classification{Kind: Unclassified}
}

// HierarchyFields campos de jerarquía aplanados que exponen los listados y la
// lectura puntual (derivados de categories y master_categories).
type HierarchyFields struct {
	CategoryNameEN       *string
	CategoryNameCN       *string
	MasterCategoryID     *string
	MasterCategoryNameEN *string
	MasterCategoryNameCN *string
}

// CoalesceHierarchy combina las dos rutas campo a campo, prefiriendo la ruta
// vía type_category. Es la misma política COALESCE(via_type, via_direct) que
// aplican las consultas SQL de listado.
func CoalesceHierarchy(viaType, direct HierarchyFields) HierarchyFields {
	return HierarchyFields{
		CategoryNameEN:       coalesce(viaType.CategoryNameEN, direct.CategoryNameEN),
		CategoryNameCN:       coalesce(viaType.CategoryNameCN, direct.CategoryNameCN),
		MasterCategoryID:     coalesce(viaType.MasterCategoryID, direct.MasterCategoryID),
		MasterCategoryNameEN: coalesce(viaType.MasterCategoryNameEN, direct.MasterCategoryNameEN),
		MasterCategoryNameCN: coalesce(viaType.MasterCategoryNameCN, direct.MasterCategoryNameCN),
	}
}

func coalesce(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}
