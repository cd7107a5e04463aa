package entity

// ItemCategory categoría de ítems de catálogo. Tiene dos referencias de
// clasificación alternativas e independientemente opcionales: TypeCategoryID
// (ruta indirecta hacia Category/MasterCategory) y CategoryID (ruta directa).
// Es dueño exclusivo de su colección de ItemCategoryDetail.
type ItemCategory struct {
	ID             string
	TypeCategoryID *string
	CategoryID     *string
	DokumenID      *string
	NameEN         *string
	NameCN         *string
	Description    *string
	Foto           *string // URL o path opaco; el almacenamiento es colaborador externo
	Audit
}

// ItemCategoryDetail fila de detalle propiedad de un ItemCategory; su existencia
// está atada al padre (reemplazo completo en update, cascada en delete/restore).
type ItemCategoryDetail struct {
	ID                string
	ItemCategoryID    *string
	TargetID          *string
	PartNumber        *string
	CatalogItemNameEN *string
	CatalogItemNameCH *string
	Description       *string
	Quantity          *int
	Unit              *string // nombre libre, resuelto contra units.unit_name_en
	Audit
}
