package entity

// Unit unidad de medida. Se referencia por nombre (unit_name_en), no por ID,
// desde ItemCategoryDetail.
type Unit struct {
	ID          string
	NameEN      *string
	NameCN      *string
	Description *string
	Audit
}
