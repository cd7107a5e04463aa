package dto

import "github.com/andriansp/epc-catalog-api/internal/domain/entity"

// CategoryRequest cuerpo de create/update de category. El nombre de la master
// category es una copia denormalizada que envía el caller, no se deriva.
type CategoryRequest struct {
	MasterCategoryID     *string `json:"master_category_id"`
	MasterCategoryNameEN *string `json:"master_category_name_en"`
	NameEN               *string `json:"category_name_en"`
	NameCN               *string `json:"category_name_cn"`
	Description          *string `json:"category_description"`
	Code                 *string `json:"categories_code"`
}

// CategoryResponse representación de salida de una category.
type CategoryResponse struct {
	ID                   string  `json:"category_id"`
	MasterCategoryID     *string `json:"master_category_id"`
	MasterCategoryNameEN *string `json:"master_category_name_en"`
	NameEN               *string `json:"category_name_en"`
	NameCN               *string `json:"category_name_cn"`
	Description          *string `json:"category_description"`
	Code                 *string `json:"categories_code"`
	AuditFields
}

// NewCategoryResponse mapea la entidad a su DTO de salida.
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:                   c.ID,
		MasterCategoryID:     c.MasterCategoryID,
		MasterCategoryNameEN: c.MasterCategoryNameEN,
		NameEN:               c.NameEN,
		NameCN:               c.NameCN,
		Description:          c.Description,
		Code:                 c.Code,
		AuditFields:          NewAuditFields(c.Audit),
	}
}

// NewCategoryList mapea un slice de entidades.
func NewCategoryList(cs []entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for i := range cs {
		out = append(out, NewCategoryResponse(&cs[i]))
	}
	return out
}
