package dto

import "github.com/andriansp/epc-catalog-api/internal/domain/entity"

// TypeCategoryListRequest listado de type categories con filtro opcional de
// igualdad por category_id.
type TypeCategoryListRequest struct {
	ListRequest
	CategoryID string `json:"category_id"`
}

// TypeCategoryRequest cuerpo de create/update de type category.
type TypeCategoryRequest struct {
	CategoryID  *string `json:"category_id"`
	NameEN      *string `json:"type_category_name_en"`
	NameCN      *string `json:"type_category_name_cn"`
	Description *string `json:"type_category_description"`
	Code        *string `json:"type_category_code"`
}

// TypeCategoryResponse representación de salida de una type category.
type TypeCategoryResponse struct {
	ID          string  `json:"type_category_id"`
	CategoryID  *string `json:"category_id"`
	NameEN      *string `json:"type_category_name_en"`
	NameCN      *string `json:"type_category_name_cn"`
	Description *string `json:"type_category_description"`
	Code        *string `json:"type_category_code"`
	AuditFields
}

// NewTypeCategoryResponse mapea la entidad a su DTO de salida.
func NewTypeCategoryResponse(tc *entity.TypeCategory) TypeCategoryResponse {
	return TypeCategoryResponse{
		ID:          tc.ID,
		CategoryID:  tc.CategoryID,
		NameEN:      tc.NameEN,
		NameCN:      tc.NameCN,
		Description: tc.Description,
		Code:        tc.Code,
		AuditFields: NewAuditFields(tc.Audit),
	}
}

// NewTypeCategoryList mapea un slice de entidades.
func NewTypeCategoryList(tcs []entity.TypeCategory) []TypeCategoryResponse {
	out := make([]TypeCategoryResponse, 0, len(tcs))
	for i := range tcs {
		out = append(out, NewTypeCategoryResponse(&tcs[i]))
	}
	return out
}
