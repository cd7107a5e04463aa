package dto

import "github.com/andriansp/epc-catalog-api/internal/domain/entity"

// MasterCategoryRequest cuerpo de create/update de master category.
type MasterCategoryRequest struct {
	NameEN      *string `json:"master_category_name_en"`
	NameCN      *string `json:"master_category_name_cn"`
	Description *string `json:"master_category_description"`
}

// MasterCategoryResponse representación de salida de una master category.
type MasterCategoryResponse struct {
	ID          string  `json:"master_category_id"`
	NameEN      *string `json:"master_category_name_en"`
	NameCN      *string `json:"master_category_name_cn"`
	Description *string `json:"master_category_description"`
	AuditFields
}

// NewMasterCategoryResponse mapea la entidad a su DTO de salida.
func NewMasterCategoryResponse(mc *entity.MasterCategory) MasterCategoryResponse {
	return MasterCategoryResponse{
		ID:          mc.ID,
		NameEN:      mc.NameEN,
		NameCN:      mc.NameCN,
		Description: mc.Description,
		AuditFields: NewAuditFields(mc.Audit),
	}
}

// NewMasterCategoryList mapea un slice de entidades.
func NewMasterCategoryList(mcs []entity.MasterCategory) []MasterCategoryResponse {
	out := make([]MasterCategoryResponse, 0, len(mcs))
	for i := range mcs {
		out = append(out, NewMasterCategoryResponse(&mcs[i]))
	}
	return out
}
