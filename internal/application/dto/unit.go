package dto

import "github.com/andriansp/epc-catalog-api/internal/domain/entity"

// UnitRequest cuerpo de create/update de unit.
type UnitRequest struct {
	NameEN      *string `json:"unit_name_en"`
	NameCN      *string `json:"unit_name_cn"`
	Description *string `json:"unit_description"`
}

// UnitResponse representación de salida de una unit.
type UnitResponse struct {
	ID          string  `json:"unit_id"`
	NameEN      *string `json:"unit_name_en"`
	NameCN      *string `json:"unit_name_cn"`
	Description *string `json:"unit_description"`
	AuditFields
}

// NewUnitResponse mapea la entidad a su DTO de salida.
func NewUnitResponse(u *entity.Unit) UnitResponse {
	return UnitResponse{
		ID:          u.ID,
		NameEN:      u.NameEN,
		NameCN:      u.NameCN,
		Description: u.Description,
		AuditFields: NewAuditFields(u.Audit),
	}
}

// NewUnitList mapea un slice de entidades.
func NewUnitList(us []entity.Unit) []UnitResponse {
	out := make([]UnitResponse, 0, len(us))
	for i := range us {
		out = append(out, NewUnitResponse(&us[i]))
	}
	return out
}
