package dto

import (
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

// DokumenRequest cuerpo de create/update de dokumen.
type DokumenRequest struct {
	Name        *string `json:"dokumen_name"`
	Description *string `json:"dokumen_description"`
}

// DokumenResponse representación de salida de un dokumen.
type DokumenResponse struct {
	ID          string  `json:"dokumen_id"`
	Name        *string `json:"dokumen_name"`
	Description *string `json:"dokumen_description"`
	AuditFields
}

// DokumenListItem fila del listado con la etiqueta compuesta
// "<dokumen> - <category> - <type category>".
type DokumenListItem struct {
	DokumenResponse
	NameAll *string `json:"dokumen_name_all"`
}

// NewDokumenResponse mapea la entidad a su DTO de salida.
func NewDokumenResponse(d *entity.Dokumen) DokumenResponse {
	return DokumenResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: NewAuditFields(d.Audit),
	}
}

// NewDokumenListItems mapea las filas del listado agrupado.
func NewDokumenListItems(rows []repository.DokumenListRow) []DokumenListItem {
	out := make([]DokumenListItem, 0, len(rows))
	for i := range rows {
		out = append(out, DokumenListItem{
			DokumenResponse: NewDokumenResponse(&rows[i].Dokumen),
			NameAll:         rows[i].NameAll,
		})
	}
	return out
}
