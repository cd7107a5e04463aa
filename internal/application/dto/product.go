package dto

import (
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

// ProductDetailRequest línea de detalle del cuerpo de create/update. El
// dokumen se referencia por id; no hay find-or-create en este módulo.
type ProductDetailRequest struct {
	DokumenID   *string `json:"dokumen_id"`
	NameEN      *string `json:"product_detail_name_en"`
	NameCN      *string `json:"product_detail_name_cn"`
	Description *string `json:"product_detail_description"`
}

// ProductRequest cuerpo de create/update del agregado product.
type ProductRequest struct {
	NameEN      *string                `json:"product_name_en"`
	NameCN      *string                `json:"product_name_cn"`
	Description *string                `json:"product_description"`
	VinNumber   *string                `json:"vin_number"`
	ModelType   *string                `json:"model_type"`
	Dimensi     *string                `json:"dimensi"`
	ModelEngine *string                `json:"model_engine"`
	DataDetails []ProductDetailRequest `json:"data_details"`
}

// ProductDetailResponse línea de detalle con el dokumen referenciado resuelto.
type ProductDetailResponse struct {
	ID                 string  `json:"product_detail_id"`
	ProductID          string  `json:"product_id"`
	DokumenID          *string `json:"dokumen_id"`
	NameEN             *string `json:"product_detail_name_en"`
	NameCN             *string `json:"product_detail_name_cn"`
	Description        *string `json:"product_detail_description"`
	DokumenName        *string `json:"dokumen_name"`
	DokumenDescription *string `json:"dokumen_description"`
	AuditFields
}

// ProductResponse agregado completo de salida.
type ProductResponse struct {
	ID          string  `json:"product_id"`
	NameEN      *string `json:"product_name_en"`
	NameCN      *string `json:"product_name_cn"`
	Description *string `json:"product_description"`
	VinNumber   *string `json:"vin_number"`
	ModelType   *string `json:"model_type"`
	Dimensi     *string `json:"dimensi"`
	ModelEngine *string `json:"model_engine"`
	AuditFields
	DataDetails []ProductDetailResponse `json:"data_details"`
}

// NewProductResponse mapea el agregado de lectura a su DTO de salida.
func NewProductResponse(p *repository.ProductWithDetails) *ProductResponse {
	out := &ProductResponse{
		ID:          p.ID,
		NameEN:      p.NameEN,
		NameCN:      p.NameCN,
		Description: p.Description,
		VinNumber:   p.VinNumber,
		ModelType:   p.ModelType,
		Dimensi:     p.Dimensi,
		ModelEngine: p.ModelEngine,
		AuditFields: NewAuditFields(p.Audit),
		DataDetails: make([]ProductDetailResponse, 0, len(p.Details)),
	}
	for i := range p.Details {
		d := &p.Details[i]
		out.DataDetails = append(out.DataDetails, ProductDetailResponse{
			ID:                 d.ID,
			ProductID:          d.ProductID,
			DokumenID:          d.DokumenID,
			NameEN:             d.NameEN,
			NameCN:             d.NameCN,
			Description:        d.Description,
			DokumenName:        d.DokumenName,
			DokumenDescription: d.DokumenDescription,
			AuditFields:        NewAuditFields(d.Audit),
		})
	}
	return out
}

// NewProductEntityResponse mapea la fila del producto sin detalles; lo usa el
// delete, que devuelve la fila recién borrada.
func NewProductEntityResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		NameEN:      p.NameEN,
		NameCN:      p.NameCN,
		Description: p.Description,
		VinNumber:   p.VinNumber,
		ModelType:   p.ModelType,
		Dimensi:     p.Dimensi,
		ModelEngine: p.ModelEngine,
		AuditFields: NewAuditFields(p.Audit),
		DataDetails: []ProductDetailResponse{},
	}
}

// NewProductList mapea los agregados del listado.
func NewProductList(ps []repository.ProductWithDetails) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for i := range ps {
		out = append(out, *NewProductResponse(&ps[i]))
	}
	return out
}
