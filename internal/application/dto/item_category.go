package dto

import (
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

// ItemCategoryListRequest listado de item categories: paginación común más los
// filtros propios del módulo.
type ItemCategoryListRequest struct {
	ListRequest
	MasterCategoryNameEN string `json:"master_category_name_en"`
	DokumenName          string `json:"dokumen_name"`
}

// ItemCategoryDetailRequest línea de detalle del cuerpo de create/update.
// Unit es un nombre libre que el escritor resuelve con find-or-create.
type ItemCategoryDetailRequest struct {
	TargetID          *string `json:"target_id"`
	PartNumber        *string `json:"part_number"`
	CatalogItemNameEN *string `json:"catalog_item_name_en"`
	CatalogItemNameCH *string `json:"catalog_item_name_ch"`
	Description       *string `json:"description"`
	Quantity          *int    `json:"quantity"`
	Unit              *string `json:"unit"`
}

// ItemCategoryRequest cuerpo de create/update del agregado. El dokumen llega
// por nombre (find-or-create); las referencias de clasificación por id, con
// cadena vacía tratada como ausente.
type ItemCategoryRequest struct {
	TypeCategoryID *string                     `json:"type_category_id"`
	CategoryID     *string                     `json:"category_id"`
	DokumenName    *string                     `json:"dokumen_name"`
	NameEN         *string                     `json:"item_category_name_en"`
	NameCN         *string                     `json:"item_category_name_cn"`
	Description    *string                     `json:"item_category_description"`
	Foto           *string                     `json:"item_category_foto"`
	DataItems      []ItemCategoryDetailRequest `json:"data_items"`
}

// ItemCategoryDetailResponse línea de detalle en las respuestas, con los
// nombres de la unidad resueltos.
type ItemCategoryDetailResponse struct {
	ID                string  `json:"item_category_detail_id"`
	ItemCategoryID    *string `json:"item_category_id"`
	TargetID          *string `json:"target_id"`
	PartNumber        *string `json:"part_number"`
	CatalogItemNameEN *string `json:"catalog_item_name_en"`
	CatalogItemNameCH *string `json:"catalog_item_name_ch"`
	Description       *string `json:"description"`
	Quantity          *int    `json:"quantity"`
	Unit              *string `json:"unit"`
	UnitNameEN        *string `json:"unit_name_en"`
	UnitNameCN        *string `json:"unit_name_cn"`
	AuditFields
}

// ItemCategoryResponse agregado completo: el padre con todas sus relaciones
// resueltas más la lista de detalles.
type ItemCategoryResponse struct {
	ID                   string                       `json:"item_category_id"`
	TypeCategoryID       *string                      `json:"type_category_id"`
	CategoryID           *string                      `json:"category_id"`
	DokumenID            *string                      `json:"dokumen_id"`
	NameEN               *string                      `json:"item_category_name_en"`
	NameCN               *string                      `json:"item_category_name_cn"`
	Description          *string                      `json:"item_category_description"`
	Foto                 *string                      `json:"item_category_foto"`
	DokumenName          *string                      `json:"dokumen_name"`
	DokumenDescription   *string                      `json:"dokumen_description"`
	TypeCategoryNameEN   *string                      `json:"type_category_name_en"`
	TypeCategoryNameCN   *string                      `json:"type_category_name_cn"`
	CategoryNameEN       *string                      `json:"category_name_en"`
	CategoryNameCN       *string                      `json:"category_name_cn"`
	MasterCategoryID     *string                      `json:"master_category_id"`
	MasterCategoryNameEN *string                      `json:"master_category_name_en"`
	MasterCategoryNameCN *string                      `json:"master_category_name_cn"`
	AuditFields
	DataItems []ItemCategoryDetailResponse `json:"data_items"`
}

// NewItemCategoryResponse mapea el agregado de lectura a su DTO de salida.
func NewItemCategoryResponse(ic *repository.ItemCategoryWithRelations) *ItemCategoryResponse {
	out := &ItemCategoryResponse{
		ID:                   ic.ID,
		TypeCategoryID:       ic.TypeCategoryID,
		CategoryID:           ic.CategoryID,
		DokumenID:            ic.DokumenID,
		NameEN:               ic.NameEN,
		NameCN:               ic.NameCN,
		Description:          ic.Description,
		Foto:                 ic.Foto,
		DokumenName:          ic.DokumenName,
		DokumenDescription:   ic.DokumenDescription,
		TypeCategoryNameEN:   ic.TypeCategoryNameEN,
		TypeCategoryNameCN:   ic.TypeCategoryNameCN,
		CategoryNameEN:       ic.Hierarchy.CategoryNameEN,
		CategoryNameCN:       ic.Hierarchy.CategoryNameCN,
		MasterCategoryID:     ic.Hierarchy.MasterCategoryID,
		MasterCategoryNameEN: ic.Hierarchy.MasterCategoryNameEN,
		MasterCategoryNameCN: ic.Hierarchy.MasterCategoryNameCN,
		AuditFields:          NewAuditFields(ic.Audit),
		DataItems:            make([]ItemCategoryDetailResponse, 0, len(ic.Details)),
	}
	for i := range ic.Details {
		d := &ic.Details[i]
		out.DataItems = append(out.DataItems, ItemCategoryDetailResponse{
			ID:                d.ID,
			ItemCategoryID:    d.ItemCategoryID,
			TargetID:          d.TargetID,
			PartNumber:        d.PartNumber,
			CatalogItemNameEN: d.CatalogItemNameEN,
			CatalogItemNameCH: d.CatalogItemNameCH,
			Description:       d.Description,
			Quantity:          d.Quantity,
			Unit:              d.Unit,
			UnitNameEN:        d.UnitNameEN,
			UnitNameCN:        d.UnitNameCN,
			AuditFields:       NewAuditFields(d.Audit),
		})
	}
	return out
}

// NewItemCategoryEntityResponse mapea la fila del padre sin relaciones; lo
// usa el delete, que devuelve la fila recién borrada.
func NewItemCategoryEntityResponse(ic *entity.ItemCategory) *ItemCategoryResponse {
	return &ItemCategoryResponse{
		ID:             ic.ID,
		TypeCategoryID: ic.TypeCategoryID,
		CategoryID:     ic.CategoryID,
		DokumenID:      ic.DokumenID,
		NameEN:         ic.NameEN,
		NameCN:         ic.NameCN,
		Description:    ic.Description,
		Foto:           ic.Foto,
		AuditFields:    NewAuditFields(ic.Audit),
		DataItems:      []ItemCategoryDetailResponse{},
	}
}

// DokumenItemsHeader cabecera del listado de item categories de un dokumen:
// el nombre del dokumen más los nombres de master category de la primera fila.
type DokumenItemsHeader struct {
	DokumenName          *string `json:"dokumen_name"`
	MasterCategoryNameEN *string `json:"master_category_name_en"`
	MasterCategoryNameCN *string `json:"master_category_name_cn"`
}

// DokumenItemsData payload del listado por dokumen. Header es nil cuando el
// dokumen no existe o no está vivo; en ese caso items viene vacío.
type DokumenItemsData struct {
	Header     *DokumenItemsHeader        `json:"dokumen"`
	Items      []repository.DokumenItemRow `json:"items"`
	Pagination Pagination                 `json:"pagination"`
}
