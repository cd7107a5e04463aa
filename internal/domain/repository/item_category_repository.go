package repository

import (
	"time"

	"github.com/andriansp/epc-catalog-api/internal/domain"
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
)

// ItemCategoryFilters filtros adicionales del listado de item categories.
type ItemCategoryFilters struct {
	MasterCategoryNameEN string
	DokumenName          string
}

// ItemCategoryListRow fila denormalizada del listado: datos del dokumen más los
// campos de master category coalescidos sobre las dos rutas de clasificación.
type ItemCategoryListRow struct {
	DokumenID            *string    `json:"dokumen_id"`
	DokumenName          *string    `json:"dokumen_name"`
	CreatedAt            *time.Time `json:"created_at"`
	MasterCategoryID     *string    `json:"master_category_id"`
	MasterCategoryNameEN *string    `json:"master_category_name_en"`
	MasterCategoryNameCN *string    `json:"master_category_name_cn"`
}

// ItemCategoryDetailRow detalle con los nombres de la unidad resueltos por
// left join sobre units.unit_name_en.
type ItemCategoryDetailRow struct {
	entity.ItemCategoryDetail
	UnitNameEN *string
	UnitNameCN *string
}

// ItemCategoryWithRelations agregado de lectura: la fila del padre con la
// jerarquía resuelta (coalescida según su clasificación) y la lista de detalles.
type ItemCategoryWithRelations struct {
	entity.ItemCategory
	Classification     domain.Classification
	DokumenName        *string
	DokumenDescription *string
	TypeCategoryNameEN *string
	TypeCategoryNameCN *string
	Hierarchy          domain.HierarchyFields
	Details            []ItemCategoryDetailRow
}

// DokumenItemRow fila del listado de item categories de un dokumen concreto.
// CategoryNameEN/CN vienen solo de la ruta directa; los campos de master
// category se coalescen sobre ambas rutas.
type DokumenItemRow struct {
	ItemCategoryID       string  `json:"item_category_id"`
	DokumenID            *string `json:"dokumen_id"`
	MasterCategoryID     *string `json:"master_category_id"`
	MasterCategoryNameEN *string `json:"master_category_name_en"`
	MasterCategoryNameCN *string `json:"master_category_name_cn"`
	CategoryNameEN       *string `json:"category_name_en"`
	CategoryNameCN       *string `json:"category_name_cn"`
	TypeCategoryNameEN   *string `json:"type_category_name_en"`
	TypeCategoryNameCN   *string `json:"type_category_name_cn"`
}

// ItemCategoryRepository puerto de persistencia para ItemCategory.
// Las mutaciones multi-paso (create/update/remove/restore con detalles) las
// orquesta el caso de uso dentro de una transacción; aquí solo hay pasos.
type ItemCategoryRepository interface {
	FindAll(q ListQuery, f ItemCategoryFilters) ([]ItemCategoryListRow, int, error)
	FindByID(id string) (*ItemCategoryWithRelations, error)
	FindByDokumenID(dokumenID string, q ListQuery) ([]DokumenItemRow, int, error)
	FindLiveByID(id string) (*entity.ItemCategory, error)
	ListLiveByDokumenID(dokumenID string) ([]entity.ItemCategory, error)
	Insert(ic *entity.ItemCategory, actorID string) (*entity.ItemCategory, error)
	UpdateFields(ic *entity.ItemCategory, actorID string) (*entity.ItemCategory, error)
	SoftDelete(id, actorID string) (*entity.ItemCategory, error)
	Restore(id, actorID string) (*entity.ItemCategory, error)
}

// ItemCategoryDetailRepository puerto de persistencia para ItemCategoryDetail.
// Los borrados/restauraciones por padre son los pasos de cascada del agregado;
// el hard delete por padre implementa el reemplazo total en update.
type ItemCategoryDetailRepository interface {
	ListLiveByItemCategoryID(itemCategoryID string) ([]entity.ItemCategoryDetail, error)
	Insert(d *entity.ItemCategoryDetail, actorID string) error
	InsertMany(ds []entity.ItemCategoryDetail, actorID string) error
	HardDeleteByItemCategoryID(itemCategoryID string) error
	SoftDeleteByItemCategoryID(itemCategoryID, actorID string) error
	RestoreByItemCategoryID(itemCategoryID, actorID string) error
}
