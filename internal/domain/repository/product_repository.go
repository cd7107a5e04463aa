package repository

import "github.com/andriansp/epc-catalog-api/internal/domain/entity"

// ProductDetailRow detalle de producto con el dokumen referenciado resuelto.
type ProductDetailRow struct {
	entity.ProductDetail
	DokumenName        *string
	DokumenDescription *string
}

// ProductWithDetails agregado de lectura: producto más sus detalles vivos.
type ProductWithDetails struct {
	entity.Product
	Details []ProductDetailRow
}

// ProductRepository puerto de persistencia para Product.
// FindAll devuelve agregados ya agrupados; la paginación corre sobre productos
// lógicos, no sobre filas del join.
type ProductRepository interface {
	FindAll(q ListQuery) ([]ProductWithDetails, int, error)
	FindByID(id string) (*ProductWithDetails, error)
	FindLiveByID(id string) (*entity.Product, error)
	Insert(p *entity.Product, actorID string) (*entity.Product, error)
	UpdateFields(p *entity.Product, actorID string) (*entity.Product, error)
	SoftDelete(id, actorID string) (*entity.Product, error)
	Restore(id, actorID string) (*entity.Product, error)
}

// ProductDetailRepository puerto de persistencia para ProductDetail.
type ProductDetailRepository interface {
	Insert(d *entity.ProductDetail, actorID string) error
	HardDeleteByProductID(productID string) error
	SoftDeleteByProductID(productID, actorID string) error
	RestoreByProductID(productID, actorID string) error
}
