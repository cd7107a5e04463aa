package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

var _ repository.ProductDetailRepository = (*ProductDetailRepo)(nil)

// ProductDetailRepo implementación de ProductDetailRepository.
type ProductDetailRepo struct {
	q Querier
}

// NewProductDetailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductDetailRepository(q Querier) *ProductDetailRepo {
	return &ProductDetailRepo{q: q}
}

// Insert inserta un detalle. La referencia al dokumen llega ya validada como
// id existente o NULL (los detalles de producto no hacen find-or-create).
func (r *ProductDetailRepo) Insert(d *entity.ProductDetail, actorID string) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO products_details (product_detail_id, product_id, dokumen_id,
			product_detail_name_en, product_detail_name_cn, product_detail_description,
			created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7, now(), now())`,
		d.ID, d.ProductID, emptyToNil(d.DokumenID),
		d.NameEN, d.NameCN, d.Description, actorID)
	if err != nil {
		return fmt.Errorf("insert product detail: %w", err)
	}
	return nil
}

// HardDeleteByProductID paso de reemplazo total del update del agregado.
func (r *ProductDetailRepo) HardDeleteByProductID(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM products_details WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete product details: %w", err)
	}
	return nil
}

// SoftDeleteByProductID cascada del borrado lógico del producto.
func (r *ProductDetailRepo) SoftDeleteByProductID(productID, actorID string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE products_details
		SET is_delete = true, deleted_at = now(), deleted_by = $2, updated_at = now(), updated_by = $2
		WHERE product_id = $1 AND deleted_at IS NULL AND is_delete = false`,
		productID, actorID)
	if err != nil {
		return fmt.Errorf("soft delete product details: %w", err)
	}
	return nil
}

// RestoreByProductID cascada de la restauración del producto.
func (r *ProductDetailRepo) RestoreByProductID(productID, actorID string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE products_details
		SET is_delete = false, deleted_at = NULL, deleted_by = NULL, updated_at = now(), updated_by = $2
		WHERE product_id = $1 AND is_delete = true AND deleted_at IS NOT NULL`,
		productID, actorID)
	if err != nil {
		return fmt.Errorf("restore product details: %w", err)
	}
	return nil
}
