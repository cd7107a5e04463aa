package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

var _ repository.ItemCategoryDetailRepository = (*ItemCategoryDetailRepo)(nil)

const itemCategoryDetailCols = `item_category_detail_id, item_category_id, target_id, part_number,
	catalog_item_name_en, catalog_item_name_ch, description, quantity, unit,
	created_at, created_by, updated_at, updated_by, deleted_at, deleted_by, is_delete`

// ItemCategoryDetailRepo implementación de ItemCategoryDetailRepository.
type ItemCategoryDetailRepo struct {
	q Querier
}

// NewItemCategoryDetailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemCategoryDetailRepository(q Querier) *ItemCategoryDetailRepo {
	return &ItemCategoryDetailRepo{q: q}
}

func scanItemCategoryDetail(row pgx.Row) (*entity.ItemCategoryDetail, error) {
	var d entity.ItemCategoryDetail
	err := row.Scan(&d.ID, &d.ItemCategoryID, &d.TargetID, &d.PartNumber,
		&d.CatalogItemNameEN, &d.CatalogItemNameCH, &d.Description, &d.Quantity, &d.Unit,
		&d.CreatedAt, &d.CreatedBy, &d.UpdatedAt, &d.UpdatedBy,
		&d.DeletedAt, &d.DeletedBy, &d.IsDelete)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListLiveByItemCategoryID detalles vivos de un padre; paso de copia del duplicador.
func (r *ItemCategoryDetailRepo) ListLiveByItemCategoryID(itemCategoryID string) ([]entity.ItemCategoryDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM item_categories_details WHERE item_category_id = $1 AND deleted_at IS NULL AND is_delete = false`, itemCategoryDetailCols)
	rows, err := r.q.Query(context.Background(), query, itemCategoryID)
	if err != nil {
		return nil, fmt.Errorf("list item category details: %w", err)
	}
	defer rows.Close()

	var list []entity.ItemCategoryDetail
	for rows.Next() {
		var d entity.ItemCategoryDetail
		if err := rows.Scan(&d.ID, &d.ItemCategoryID, &d.TargetID, &d.PartNumber,
			&d.CatalogItemNameEN, &d.CatalogItemNameCH, &d.Description, &d.Quantity, &d.Unit,
			&d.CreatedAt, &d.CreatedBy, &d.UpdatedAt, &d.UpdatedBy,
			&d.DeletedAt, &d.DeletedBy, &d.IsDelete); err != nil {
			return nil, fmt.Errorf("scan item category detail: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Insert inserta un detalle estampando actor y timestamps del servidor.
func (r *ItemCategoryDetailRepo) Insert(d *entity.ItemCategoryDetail, actorID string) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO item_categories_details (item_category_detail_id, item_category_id, target_id, part_number,
			catalog_item_name_en, catalog_item_name_ch, description, quantity, unit,
			created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10, now(), now())`,
		d.ID, d.ItemCategoryID, d.TargetID, d.PartNumber,
		d.CatalogItemNameEN, d.CatalogItemNameCH, d.Description, d.Quantity, d.Unit, actorID)
	if err != nil {
		return fmt.Errorf("insert item category detail: %w", err)
	}
	return nil
}

// InsertMany inserta los detalles en orden; lo usa el duplicador para la copia masiva.
func (r *ItemCategoryDetailRepo) InsertMany(ds []entity.ItemCategoryDetail, actorID string) error {
	for i := range ds {
		if err := r.Insert(&ds[i], actorID); err != nil {
			return err
		}
	}
	return nil
}

// HardDeleteByItemCategoryID elimina físicamente todos los detalles del padre.
// Es el paso de reemplazo total del update del agregado: borra también los
// detalles ya soft-deleted.
func (r *ItemCategoryDetailRepo) HardDeleteByItemCategoryID(itemCategoryID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM item_categories_details WHERE item_category_id = $1`, itemCategoryID)
	if err != nil {
		return fmt.Errorf("delete item category details: %w", err)
	}
	return nil
}

// SoftDeleteByItemCategoryID cascada del borrado lógico: marca los detalles
// vivos del padre como borrados.
func (r *ItemCategoryDetailRepo) SoftDeleteByItemCategoryID(itemCategoryID, actorID string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE item_categories_details
		SET is_delete = true, deleted_at = now(), deleted_by = $2, updated_at = now(), updated_by = $2
		WHERE item_category_id = $1 AND deleted_at IS NULL AND is_delete = false`,
		itemCategoryID, actorID)
	if err != nil {
		return fmt.Errorf("soft delete item category details: %w", err)
	}
	return nil
}

// RestoreByItemCategoryID cascada de la restauración: revive los detalles
// actualmente borrados del padre.
func (r *ItemCategoryDetailRepo) RestoreByItemCategoryID(itemCategoryID, actorID string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE item_categories_details
		SET is_delete = false, deleted_at = NULL, deleted_by = NULL, updated_at = now(), updated_by = $2
		WHERE item_category_id = $1 AND is_delete = true AND deleted_at IS NOT NULL`,
		itemCategoryID, actorID)
	if err != nil {
		return fmt.Errorf("restore item category details: %w", err)
	}
	return nil
}
