package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

var _ repository.MasterCategoryRepository = (*MasterCategoryRepo)(nil)

const masterCategoryCols = `master_category_id, master_category_name_en, master_category_name_cn, master_category_description,
	created_at, created_by, updated_at, updated_by, deleted_at, deleted_by, is_delete`

// MasterCategoryRepo implementación de MasterCategoryRepository (usable con pool o tx).
type MasterCategoryRepo struct {
	q Querier
}

// NewMasterCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMasterCategoryRepository(q Querier) *MasterCategoryRepo {
	return &MasterCategoryRepo{q: q}
}

func scanMasterCategory(row pgx.Row) (*entity.MasterCategory, error) {
	var mc entity.MasterCategory
	err := row.Scan(&mc.ID, &mc.NameEN, &mc.NameCN, &mc.Description,
		&mc.CreatedAt, &mc.CreatedBy, &mc.UpdatedAt, &mc.UpdatedBy,
		&mc.DeletedAt, &mc.DeletedBy, &mc.IsDelete)
	if err != nil {
		return nil, err
	}
	return &mc, nil
}

// FindAll lista master categories vivas con búsqueda, orden y paginación.
func (r *MasterCategoryRepo) FindAll(q repository.ListQuery) ([]entity.MasterCategory, int, error) {
	q.Normalize()

	where := `WHERE is_delete = false`
	args := []any{}
	if q.Search != "" {
		args = append(args, ilikePattern(q.Search))
		where += ` AND (master_category_name_en ILIKE $1 OR master_category_name_cn ILIKE $1 OR master_category_description ILIKE $1)`
	}

	query := fmt.Sprintf(`SELECT %s FROM master_categories %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		masterCategoryCols, where,
		qualifySortColumn(q.SortBy, ""), sortDirection(q.SortOrder),
		len(args)+1, len(args)+2)

	rows, err := r.q.Query(context.Background(), query, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list master categories: %w", err)
	}
	defer rows.Close()

	var list []entity.MasterCategory
	for rows.Next() {
		mc, err := scanMasterCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan master category: %w", err)
		}
		list = append(list, *mc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM master_categories ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count master categories: %w", err)
	}
	return list, total, nil
}

// FindByID obtiene una master category viva por ID; (nil, nil) si no existe.
func (r *MasterCategoryRepo) FindByID(id string) (*entity.MasterCategory, error) {
	query := fmt.Sprintf(`SELECT %s FROM master_categories WHERE master_category_id = $1 AND is_delete = false`, masterCategoryCols)
	mc, err := scanMasterCategory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get master category: %w", err)
	}
	return mc, nil
}

// Create inserta estampando actor y timestamps del servidor.
func (r *MasterCategoryRepo) Create(mc *entity.MasterCategory, actorID string) (*entity.MasterCategory, error) {
	if mc.ID == "" {
		mc.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO master_categories (master_category_id, master_category_name_en, master_category_name_cn, master_category_description, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5, now(), now())
		RETURNING %s`, masterCategoryCols)
	out, err := scanMasterCategory(r.q.QueryRow(context.Background(), query,
		mc.ID, mc.NameEN, mc.NameCN, mc.Description, actorID))
	if err != nil {
		return nil, fmt.Errorf("insert master category: %w", err)
	}
	return out, nil
}

// Update actualiza solo filas vivas; (nil, nil) si no hay fila viva con ese ID.
func (r *MasterCategoryRepo) Update(mc *entity.MasterCategory, actorID string) (*entity.MasterCategory, error) {
	query := fmt.Sprintf(`
		UPDATE master_categories
		SET master_category_name_en = $2, master_category_name_cn = $3, master_category_description = $4,
			updated_by = $5, updated_at = now()
		WHERE master_category_id = $1 AND is_delete = false
		RETURNING %s`, masterCategoryCols)
	out, err := scanMasterCategory(r.q.QueryRow(context.Background(), query,
		mc.ID, mc.NameEN, mc.NameCN, mc.Description, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update master category: %w", err)
	}
	return out, nil
}

// SoftDelete marca la fila como borrada solo si está viva.
func (r *MasterCategoryRepo) SoftDelete(id, actorID string) (*entity.MasterCategory, error) {
	query := fmt.Sprintf(`
		UPDATE master_categories
		SET is_delete = true, deleted_at = now(), deleted_by = $2, updated_at = now(), updated_by = $2
		WHERE master_category_id = $1 AND is_delete = false
		RETURNING %s`, masterCategoryCols)
	out, err := scanMasterCategory(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("soft delete master category: %w", err)
	}
	return out, nil
}

// Restore revierte el borrado lógico solo si la fila está borrada.
func (r *MasterCategoryRepo) Restore(id, actorID string) (*entity.MasterCategory, error) {
	query := fmt.Sprintf(`
		UPDATE master_categories
		SET is_delete = false, deleted_at = NULL, deleted_by = NULL, updated_at = now(), updated_by = $2
		WHERE master_category_id = $1 AND is_delete = true AND deleted_at IS NOT NULL
		RETURNING %s`, masterCategoryCols)
	out, err := scanMasterCategory(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("restore master category: %w", err)
	}
	return out, nil
}

// HardDelete elimina la fila de forma permanente.
func (r *MasterCategoryRepo) HardDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM master_categories WHERE master_category_id = $1`, id)
	if err != nil {
		return fmt.Errorf("hard delete master category: %w", err)
	}
	return nil
}
