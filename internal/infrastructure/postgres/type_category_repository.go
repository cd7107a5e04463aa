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

var _ repository.TypeCategoryRepository = (*TypeCategoryRepo)(nil)

const typeCategoryCols = `type_category_id, category_id, type_category_name_en, type_category_name_cn,
	type_category_description, type_category_code, created_at, created_by, updated_at, updated_by, deleted_at, deleted_by, is_delete`

// TypeCategoryRepo implementación de TypeCategoryRepository (usable con pool o tx).
type TypeCategoryRepo struct {
	q Querier
}

// NewTypeCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTypeCategoryRepository(q Querier) *TypeCategoryRepo {
	return &TypeCategoryRepo{q: q}
}

func scanTypeCategory(row pgx.Row) (*entity.TypeCategory, error) {
	var tc entity.TypeCategory
	err := row.Scan(&tc.ID, &tc.CategoryID, &tc.NameEN, &tc.NameCN,
		&tc.Description, &tc.Code,
		&tc.CreatedAt, &tc.CreatedBy, &tc.UpdatedAt, &tc.UpdatedBy,
		&tc.DeletedAt, &tc.DeletedBy, &tc.IsDelete)
	if err != nil {
		return nil, err
	}
	return &tc, nil
}

// FindAll lista type categories vivas, con filtro opcional por category_id.
func (r *TypeCategoryRepo) FindAll(q repository.ListQuery, categoryID string) ([]entity.TypeCategory, int, error) {
	q.Normalize()

	where := `WHERE is_delete = false`
	args := []any{}
	if categoryID != "" {
		args = append(args, categoryID)
		where += fmt.Sprintf(` AND category_id = $%d`, len(args))
	}
	if q.Search != "" {
		args = append(args, ilikePattern(q.Search))
		n := len(args)
		where += fmt.Sprintf(` AND (type_category_name_en ILIKE $%d OR type_category_name_cn ILIKE $%d OR type_category_description ILIKE $%d)`, n, n, n)
	}

	query := fmt.Sprintf(`SELECT %s FROM type_categories %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		typeCategoryCols, where,
		qualifySortColumn(q.SortBy, ""), sortDirection(q.SortOrder),
		len(args)+1, len(args)+2)

	rows, err := r.q.Query(context.Background(), query, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list type categories: %w", err)
	}
	defer rows.Close()

	var list []entity.TypeCategory
	for rows.Next() {
		tc, err := scanTypeCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan type category: %w", err)
		}
		list = append(list, *tc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM type_categories `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count type categories: %w", err)
	}
	return list, total, nil
}

// FindByID obtiene una type category viva por ID; (nil, nil) si no existe.
func (r *TypeCategoryRepo) FindByID(id string) (*entity.TypeCategory, error) {
	query := fmt.Sprintf(`SELECT %s FROM type_categories WHERE type_category_id = $1 AND is_delete = false`, typeCategoryCols)
	tc, err := scanTypeCategory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get type category: %w", err)
	}
	return tc, nil
}

// Create inserta estampando actor y timestamps del servidor.
func (r *TypeCategoryRepo) Create(tc *entity.TypeCategory, actorID string) (*entity.TypeCategory, error) {
	if tc.ID == "" {
		tc.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO type_categories (type_category_id, category_id, type_category_name_en, type_category_name_cn, type_category_description, type_category_code, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7, now(), now())
		RETURNING %s`, typeCategoryCols)
	out, err := scanTypeCategory(r.q.QueryRow(context.Background(), query,
		tc.ID, emptyToNil(tc.CategoryID), tc.NameEN, tc.NameCN, tc.Description, tc.Code, actorID))
	if err != nil {
		return nil, fmt.Errorf("insert type category: %w", err)
	}
	return out, nil
}

// Update actualiza solo filas vivas; (nil, nil) si no hay fila viva con ese ID.
func (r *TypeCategoryRepo) Update(tc *entity.TypeCategory, actorID string) (*entity.TypeCategory, error) {
	query := fmt.Sprintf(`
		UPDATE type_categories
		SET category_id = $2, type_category_name_en = $3, type_category_name_cn = $4,
			type_category_description = $5, type_category_code = $6, updated_by = $7, updated_at = now()
		WHERE type_category_id = $1 AND is_delete = false
		RETURNING %s`, typeCategoryCols)
	out, err := scanTypeCategory(r.q.QueryRow(context.Background(), query,
		tc.ID, emptyToNil(tc.CategoryID), tc.NameEN, tc.NameCN, tc.Description, tc.Code, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update type category: %w", err)
	}
	return out, nil
}

// SoftDelete marca la fila como borrada solo si está viva.
func (r *TypeCategoryRepo) SoftDelete(id, actorID string) (*entity.TypeCategory, error) {
	query := fmt.Sprintf(`
		UPDATE type_categories
		SET is_delete = true, deleted_at = now(), deleted_by = $2, updated_at = now(), updated_by = $2
		WHERE type_category_id = $1 AND is_delete = false
		RETURNING %s`, typeCategoryCols)
	out, err := scanTypeCategory(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("soft delete type category: %w", err)
	}
	return out, nil
}

// Restore revierte el borrado lógico solo si la fila está borrada.
func (r *TypeCategoryRepo) Restore(id, actorID string) (*entity.TypeCategory, error) {
	query := fmt.Sprintf(`
		UPDATE type_categories
		SET is_delete = false, deleted_at = NULL, deleted_by = NULL, updated_at = now(), updated_by = $2
		WHERE type_category_id = $1 AND is_delete = true AND deleted_at IS NOT NULL
		RETURNING %s`, typeCategoryCols)
	out, err := scanTypeCategory(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("restore type category: %w", err)
	}
	return out, nil
}

// HardDelete elimina la fila de forma permanente.
func (r *TypeCategoryRepo) HardDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM type_categories WHERE type_category_id = $1`, id)
	if err != nil {
		return fmt.Errorf("hard delete type category: %w", err)
	}
	return nil
}
