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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryCols = `category_id, master_category_id, master_category_name_en, category_name_en, category_name_cn,
	category_description, categories_code, created_at, created_by, updated_at, updated_by, deleted_at, deleted_by, is_delete`

// CategoryRepo implementación de CategoryRepository (usable con pool o tx).
// master_category_name_en es una copia denormalizada que llega del caller y se
// escribe tal cual; no se deriva con un join.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.MasterCategoryID, &c.MasterCategoryNameEN, &c.NameEN, &c.NameCN,
		&c.Description, &c.Code,
		&c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy,
		&c.DeletedAt, &c.DeletedBy, &c.IsDelete)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindAll lista categories vivas. Columnas buscables:
// master_category_name_en, category_name_cn y category_description.
func (r *CategoryRepo) FindAll(q repository.ListQuery) ([]entity.Category, int, error) {
	q.Normalize()

	where := `WHERE is_delete = false`
	args := []any{}
	if q.Search != "" {
		args = append(args, ilikePattern(q.Search))
		where += ` AND (master_category_name_en ILIKE $1 OR category_name_cn ILIKE $1 OR category_description ILIKE $1)`
	}

	query := fmt.Sprintf(`SELECT %s FROM categories %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		categoryCols, where,
		qualifySortColumn(q.SortBy, ""), sortDirection(q.SortOrder),
		len(args)+1, len(args)+2)

	rows, err := r.q.Query(context.Background(), query, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM categories `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}
	return list, total, nil
}

// FindByID obtiene una category viva por ID; (nil, nil) si no existe.
func (r *CategoryRepo) FindByID(id string) (*entity.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE category_id = $1 AND is_delete = false`, categoryCols)
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Create inserta estampando actor y timestamps del servidor.
func (r *CategoryRepo) Create(c *entity.Category, actorID string) (*entity.Category, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO categories (category_id, master_category_id, master_category_name_en, category_name_en, category_name_cn, category_description, categories_code, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, now(), now())
		RETURNING %s`, categoryCols)
	out, err := scanCategory(r.q.QueryRow(context.Background(), query,
		c.ID, emptyToNil(c.MasterCategoryID), c.MasterCategoryNameEN, c.NameEN, c.NameCN, c.Description, c.Code, actorID))
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return out, nil
}

// Update actualiza solo filas vivas; (nil, nil) si no hay fila viva con ese ID.
func (r *CategoryRepo) Update(c *entity.Category, actorID string) (*entity.Category, error) {
	query := fmt.Sprintf(`
		UPDATE categories
		SET master_category_id = $2, master_category_name_en = $3, category_name_en = $4, category_name_cn = $5,
			category_description = $6, categories_code = $7, updated_by = $8, updated_at = now()
		WHERE category_id = $1 AND is_delete = false
		RETURNING %s`, categoryCols)
	out, err := scanCategory(r.q.QueryRow(context.Background(), query,
		c.ID, emptyToNil(c.MasterCategoryID), c.MasterCategoryNameEN, c.NameEN, c.NameCN, c.Description, c.Code, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return out, nil
}

// SoftDelete marca la fila como borrada solo si está viva.
func (r *CategoryRepo) SoftDelete(id, actorID string) (*entity.Category, error) {
	query := fmt.Sprintf(`
		UPDATE categories
		SET is_delete = true, deleted_at = now(), deleted_by = $2, updated_at = now(), updated_by = $2
		WHERE category_id = $1 AND is_delete = false
		RETURNING %s`, categoryCols)
	out, err := scanCategory(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("soft delete category: %w", err)
	}
	return out, nil
}

// Restore revierte el borrado lógico solo si la fila está borrada.
func (r *CategoryRepo) Restore(id, actorID string) (*entity.Category, error) {
	query := fmt.Sprintf(`
		UPDATE categories
		SET is_delete = false, deleted_at = NULL, deleted_by = NULL, updated_at = now(), updated_by = $2
		WHERE category_id = $1 AND is_delete = true AND deleted_at IS NOT NULL
		RETURNING %s`, categoryCols)
	out, err := scanCategory(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("restore category: %w", err)
	}
	return out, nil
}

// HardDelete elimina la fila de forma permanente.
func (r *CategoryRepo) HardDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		return fmt.Errorf("hard delete category: %w", err)
	}
	return nil
}
