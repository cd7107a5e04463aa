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

var _ repository.UnitRepository = (*UnitRepo)(nil)

const unitCols = `unit_id, unit_name_en, unit_name_cn, unit_description,
	created_at, created_by, updated_at, updated_by, deleted_at, deleted_by, is_delete`

// UnitRepo implementación de UnitRepository (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

func scanUnit(row pgx.Row) (*entity.Unit, error) {
	var u entity.Unit
	err := row.Scan(&u.ID, &u.NameEN, &u.NameCN, &u.Description,
		&u.CreatedAt, &u.CreatedBy, &u.UpdatedAt, &u.UpdatedBy,
		&u.DeletedAt, &u.DeletedBy, &u.IsDelete)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindAll lista units vivas con búsqueda, orden y paginación.
func (r *UnitRepo) FindAll(q repository.ListQuery) ([]entity.Unit, int, error) {
	q.Normalize()

	where := `WHERE is_delete = false`
	args := []any{}
	if q.Search != "" {
		args = append(args, ilikePattern(q.Search))
		where += ` AND (unit_name_en ILIKE $1 OR unit_name_cn ILIKE $1 OR unit_description ILIKE $1)`
	}

	query := fmt.Sprintf(`SELECT %s FROM units %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		unitCols, where,
		qualifySortColumn(q.SortBy, ""), sortDirection(q.SortOrder),
		len(args)+1, len(args)+2)

	rows, err := r.q.Query(context.Background(), query, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var list []entity.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM units `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count units: %w", err)
	}
	return list, total, nil
}

// FindByID obtiene una unit viva por ID; (nil, nil) si no existe.
func (r *UnitRepo) FindByID(id string) (*entity.Unit, error) {
	query := fmt.Sprintf(`SELECT %s FROM units WHERE unit_id = $1 AND is_delete = false`, unitCols)
	u, err := scanUnit(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return u, nil
}

// FindLiveByName busca una unit viva por unit_name_en exacto; (nil, nil) si no hay.
// Es el paso de lectura del find-or-create del escritor compuesto; la ventana de
// carrera entre lectura e inserción concurrentes se mantiene tal cual (sin
// constraint único sobre el nombre).
func (r *UnitRepo) FindLiveByName(name string) (*entity.Unit, error) {
	query := fmt.Sprintf(`SELECT %s FROM units WHERE unit_name_en = $1 AND deleted_at IS NULL AND is_delete = false`, unitCols)
	u, err := scanUnit(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit by name: %w", err)
	}
	return u, nil
}

// Create inserta estampando actor y timestamps del servidor.
func (r *UnitRepo) Create(u *entity.Unit, actorID string) (*entity.Unit, error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO units (unit_id, unit_name_en, unit_name_cn, unit_description, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5, now(), now())
		RETURNING %s`, unitCols)
	out, err := scanUnit(r.q.QueryRow(context.Background(), query,
		u.ID, u.NameEN, u.NameCN, u.Description, actorID))
	if err != nil {
		return nil, fmt.Errorf("insert unit: %w", err)
	}
	return out, nil
}

// Update actualiza solo filas vivas; (nil, nil) si no hay fila viva con ese ID.
func (r *UnitRepo) Update(u *entity.Unit, actorID string) (*entity.Unit, error) {
	query := fmt.Sprintf(`
		UPDATE units
		SET unit_name_en = $2, unit_name_cn = $3, unit_description = $4, updated_by = $5, updated_at = now()
		WHERE unit_id = $1 AND is_delete = false
		RETURNING %s`, unitCols)
	out, err := scanUnit(r.q.QueryRow(context.Background(), query,
		u.ID, u.NameEN, u.NameCN, u.Description, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update unit: %w", err)
	}
	return out, nil
}

// SoftDelete marca la fila como borrada solo si está viva.
func (r *UnitRepo) SoftDelete(id, actorID string) (*entity.Unit, error) {
	query := fmt.Sprintf(`
		UPDATE units
		SET is_delete = true, deleted_at = now(), deleted_by = $2, updated_at = now(), updated_by = $2
		WHERE unit_id = $1 AND is_delete = false
		RETURNING %s`, unitCols)
	out, err := scanUnit(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("soft delete unit: %w", err)
	}
	return out, nil
}

// HardDelete elimina la fila de forma permanente.
func (r *UnitRepo) HardDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units WHERE unit_id = $1`, id)
	if err != nil {
		return fmt.Errorf("hard delete unit: %w", err)
	}
	return nil
}
