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

var _ repository.DokumenRepository = (*DokumenRepo)(nil)

const dokumenCols = `dokumen_id, dokumen_name, dokumen_description,
	created_at, created_by, updated_at, updated_by, deleted_at, deleted_by, is_delete`

// dokumenListJoins encadena los item categories vivos del dokumen hasta sus
// categorías para poder componer la etiqueta dokumen_name_all. Cada join
// descarta filas borradas de la tabla unida.
const dokumenListJoins = `
	FROM dokumen d
	LEFT JOIN item_categories ic ON d.dokumen_id = ic.dokumen_id AND ic.deleted_at IS NULL AND ic.is_delete = false
	LEFT JOIN type_categories tc ON tc.type_category_id = ic.type_category_id AND tc.deleted_at IS NULL AND tc.is_delete = false
	LEFT JOIN categories c ON c.category_id = tc.category_id AND c.deleted_at IS NULL AND c.is_delete = false
	LEFT JOIN master_categories mc ON mc.master_category_id = c.master_category_id AND mc.deleted_at IS NULL AND mc.is_delete = false`

const dokumenListGroupBy = `
	GROUP BY d.dokumen_id, d.dokumen_name, d.dokumen_description, d.created_at, d.created_by,
		d.updated_at, d.updated_by, d.deleted_at, d.deleted_by, d.is_delete,
		tc.type_category_id, c.category_id`

// DokumenRepo implementación de DokumenRepository (usable con pool o tx).
type DokumenRepo struct {
	q Querier
}

// NewDokumenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDokumenRepository(q Querier) *DokumenRepo {
	return &DokumenRepo{q: q}
}

func scanDokumen(row pgx.Row) (*entity.Dokumen, error) {
	var d entity.Dokumen
	err := row.Scan(&d.ID, &d.Name, &d.Description,
		&d.CreatedAt, &d.CreatedBy, &d.UpdatedAt, &d.UpdatedBy,
		&d.DeletedAt, &d.DeletedBy, &d.IsDelete)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindAll lista dokumen vivos agrupados por sus combinaciones de categoría.
// Un dokumen con item categories en varias categorías produce una fila por
// combinación; el total cuenta esas filas agrupadas.
func (r *DokumenRepo) FindAll(q repository.ListQuery) ([]repository.DokumenListRow, int, error) {
	q.Normalize()

	where := `WHERE d.deleted_at IS NULL AND d.is_delete = false`
	args := []any{}
	if q.Search != "" {
		args = append(args, ilikePattern(q.Search))
		where += ` AND (d.dokumen_name ILIKE $1 OR d.dokumen_description ILIKE $1)`
	}

	query := fmt.Sprintf(`
		SELECT d.dokumen_id, d.dokumen_name, d.dokumen_description, d.created_at, d.created_by,
			d.updated_at, d.updated_by, d.deleted_at, d.deleted_by, d.is_delete,
			concat_ws(' - ', d.dokumen_name, c.category_name_en, tc.type_category_name_en) AS dokumen_name_all
		%s %s %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		dokumenListJoins, where, dokumenListGroupBy,
		qualifySortColumn(q.SortBy, "d"), sortDirection(q.SortOrder),
		len(args)+1, len(args)+2)

	rows, err := r.q.Query(context.Background(), query, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list dokumen: %w", err)
	}
	defer rows.Close()

	var list []repository.DokumenListRow
	for rows.Next() {
		var row repository.DokumenListRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Description,
			&row.CreatedAt, &row.CreatedBy, &row.UpdatedAt, &row.UpdatedBy,
			&row.DeletedAt, &row.DeletedBy, &row.IsDelete, &row.NameAll); err != nil {
			return nil, 0, fmt.Errorf("scan dokumen: %w", err)
		}
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM (SELECT 1 %s %s %s) grouped`,
		dokumenListJoins, where, dokumenListGroupBy)
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count dokumen: %w", err)
	}
	return list, total, nil
}

// FindByID obtiene un dokumen vivo por ID; (nil, nil) si no existe.
func (r *DokumenRepo) FindByID(id string) (*entity.Dokumen, error) {
	query := fmt.Sprintf(`SELECT %s FROM dokumen WHERE dokumen_id = $1 AND deleted_at IS NULL AND is_delete = false`, dokumenCols)
	d, err := scanDokumen(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dokumen: %w", err)
	}
	return d, nil
}

// FindLiveByName busca un dokumen vivo por nombre exacto; (nil, nil) si no hay.
// Paso de lectura del find-or-create del escritor compuesto; sin constraint
// único sobre el nombre, la carrera entre callers concurrentes se mantiene.
func (r *DokumenRepo) FindLiveByName(name string) (*entity.Dokumen, error) {
	query := fmt.Sprintf(`SELECT %s FROM dokumen WHERE dokumen_name = $1 AND deleted_at IS NULL AND is_delete = false`, dokumenCols)
	d, err := scanDokumen(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dokumen by name: %w", err)
	}
	return d, nil
}

// Create inserta estampando actor y timestamps del servidor.
func (r *DokumenRepo) Create(d *entity.Dokumen, actorID string) (*entity.Dokumen, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO dokumen (dokumen_id, dokumen_name, dokumen_description, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4, now(), now())
		RETURNING %s`, dokumenCols)
	out, err := scanDokumen(r.q.QueryRow(context.Background(), query, d.ID, d.Name, d.Description, actorID))
	if err != nil {
		return nil, fmt.Errorf("insert dokumen: %w", err)
	}
	return out, nil
}

// Update actualiza solo filas vivas; (nil, nil) si no hay fila viva con ese ID.
func (r *DokumenRepo) Update(d *entity.Dokumen, actorID string) (*entity.Dokumen, error) {
	query := fmt.Sprintf(`
		UPDATE dokumen
		SET dokumen_name = $2, dokumen_description = $3, updated_by = $4, updated_at = now()
		WHERE dokumen_id = $1 AND deleted_at IS NULL AND is_delete = false
		RETURNING %s`, dokumenCols)
	out, err := scanDokumen(r.q.QueryRow(context.Background(), query, d.ID, d.Name, d.Description, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update dokumen: %w", err)
	}
	return out, nil
}

// UpdateName renombra el dokumen in-place sin tocar el resto de campos.
// Lo usa el update del agregado de item_category; el renombre afecta a todas
// las entidades que referencian este dokumen.
func (r *DokumenRepo) UpdateName(id, name, actorID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE dokumen SET dokumen_name = $2, updated_by = $3, updated_at = now() WHERE dokumen_id = $1`,
		id, name, actorID)
	if err != nil {
		return fmt.Errorf("update dokumen name: %w", err)
	}
	return nil
}

// SoftDelete marca la fila como borrada solo si está viva.
func (r *DokumenRepo) SoftDelete(id, actorID string) (*entity.Dokumen, error) {
	query := fmt.Sprintf(`
		UPDATE dokumen
		SET is_delete = true, deleted_at = now(), deleted_by = $2, updated_at = now(), updated_by = $2
		WHERE dokumen_id = $1 AND deleted_at IS NULL AND is_delete = false
		RETURNING %s`, dokumenCols)
	out, err := scanDokumen(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("soft delete dokumen: %w", err)
	}
	return out, nil
}

// Restore revierte el borrado lógico solo si la fila está borrada.
func (r *DokumenRepo) Restore(id, actorID string) (*entity.Dokumen, error) {
	query := fmt.Sprintf(`
		UPDATE dokumen
		SET is_delete = false, deleted_at = NULL, deleted_by = NULL, updated_at = now(), updated_by = $2
		WHERE dokumen_id = $1 AND is_delete = true AND deleted_at IS NOT NULL
		RETURNING %s`, dokumenCols)
	out, err := scanDokumen(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("restore dokumen: %w", err)
	}
	return out, nil
}

// HardDelete elimina la fila de forma permanente.
func (r *DokumenRepo) HardDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM dokumen WHERE dokumen_id = $1`, id)
	if err != nil {
		return fmt.Errorf("hard delete dokumen: %w", err)
	}
	return nil
}
