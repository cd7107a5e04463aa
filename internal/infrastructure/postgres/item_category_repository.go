package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/andriansp/epc-catalog-api/internal/domain"
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

var _ repository.ItemCategoryRepository = (*ItemCategoryRepo)(nil)

const itemCategoryCols = `item_category_id, type_category_id, category_id, dokumen_id,
	item_category_name_en, item_category_name_cn, item_category_description, item_category_foto,
	created_at, created_by, updated_at, updated_by, deleted_at, deleted_by, is_delete`

// itemCategoryJoins resuelve las dos rutas de clasificación en paralelo: la
// indirecta vía type_category (alias *_type) y la directa vía category
// (alias *_direct). Los SELECT que lo usan coalescen ambas rutas.
const itemCategoryJoins = `
	FROM item_categories ic
	LEFT JOIN dokumen d ON ic.dokumen_id = d.dokumen_id
	LEFT JOIN type_categories tc ON ic.type_category_id = tc.type_category_id
	LEFT JOIN categories c_type ON tc.category_id = c_type.category_id
	LEFT JOIN categories c_direct ON ic.category_id = c_direct.category_id
	LEFT JOIN master_categories mc_type ON c_type.master_category_id = mc_type.master_category_id
	LEFT JOIN master_categories mc_direct ON c_direct.master_category_id = mc_direct.master_category_id`

// ItemCategoryRepo implementación de ItemCategoryRepository (usable con pool o tx).
type ItemCategoryRepo struct {
	q Querier
}

// NewItemCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemCategoryRepository(q Querier) *ItemCategoryRepo {
	return &ItemCategoryRepo{q: q}
}

func scanItemCategory(row pgx.Row) (*entity.ItemCategory, error) {
	var ic entity.ItemCategory
	err := row.Scan(&ic.ID, &ic.TypeCategoryID, &ic.CategoryID, &ic.DokumenID,
		&ic.NameEN, &ic.NameCN, &ic.Description, &ic.Foto,
		&ic.CreatedAt, &ic.CreatedBy, &ic.UpdatedAt, &ic.UpdatedBy,
		&ic.DeletedAt, &ic.DeletedBy, &ic.IsDelete)
	if err != nil {
		return nil, err
	}
	return &ic, nil
}

// itemCategoryListWhere arma el WHERE del listado: filas vivas más búsqueda y
// filtros opcionales. La búsqueda cubre el nombre del dokumen y los nombres de
// master category por cualquiera de las dos rutas.
func itemCategoryListWhere(q repository.ListQuery, f repository.ItemCategoryFilters) (string, []any) {
	where := `WHERE ic.deleted_at IS NULL AND ic.is_delete = false`
	args := []any{}
	if q.Search != "" {
		args = append(args, ilikePattern(q.Search))
		n := len(args)
		where += fmt.Sprintf(` AND (d.dokumen_name ILIKE $%d
			OR mc_type.master_category_name_en ILIKE $%d OR mc_type.master_category_name_cn ILIKE $%d
			OR mc_direct.master_category_name_en ILIKE $%d OR mc_direct.master_category_name_cn ILIKE $%d)`,
			n, n, n, n, n)
	}
	if f.MasterCategoryNameEN != "" {
		args = append(args, ilikePattern(f.MasterCategoryNameEN))
		n := len(args)
		where += fmt.Sprintf(` AND (mc_type.master_category_name_en ILIKE $%d OR mc_direct.master_category_name_en ILIKE $%d)`, n, n)
	}
	if f.DokumenName != "" {
		args = append(args, ilikePattern(f.DokumenName))
		where += fmt.Sprintf(` AND d.dokumen_name ILIKE $%d`, len(args))
	}
	return where, args
}

// FindAll proyección del listado: una fila por par distinto (dokumen, master
// category coalescida), no por item category. El total cuenta esos pares.
func (r *ItemCategoryRepo) FindAll(q repository.ListQuery, f repository.ItemCategoryFilters) ([]repository.ItemCategoryListRow, int, error) {
	q.Normalize()
	where, args := itemCategoryListWhere(q, f)

	query := fmt.Sprintf(`
		SELECT DISTINCT d.dokumen_id, d.dokumen_name, d.created_at,
			COALESCE(mc_type.master_category_id, mc_direct.master_category_id) AS master_category_id,
			COALESCE(mc_type.master_category_name_en, mc_direct.master_category_name_en) AS master_category_name_en,
			COALESCE(mc_type.master_category_name_cn, mc_direct.master_category_name_cn) AS master_category_name_cn
		%s %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		itemCategoryJoins, where,
		qualifySortColumn(q.SortBy, "d"), sortDirection(q.SortOrder),
		len(args)+1, len(args)+2)

	rows, err := r.q.Query(context.Background(), query, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list item categories: %w", err)
	}
	defer rows.Close()

	var list []repository.ItemCategoryListRow
	for rows.Next() {
		var row repository.ItemCategoryListRow
		if err := rows.Scan(&row.DokumenID, &row.DokumenName, &row.CreatedAt,
			&row.MasterCategoryID, &row.MasterCategoryNameEN, &row.MasterCategoryNameCN); err != nil {
			return nil, 0, fmt.Errorf("scan item category row: %w", err)
		}
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*) FROM (
			SELECT DISTINCT d.dokumen_id,
				COALESCE(mc_type.master_category_id, mc_direct.master_category_id)
			%s %s
		) grouped`, itemCategoryJoins, where)
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count item categories: %w", err)
	}
	return list, total, nil
}

// FindByID carga el agregado completo: la fila viva con todas sus relaciones
// resueltas más los detalles vivos. La jerarquía se coalesce en Go con la misma
// preferencia (ruta vía type_category gana) que aplican los listados en SQL.
func (r *ItemCategoryRepo) FindByID(id string) (*repository.ItemCategoryWithRelations, error) {
	query := fmt.Sprintf(`
		SELECT ic.item_category_id, ic.type_category_id, ic.category_id, ic.dokumen_id,
			ic.item_category_name_en, ic.item_category_name_cn, ic.item_category_description, ic.item_category_foto,
			ic.created_at, ic.created_by, ic.updated_at, ic.updated_by, ic.deleted_at, ic.deleted_by, ic.is_delete,
			d.dokumen_name, d.dokumen_description,
			tc.type_category_name_en, tc.type_category_name_cn,
			c_type.category_name_en, c_type.category_name_cn,
			c_direct.category_name_en, c_direct.category_name_cn,
			mc_type.master_category_id, mc_type.master_category_name_en, mc_type.master_category_name_cn,
			mc_direct.master_category_id, mc_direct.master_category_name_en, mc_direct.master_category_name_cn
		%s
		WHERE ic.item_category_id = $1 AND ic.deleted_at IS NULL AND ic.is_delete = false`,
		itemCategoryJoins)

	var out repository.ItemCategoryWithRelations
	var viaType, direct domain.HierarchyFields
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&out.ID, &out.TypeCategoryID, &out.CategoryID, &out.DokumenID,
		&out.NameEN, &out.NameCN, &out.Description, &out.Foto,
		&out.CreatedAt, &out.CreatedBy, &out.UpdatedAt, &out.UpdatedBy,
		&out.DeletedAt, &out.DeletedBy, &out.IsDelete,
		&out.DokumenName, &out.DokumenDescription,
		&out.TypeCategoryNameEN, &out.TypeCategoryNameCN,
		&viaType.CategoryNameEN, &viaType.CategoryNameCN,
		&direct.CategoryNameEN, &direct.CategoryNameCN,
		&viaType.MasterCategoryID, &viaType.MasterCategoryNameEN, &viaType.MasterCategoryNameCN,
		&direct.MasterCategoryID, &direct.MasterCategoryNameEN, &direct.MasterCategoryNameCN)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item category: %w", err)
	}
	out.Classification = domain.Classify(out.TypeCategoryID, out.CategoryID)
	out.Hierarchy = domain.CoalesceHierarchy(viaType, direct)

	details, err := r.listDetailRows(id)
	if err != nil {
		return nil, err
	}
	out.Details = details
	return &out, nil
}

// listDetailRows detalles vivos del padre con los nombres de unidad resueltos
// por nombre (icd.unit guarda unit_name_en, no un id).
func (r *ItemCategoryRepo) listDetailRows(itemCategoryID string) ([]repository.ItemCategoryDetailRow, error) {
	query := `
		SELECT icd.item_category_detail_id, icd.item_category_id, icd.target_id, icd.part_number,
			icd.catalog_item_name_en, icd.catalog_item_name_ch, icd.description, icd.quantity, icd.unit,
			icd.created_at, icd.created_by, icd.updated_at, icd.updated_by, icd.deleted_at, icd.deleted_by, icd.is_delete,
			u.unit_name_en, u.unit_name_cn
		FROM item_categories_details icd
		LEFT JOIN units u ON icd.unit = u.unit_name_en
		WHERE icd.item_category_id = $1 AND icd.deleted_at IS NULL AND icd.is_delete = false`

	rows, err := r.q.Query(context.Background(), query, itemCategoryID)
	if err != nil {
		return nil, fmt.Errorf("list item category details: %w", err)
	}
	defer rows.Close()

	var details []repository.ItemCategoryDetailRow
	for rows.Next() {
		var d repository.ItemCategoryDetailRow
		if err := rows.Scan(&d.ID, &d.ItemCategoryID, &d.TargetID, &d.PartNumber,
			&d.CatalogItemNameEN, &d.CatalogItemNameCH, &d.Description, &d.Quantity, &d.Unit,
			&d.CreatedAt, &d.CreatedBy, &d.UpdatedAt, &d.UpdatedBy,
			&d.DeletedAt, &d.DeletedBy, &d.IsDelete,
			&d.UnitNameEN, &d.UnitNameCN); err != nil {
			return nil, fmt.Errorf("scan item category detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// dokumenItemsWhere arma el WHERE del listado por dokumen. El id del dokumen
// ocupa $1; la búsqueda cubre los nombres de master category por ambas rutas
// (EN y CN), no el nombre del dokumen.
func dokumenItemsWhere(q repository.ListQuery) (string, []any) {
	where := `WHERE ic.dokumen_id = $1 AND ic.deleted_at IS NULL AND ic.is_delete = false`
	args := []any{}
	if q.Search != "" {
		args = append(args, ilikePattern(q.Search))
		n := len(args) + 1
		where += fmt.Sprintf(` AND (mc_type.master_category_name_en ILIKE $%d OR mc_direct.master_category_name_en ILIKE $%d
			OR mc_type.master_category_name_cn ILIKE $%d OR mc_direct.master_category_name_cn ILIKE $%d)`,
			n, n, n, n)
	}
	return where, args
}

// FindByDokumenID lista los item categories vivos de un dokumen con su
// clasificación resuelta. Los nombres de category salen solo de la ruta
// directa; los de master category se coalescen sobre ambas rutas. El total
// cuenta master categories coalescidas distintas, no filas, con los mismos
// predicados que el listado.
func (r *ItemCategoryRepo) FindByDokumenID(dokumenID string, q repository.ListQuery) ([]repository.DokumenItemRow, int, error) {
	q.Normalize()
	where, searchArgs := dokumenItemsWhere(q)
	args := append([]any{dokumenID}, searchArgs...)

	query := fmt.Sprintf(`
		SELECT ic.item_category_id, ic.dokumen_id,
			COALESCE(mc_type.master_category_id, mc_direct.master_category_id) AS master_category_id,
			COALESCE(mc_type.master_category_name_en, mc_direct.master_category_name_en) AS master_category_name_en,
			COALESCE(mc_type.master_category_name_cn, mc_direct.master_category_name_cn) AS master_category_name_cn,
			c_direct.category_name_en, c_direct.category_name_cn,
			tc.type_category_name_en, tc.type_category_name_cn
		%s
		%s
		ORDER BY master_category_name_en %s LIMIT $%d OFFSET $%d`,
		itemCategoryJoins, where, sortDirection(q.SortOrder),
		len(args)+1, len(args)+2)

	rows, err := r.q.Query(context.Background(), query, append(append([]any{}, args...), q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list dokumen items: %w", err)
	}
	defer rows.Close()

	var list []repository.DokumenItemRow
	for rows.Next() {
		var row repository.DokumenItemRow
		if err := rows.Scan(&row.ItemCategoryID, &row.DokumenID,
			&row.MasterCategoryID, &row.MasterCategoryNameEN, &row.MasterCategoryNameCN,
			&row.CategoryNameEN, &row.CategoryNameCN,
			&row.TypeCategoryNameEN, &row.TypeCategoryNameCN); err != nil {
			return nil, 0, fmt.Errorf("scan dokumen item: %w", err)
		}
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*) FROM (
			SELECT DISTINCT COALESCE(mc_type.master_category_id, mc_direct.master_category_id)
			%s
			%s
		) grouped`, itemCategoryJoins, where)
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count dokumen items: %w", err)
	}
	return list, total, nil
}

// FindLiveByID obtiene la fila viva sin relaciones; (nil, nil) si no existe.
func (r *ItemCategoryRepo) FindLiveByID(id string) (*entity.ItemCategory, error) {
	query := fmt.Sprintf(`SELECT %s FROM item_categories WHERE item_category_id = $1 AND deleted_at IS NULL AND is_delete = false`, itemCategoryCols)
	ic, err := scanItemCategory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item category: %w", err)
	}
	return ic, nil
}

// ListLiveByDokumenID filas vivas de un dokumen; paso de copia del duplicador.
func (r *ItemCategoryRepo) ListLiveByDokumenID(dokumenID string) ([]entity.ItemCategory, error) {
	query := fmt.Sprintf(`SELECT %s FROM item_categories WHERE dokumen_id = $1 AND deleted_at IS NULL AND is_delete = false`, itemCategoryCols)
	rows, err := r.q.Query(context.Background(), query, dokumenID)
	if err != nil {
		return nil, fmt.Errorf("list item categories by dokumen: %w", err)
	}
	defer rows.Close()

	var list []entity.ItemCategory
	for rows.Next() {
		var ic entity.ItemCategory
		if err := rows.Scan(&ic.ID, &ic.TypeCategoryID, &ic.CategoryID, &ic.DokumenID,
			&ic.NameEN, &ic.NameCN, &ic.Description, &ic.Foto,
			&ic.CreatedAt, &ic.CreatedBy, &ic.UpdatedAt, &ic.UpdatedBy,
			&ic.DeletedAt, &ic.DeletedBy, &ic.IsDelete); err != nil {
			return nil, fmt.Errorf("scan item category: %w", err)
		}
		list = append(list, ic)
	}
	return list, rows.Err()
}

// Insert inserta el padre. Las referencias de clasificación vacías se guardan
// como NULL para que los COALESCE de lectura funcionen.
func (r *ItemCategoryRepo) Insert(ic *entity.ItemCategory, actorID string) (*entity.ItemCategory, error) {
	if ic.ID == "" {
		ic.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO item_categories (item_category_id, type_category_id, category_id, dokumen_id,
			item_category_name_en, item_category_name_cn, item_category_description, item_category_foto,
			created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9, now(), now())
		RETURNING %s`, itemCategoryCols)
	out, err := scanItemCategory(r.q.QueryRow(context.Background(), query,
		ic.ID, emptyToNil(ic.TypeCategoryID), emptyToNil(ic.CategoryID), emptyToNil(ic.DokumenID),
		ic.NameEN, ic.NameCN, ic.Description, ic.Foto, actorID))
	if err != nil {
		return nil, fmt.Errorf("insert item category: %w", err)
	}
	return out, nil
}

// UpdateFields actualiza los campos del padre solo si la fila sigue viva.
func (r *ItemCategoryRepo) UpdateFields(ic *entity.ItemCategory, actorID string) (*entity.ItemCategory, error) {
	query := fmt.Sprintf(`
		UPDATE item_categories
		SET type_category_id = $2, category_id = $3, dokumen_id = $4,
			item_category_name_en = $5, item_category_name_cn = $6,
			item_category_description = $7, item_category_foto = $8,
			updated_by = $9, updated_at = now()
		WHERE item_category_id = $1 AND deleted_at IS NULL AND is_delete = false
		RETURNING %s`, itemCategoryCols)
	out, err := scanItemCategory(r.q.QueryRow(context.Background(), query,
		ic.ID, emptyToNil(ic.TypeCategoryID), emptyToNil(ic.CategoryID), emptyToNil(ic.DokumenID),
		ic.NameEN, ic.NameCN, ic.Description, ic.Foto, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update item category: %w", err)
	}
	return out, nil
}

// SoftDelete marca el padre como borrado solo si está vivo; (nil, nil) si no.
func (r *ItemCategoryRepo) SoftDelete(id, actorID string) (*entity.ItemCategory, error) {
	query := fmt.Sprintf(`
		UPDATE item_categories
		SET is_delete = true, deleted_at = now(), deleted_by = $2, updated_at = now(), updated_by = $2
		WHERE item_category_id = $1 AND deleted_at IS NULL AND is_delete = false
		RETURNING %s`, itemCategoryCols)
	out, err := scanItemCategory(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("soft delete item category: %w", err)
	}
	return out, nil
}

// Restore revierte el borrado lógico del padre solo si está borrado.
func (r *ItemCategoryRepo) Restore(id, actorID string) (*entity.ItemCategory, error) {
	query := fmt.Sprintf(`
		UPDATE item_categories
		SET is_delete = false, deleted_at = NULL, deleted_by = NULL, updated_at = now(), updated_by = $2
		WHERE item_category_id = $1 AND is_delete = true AND deleted_at IS NOT NULL
		RETURNING %s`, itemCategoryCols)
	out, err := scanItemCategory(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("restore item category: %w", err)
	}
	return out, nil
}
