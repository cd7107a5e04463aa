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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productCols = `product_id, product_name_en, product_name_cn, product_description,
	vin_number, model_type, dimensi, model_engine,
	created_at, created_by, updated_at, updated_by, deleted_at, deleted_by, is_delete`

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.NameEN, &p.NameCN, &p.Description,
		&p.VinNumber, &p.ModelType, &p.Dimensi, &p.ModelEngine,
		&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
		&p.DeletedAt, &p.DeletedBy, &p.IsDelete)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func productSearchWhere(search string) (string, []any) {
	where := `WHERE p.deleted_at IS NULL AND p.is_delete = false`
	args := []any{}
	if search != "" {
		args = append(args, ilikePattern(search))
		where += ` AND (p.product_name_en ILIKE $1 OR p.product_name_cn ILIKE $1 OR p.vin_number ILIKE $1 OR p.product_description ILIKE $1)`
	}
	return where, args
}

// FindAll lista productos con sus detalles vivos ya agrupados. El join produce
// una fila por detalle; el agrupado corre en memoria y la paginación se aplica
// sobre la lista de productos resultante, no sobre las filas del join. El
// total cuenta productos vivos que matchean la búsqueda.
func (r *ProductRepo) FindAll(q repository.ListQuery) ([]repository.ProductWithDetails, int, error) {
	q.Normalize()
	where, args := productSearchWhere(q.Search)

	query := fmt.Sprintf(`
		SELECT p.product_id, p.product_name_en, p.product_name_cn, p.product_description,
			p.vin_number, p.model_type, p.dimensi, p.model_engine,
			p.created_at, p.created_by, p.updated_at, p.updated_by, p.deleted_at, p.deleted_by, p.is_delete,
			pd.product_detail_id, pd.dokumen_id, pd.product_detail_name_en, pd.product_detail_name_cn,
			pd.product_detail_description,
			pd.created_at, pd.created_by, pd.updated_at, pd.updated_by, pd.deleted_at, pd.deleted_by, pd.is_delete,
			d.dokumen_name, d.dokumen_description
		FROM products p
		LEFT JOIN products_details pd ON p.product_id = pd.product_id AND pd.deleted_at IS NULL AND pd.is_delete = false
		LEFT JOIN dokumen d ON pd.dokumen_id = d.dokumen_id AND d.deleted_at IS NULL AND d.is_delete = false
		%s ORDER BY %s %s`,
		where, qualifySortColumn(q.SortBy, "p"), sortDirection(q.SortOrder))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var order []string
	grouped := map[string]*repository.ProductWithDetails{}
	for rows.Next() {
		var p entity.Product
		var detailID *string
		var d repository.ProductDetailRow
		if err := rows.Scan(&p.ID, &p.NameEN, &p.NameCN, &p.Description,
			&p.VinNumber, &p.ModelType, &p.Dimensi, &p.ModelEngine,
			&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
			&p.DeletedAt, &p.DeletedBy, &p.IsDelete,
			&detailID, &d.DokumenID, &d.NameEN, &d.NameCN, &d.Description,
			&d.CreatedAt, &d.CreatedBy, &d.UpdatedAt, &d.UpdatedBy,
			&d.DeletedAt, &d.DeletedBy, &d.IsDelete,
			&d.DokumenName, &d.DokumenDescription); err != nil {
			return nil, 0, fmt.Errorf("scan product row: %w", err)
		}
		agg, ok := grouped[p.ID]
		if !ok {
			agg = &repository.ProductWithDetails{Product: p}
			grouped[p.ID] = agg
			order = append(order, p.ID)
		}
		if detailID != nil {
			d.ID = *detailID
			d.ProductID = p.ID
			agg.Details = append(agg.Details, d)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	list := make([]repository.ProductWithDetails, 0, len(order))
	for _, id := range order {
		list = append(list, *grouped[id])
	}
	start := q.Offset()
	if start > len(list) {
		start = len(list)
	}
	end := start + q.Limit
	if end > len(list) {
		end = len(list)
	}
	page := list[start:end]

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM products p %s`, where)
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	return page, total, nil
}

// FindByID carga el agregado: producto vivo más sus detalles vivos con el
// dokumen referenciado resuelto; (nil, nil) si no existe.
func (r *ProductRepo) FindByID(id string) (*repository.ProductWithDetails, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = $1 AND deleted_at IS NULL AND is_delete = false`, productCols)
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	detailQuery := `
		SELECT pd.product_detail_id, pd.product_id, pd.dokumen_id,
			pd.product_detail_name_en, pd.product_detail_name_cn, pd.product_detail_description,
			pd.created_at, pd.created_by, pd.updated_at, pd.updated_by, pd.deleted_at, pd.deleted_by, pd.is_delete,
			d.dokumen_name, d.dokumen_description
		FROM products_details pd
		LEFT JOIN dokumen d ON pd.dokumen_id = d.dokumen_id AND d.deleted_at IS NULL AND d.is_delete = false
		WHERE pd.product_id = $1 AND pd.deleted_at IS NULL AND pd.is_delete = false`

	rows, err := r.q.Query(context.Background(), detailQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list product details: %w", err)
	}
	defer rows.Close()

	out := &repository.ProductWithDetails{Product: *p}
	for rows.Next() {
		var d repository.ProductDetailRow
		if err := rows.Scan(&d.ID, &d.ProductID, &d.DokumenID,
			&d.NameEN, &d.NameCN, &d.Description,
			&d.CreatedAt, &d.CreatedBy, &d.UpdatedAt, &d.UpdatedBy,
			&d.DeletedAt, &d.DeletedBy, &d.IsDelete,
			&d.DokumenName, &d.DokumenDescription); err != nil {
			return nil, fmt.Errorf("scan product detail: %w", err)
		}
		out.Details = append(out.Details, d)
	}
	return out, rows.Err()
}

// FindLiveByID obtiene la fila viva sin detalles; (nil, nil) si no existe.
func (r *ProductRepo) FindLiveByID(id string) (*entity.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = $1 AND deleted_at IS NULL AND is_delete = false`, productCols)
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Insert inserta el producto estampando actor y timestamps del servidor.
func (r *ProductRepo) Insert(p *entity.Product, actorID string) (*entity.Product, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO products (product_id, product_name_en, product_name_cn, product_description,
			vin_number, model_type, dimensi, model_engine, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9, now(), now())
		RETURNING %s`, productCols)
	out, err := scanProduct(r.q.QueryRow(context.Background(), query,
		p.ID, p.NameEN, p.NameCN, p.Description,
		p.VinNumber, p.ModelType, p.Dimensi, p.ModelEngine, actorID))
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return out, nil
}

// UpdateFields actualiza los campos del producto solo si la fila sigue viva.
func (r *ProductRepo) UpdateFields(p *entity.Product, actorID string) (*entity.Product, error) {
	query := fmt.Sprintf(`
		UPDATE products
		SET product_name_en = $2, product_name_cn = $3, product_description = $4,
			vin_number = $5, model_type = $6, dimensi = $7, model_engine = $8,
			updated_by = $9, updated_at = now()
		WHERE product_id = $1 AND deleted_at IS NULL AND is_delete = false
		RETURNING %s`, productCols)
	out, err := scanProduct(r.q.QueryRow(context.Background(), query,
		p.ID, p.NameEN, p.NameCN, p.Description,
		p.VinNumber, p.ModelType, p.Dimensi, p.ModelEngine, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return out, nil
}

// SoftDelete marca el producto como borrado solo si está vivo; (nil, nil) si no.
func (r *ProductRepo) SoftDelete(id, actorID string) (*entity.Product, error) {
	query := fmt.Sprintf(`
		UPDATE products
		SET is_delete = true, deleted_at = now(), deleted_by = $2, updated_at = now(), updated_by = $2
		WHERE product_id = $1 AND deleted_at IS NULL AND is_delete = false
		RETURNING %s`, productCols)
	out, err := scanProduct(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("soft delete product: %w", err)
	}
	return out, nil
}

// Restore revierte el borrado lógico solo si el producto está borrado.
func (r *ProductRepo) Restore(id, actorID string) (*entity.Product, error) {
	query := fmt.Sprintf(`
		UPDATE products
		SET is_delete = false, deleted_at = NULL, deleted_by = NULL, updated_at = now(), updated_by = $2
		WHERE product_id = $1 AND is_delete = true AND deleted_at IS NOT NULL
		RETURNING %s`, productCols)
	out, err := scanProduct(r.q.QueryRow(context.Background(), query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("restore product: %w", err)
	}
	return out, nil
}
