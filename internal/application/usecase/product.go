package usecase

import (
	"context"

	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/domain"
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

// ProductUseCase operaciones de aplicación sobre el agregado product. Sigue
// el mismo patrón compuesto que item_category pero sus detalles referencian
// dokumen por id directo, sin resolución por nombre.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   repository.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx repository.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

func productFromRequest(id string, req dto.ProductRequest) *entity.Product {
	return &entity.Product{
		ID:          id,
		NameEN:      req.NameEN,
		NameCN:      req.NameCN,
		Description: req.Description,
		VinNumber:   req.VinNumber,
		ModelType:   req.ModelType,
		Dimensi:     req.Dimensi,
		ModelEngine: req.ModelEngine,
	}
}

func insertProductDetails(tx repository.ProductTx, productID string, items []dto.ProductDetailRequest, actorID string) error {
	for i := range items {
		it := items[i]
		err := tx.Details.Insert(&entity.ProductDetail{
			ProductID:   productID,
			DokumenID:   it.DokumenID,
			NameEN:      it.NameEN,
			NameCN:      it.NameCN,
			Description: it.Description,
		}, actorID)
		if err != nil {
			return err
		}
	}
	return nil
}

// List devuelve una página de productos con sus detalles agrupados.
func (uc *ProductUseCase) List(req dto.ListRequest) (*dto.ListData, error) {
	q := listQuery(req)
	items, total, err := uc.repo.FindAll(q)
	if err != nil {
		return nil, err
	}
	return &dto.ListData{
		Items:      dto.NewProductList(items),
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// GetByID devuelve el agregado completo o ErrNotFound.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewProductResponse(p), nil
}

// Create escribe el agregado completo en una transacción.
func (uc *ProductUseCase) Create(ctx context.Context, req dto.ProductRequest, actorID string) (*dto.ProductResponse, error) {
	var productID string
	err := uc.tx.RunProductTx(ctx, func(tx repository.ProductTx) error {
		p, err := tx.Products.Insert(productFromRequest("", req), actorID)
		if err != nil {
			return err
		}
		productID = p.ID
		return insertProductDetails(tx, p.ID, req.DataDetails, actorID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(productID)
}

// Update reemplaza el agregado completo en una transacción: actualiza los
// campos del producto y sustituye toda la colección de detalles por la del
// cuerpo (borrado físico más reinserción).
func (uc *ProductUseCase) Update(ctx context.Context, id string, req dto.ProductRequest, actorID string) (*dto.ProductResponse, error) {
	err := uc.tx.RunProductTx(ctx, func(tx repository.ProductTx) error {
		updated, err := tx.Products.UpdateFields(productFromRequest(id, req), actorID)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrNotFound
		}
		if err := tx.Details.HardDeleteByProductID(id); err != nil {
			return err
		}
		return insertProductDetails(tx, id, req.DataDetails, actorID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete borra lógicamente el producto y, en cascada, sus detalles vivos, en
// una transacción. Devuelve la fila recién borrada.
func (uc *ProductUseCase) Delete(ctx context.Context, id, actorID string) (*dto.ProductResponse, error) {
	var deleted *entity.Product
	err := uc.tx.RunProductTx(ctx, func(tx repository.ProductTx) error {
		p, err := tx.Products.SoftDelete(id, actorID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		deleted = p
		return tx.Details.SoftDeleteByProductID(id, actorID)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewProductEntityResponse(deleted), nil
}

// Restore revierte el borrado lógico del producto y revive sus detalles
// borrados, en una transacción.
func (uc *ProductUseCase) Restore(ctx context.Context, id, actorID string) (*dto.ProductResponse, error) {
	err := uc.tx.RunProductTx(ctx, func(tx repository.ProductTx) error {
		p, err := tx.Products.Restore(id, actorID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		return tx.Details.RestoreByProductID(id, actorID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}
