package usecase

import (
	"context"

	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/domain"
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

// DokumenUseCase operaciones de aplicación sobre dokumen, incluido el
// duplicador de entidad completa.
type DokumenUseCase struct {
	repo repository.DokumenRepository
	tx   repository.TxRunner
}

// NewDokumenUseCase construye el caso de uso.
func NewDokumenUseCase(repo repository.DokumenRepository, tx repository.TxRunner) *DokumenUseCase {
	return &DokumenUseCase{repo: repo, tx: tx}
}

// List devuelve una página del listado agrupado de dokumen.
func (uc *DokumenUseCase) List(req dto.ListRequest) (*dto.ListData, error) {
	q := listQuery(req)
	rows, total, err := uc.repo.FindAll(q)
	if err != nil {
		return nil, err
	}
	return &dto.ListData{
		Items:      dto.NewDokumenListItems(rows),
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// GetByID devuelve un dokumen vivo o ErrNotFound.
func (uc *DokumenUseCase) GetByID(id string) (*dto.DokumenResponse, error) {
	d, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewDokumenResponse(d)
	return &out, nil
}

// Create crea un dokumen estampando el actor.
func (uc *DokumenUseCase) Create(req dto.DokumenRequest, actorID string) (*dto.DokumenResponse, error) {
	d, err := uc.repo.Create(&entity.Dokumen{
		Name:        req.Name,
		Description: req.Description,
	}, actorID)
	if err != nil {
		return nil, err
	}
	out := dto.NewDokumenResponse(d)
	return &out, nil
}

// Update actualiza un dokumen vivo o devuelve ErrNotFound.
func (uc *DokumenUseCase) Update(id string, req dto.DokumenRequest, actorID string) (*dto.DokumenResponse, error) {
	d, err := uc.repo.Update(&entity.Dokumen{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}, actorID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewDokumenResponse(d)
	return &out, nil
}

// Delete borra lógicamente un dokumen vivo o devuelve ErrNotFound. Los item
// categories que lo referencian no se tocan.
func (uc *DokumenUseCase) Delete(id, actorID string) (*dto.DokumenResponse, error) {
	d, err := uc.repo.SoftDelete(id, actorID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewDokumenResponse(d)
	return &out, nil
}

// Restore revierte el borrado lógico o devuelve ErrNotFound.
func (uc *DokumenUseCase) Restore(id, actorID string) (*dto.DokumenResponse, error) {
	d, err := uc.repo.Restore(id, actorID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewDokumenResponse(d)
	return &out, nil
}

// Duplicate copia en profundidad un dokumen vivo: la copia se nombra con el
// prefijo fijo, hereda la descripción y arrastra todos los item categories
// vivos del original con sus detalles vivos, todo con ids frescos. Corre en
// una sola transacción; si el original no existe no hay efectos.
func (uc *DokumenUseCase) Duplicate(ctx context.Context, id, actorID string) (*dto.DokumenResponse, error) {
	var newID string
	err := uc.tx.RunDokumenTx(ctx, func(tx repository.DokumenTx) error {
		src, err := tx.Dokumen.FindByID(id)
		if err != nil {
			return err
		}
		if src == nil {
			return domain.ErrNotFound
		}

		name := entity.DuplicatePrefix
		if src.Name != nil {
			name += *src.Name
		}
		copia, err := tx.Dokumen.Create(&entity.Dokumen{
			Name:        &name,
			Description: src.Description,
		}, actorID)
		if err != nil {
			return err
		}
		newID = copia.ID

		ics, err := tx.ItemCategories.ListLiveByDokumenID(id)
		if err != nil {
			return err
		}
		for i := range ics {
			src := ics[i]
			nuevo, err := tx.ItemCategories.Insert(&entity.ItemCategory{
				TypeCategoryID: src.TypeCategoryID,
				CategoryID:     src.CategoryID,
				DokumenID:      &copia.ID,
				NameEN:         src.NameEN,
				NameCN:         src.NameCN,
				Description:    src.Description,
				Foto:           src.Foto,
			}, actorID)
			if err != nil {
				return err
			}

			details, err := tx.Details.ListLiveByItemCategoryID(src.ID)
			if err != nil {
				return err
			}
			copias := make([]entity.ItemCategoryDetail, 0, len(details))
			for j := range details {
				d := details[j]
				copias = append(copias, entity.ItemCategoryDetail{
					ItemCategoryID:    &nuevo.ID,
					TargetID:          d.TargetID,
					PartNumber:        d.PartNumber,
					CatalogItemNameEN: d.CatalogItemNameEN,
					CatalogItemNameCH: d.CatalogItemNameCH,
					Description:       d.Description,
					Quantity:          d.Quantity,
					Unit:              d.Unit,
				})
			}
			if err := tx.Details.InsertMany(copias, actorID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(newID)
}
