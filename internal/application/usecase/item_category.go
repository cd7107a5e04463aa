package usecase

import (
	"context"

	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/domain"
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

// ItemCategoryUseCase operaciones de aplicación sobre el agregado
// item_category. Create y update son escrituras compuestas: resuelven el
// dokumen y las unidades por nombre (find-or-create) y escriben padre y
// detalles en una sola transacción.
type ItemCategoryUseCase struct {
	repo    repository.ItemCategoryRepository
	dokumen repository.DokumenRepository
	tx      repository.TxRunner
}

// NewItemCategoryUseCase construye el caso de uso.
func NewItemCategoryUseCase(repo repository.ItemCategoryRepository, dokumen repository.DokumenRepository, tx repository.TxRunner) *ItemCategoryUseCase {
	return &ItemCategoryUseCase{repo: repo, dokumen: dokumen, tx: tx}
}

// findOrCreateDokumen resuelve un dokumen vivo por nombre exacto, creándolo si
// no existe. Nombre vacío devuelve (nil, nil) sin efectos.
func findOrCreateDokumen(repo repository.DokumenRepository, name *string, actorID string) (*entity.Dokumen, error) {
	if name == nil || *name == "" {
		return nil, nil
	}
	d, err := repo.FindLiveByName(*name)
	if err != nil {
		return nil, err
	}
	if d != nil {
		return d, nil
	}
	return repo.Create(&entity.Dokumen{Name: name}, actorID)
}

// findOrCreateUnit resuelve una unit viva por unit_name_en exacto, creándola
// si no existe; la creación siembra unit_name_cn con el mismo texto. Nombre
// vacío devuelve (nil, nil) sin efectos.
func findOrCreateUnit(repo repository.UnitRepository, name *string, actorID string) (*entity.Unit, error) {
	if name == nil || *name == "" {
		return nil, nil
	}
	u, err := repo.FindLiveByName(*name)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}
	return repo.Create(&entity.Unit{NameEN: name, NameCN: name}, actorID)
}

// List devuelve una página de la proyección de búsqueda: pares distintos
// (dokumen, master category coalescida).
func (uc *ItemCategoryUseCase) List(req dto.ItemCategoryListRequest) (*dto.ListData, error) {
	q := listQuery(req.ListRequest)
	rows, total, err := uc.repo.FindAll(q, repository.ItemCategoryFilters{
		MasterCategoryNameEN: req.MasterCategoryNameEN,
		DokumenName:          req.DokumenName,
	})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.ItemCategoryListRow{}
	}
	return &dto.ListData{
		Items:      rows,
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// GetByID devuelve el agregado completo o ErrNotFound.
func (uc *ItemCategoryUseCase) GetByID(id string) (*dto.ItemCategoryResponse, error) {
	ic, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if ic == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewItemCategoryResponse(ic), nil
}

// GetAggregate devuelve el agregado de lectura sin mapear a DTO; lo usa la
// generación de la ficha en PDF.
func (uc *ItemCategoryUseCase) GetAggregate(id string) (*repository.ItemCategoryWithRelations, error) {
	ic, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if ic == nil {
		return nil, domain.ErrNotFound
	}
	return ic, nil
}

// GetByDokumenID lista los item categories vivos de un dokumen. Si el dokumen
// no existe o no está vivo devuelve una página vacía con cabecera nula, no un
// error.
func (uc *ItemCategoryUseCase) GetByDokumenID(dokumenID string, req dto.ListRequest) (*dto.DokumenItemsData, error) {
	q := listQuery(req)

	dok, err := uc.dokumen.FindByID(dokumenID)
	if err != nil {
		return nil, err
	}
	if dok == nil {
		return &dto.DokumenItemsData{
			Header:     nil,
			Items:      []repository.DokumenItemRow{},
			Pagination: dto.NewPagination(q.Page, q.Limit, 0),
		}, nil
	}

	rows, total, err := uc.repo.FindByDokumenID(dokumenID, q)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.DokumenItemRow{}
	}
	header := &dto.DokumenItemsHeader{DokumenName: dok.Name}
	if len(rows) > 0 {
		header.MasterCategoryNameEN = rows[0].MasterCategoryNameEN
		header.MasterCategoryNameCN = rows[0].MasterCategoryNameCN
	}
	return &dto.DokumenItemsData{
		Header:     header,
		Items:      rows,
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// Create escribe el agregado completo en una transacción: resuelve el dokumen
// por nombre, inserta el padre y luego cada detalle resolviendo su unidad.
func (uc *ItemCategoryUseCase) Create(ctx context.Context, req dto.ItemCategoryRequest, actorID string) (*dto.ItemCategoryResponse, error) {
	var parentID string
	err := uc.tx.RunItemCategoryTx(ctx, func(tx repository.ItemCategoryTx) error {
		dok, err := findOrCreateDokumen(tx.Dokumen, req.DokumenName, actorID)
		if err != nil {
			return err
		}
		var dokID *string
		if dok != nil {
			dokID = &dok.ID
		}

		parent, err := tx.ItemCategories.Insert(&entity.ItemCategory{
			TypeCategoryID: req.TypeCategoryID,
			CategoryID:     req.CategoryID,
			DokumenID:      dokID,
			NameEN:         req.NameEN,
			NameCN:         req.NameCN,
			Description:    req.Description,
			Foto:           req.Foto,
		}, actorID)
		if err != nil {
			return err
		}
		parentID = parent.ID

		return insertItemDetails(tx, parent.ID, req.DataItems, actorID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(parentID)
}

// insertItemDetails inserta las líneas de detalle resolviendo cada unidad por
// nombre dentro de la misma transacción.
func insertItemDetails(tx repository.ItemCategoryTx, parentID string, items []dto.ItemCategoryDetailRequest, actorID string) error {
	for i := range items {
		it := items[i]
		if _, err := findOrCreateUnit(tx.Units, it.Unit, actorID); err != nil {
			return err
		}
		err := tx.Details.Insert(&entity.ItemCategoryDetail{
			ItemCategoryID:    &parentID,
			TargetID:          it.TargetID,
			PartNumber:        it.PartNumber,
			CatalogItemNameEN: it.CatalogItemNameEN,
			CatalogItemNameCH: it.CatalogItemNameCH,
			Description:       it.Description,
			Quantity:          it.Quantity,
			Unit:              it.Unit,
		}, actorID)
		if err != nil {
			return err
		}
	}
	return nil
}

// Update reemplaza el agregado completo en una transacción: actualiza los
// campos del padre y sustituye toda la colección de detalles por la del
// cuerpo (borrado físico más reinserción; los ids de detalle no sobreviven).
// Si el padre ya tiene dokumen y llega un nombre nuevo, el dokumen compartido
// se renombra in-place. La vinculación a un dokumen solo ocurre en create: un
// padre sin dokumen sigue sin dokumen aunque el cuerpo traiga un nombre.
func (uc *ItemCategoryUseCase) Update(ctx context.Context, id string, req dto.ItemCategoryRequest, actorID string) (*dto.ItemCategoryResponse, error) {
	err := uc.tx.RunItemCategoryTx(ctx, func(tx repository.ItemCategoryTx) error {
		existing, err := tx.ItemCategories.FindLiveByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		if existing.DokumenID != nil && req.DokumenName != nil && *req.DokumenName != "" {
			if err := tx.Dokumen.UpdateName(*existing.DokumenID, *req.DokumenName, actorID); err != nil {
				return err
			}
		}

		updated, err := tx.ItemCategories.UpdateFields(&entity.ItemCategory{
			ID:             id,
			TypeCategoryID: req.TypeCategoryID,
			CategoryID:     req.CategoryID,
			DokumenID:      existing.DokumenID,
			NameEN:         req.NameEN,
			NameCN:         req.NameCN,
			Description:    req.Description,
			Foto:           req.Foto,
		}, actorID)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrNotFound
		}

		if err := tx.Details.HardDeleteByItemCategoryID(id); err != nil {
			return err
		}
		return insertItemDetails(tx, id, req.DataItems, actorID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete borra lógicamente el padre y, en cascada, sus detalles vivos, en una
// transacción. Devuelve la fila recién borrada.
func (uc *ItemCategoryUseCase) Delete(ctx context.Context, id, actorID string) (*dto.ItemCategoryResponse, error) {
	var deleted *entity.ItemCategory
	err := uc.tx.RunItemCategoryTx(ctx, func(tx repository.ItemCategoryTx) error {
		parent, err := tx.ItemCategories.SoftDelete(id, actorID)
		if err != nil {
			return err
		}
		if parent == nil {
			return domain.ErrNotFound
		}
		deleted = parent
		return tx.Details.SoftDeleteByItemCategoryID(id, actorID)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewItemCategoryEntityResponse(deleted), nil
}

// Restore revierte el borrado lógico del padre y revive sus detalles
// borrados, en una transacción.
func (uc *ItemCategoryUseCase) Restore(ctx context.Context, id, actorID string) (*dto.ItemCategoryResponse, error) {
	err := uc.tx.RunItemCategoryTx(ctx, func(tx repository.ItemCategoryTx) error {
		parent, err := tx.ItemCategories.Restore(id, actorID)
		if err != nil {
			return err
		}
		if parent == nil {
			return domain.ErrNotFound
		}
		return tx.Details.RestoreByItemCategoryID(id, actorID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}
