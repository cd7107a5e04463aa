package usecase

import (
	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/domain"
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

// MasterCategoryUseCase operaciones de aplicación sobre master categories.
type MasterCategoryUseCase struct {
	repo repository.MasterCategoryRepository
}

// NewMasterCategoryUseCase construye el caso de uso.
func NewMasterCategoryUseCase(repo repository.MasterCategoryRepository) *MasterCategoryUseCase {
	return &MasterCategoryUseCase{repo: repo}
}

// List devuelve una página de master categories vivas.
func (uc *MasterCategoryUseCase) List(req dto.ListRequest) (*dto.ListData, error) {
	q := listQuery(req)
	items, total, err := uc.repo.FindAll(q)
	if err != nil {
		return nil, err
	}
	return &dto.ListData{
		Items:      dto.NewMasterCategoryList(items),
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// GetByID devuelve una master category viva o ErrNotFound.
func (uc *MasterCategoryUseCase) GetByID(id string) (*dto.MasterCategoryResponse, error) {
	mc, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if mc == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewMasterCategoryResponse(mc)
	return &out, nil
}

// Create crea una master category estampando el actor.
func (uc *MasterCategoryUseCase) Create(req dto.MasterCategoryRequest, actorID string) (*dto.MasterCategoryResponse, error) {
	mc, err := uc.repo.Create(&entity.MasterCategory{
		NameEN:      req.NameEN,
		NameCN:      req.NameCN,
		Description: req.Description,
	}, actorID)
	if err != nil {
		return nil, err
	}
	out := dto.NewMasterCategoryResponse(mc)
	return &out, nil
}

// Update actualiza una master category viva o devuelve ErrNotFound.
func (uc *MasterCategoryUseCase) Update(id string, req dto.MasterCategoryRequest, actorID string) (*dto.MasterCategoryResponse, error) {
	mc, err := uc.repo.Update(&entity.MasterCategory{
		ID:          id,
		NameEN:      req.NameEN,
		NameCN:      req.NameCN,
		Description: req.Description,
	}, actorID)
	if err != nil {
		return nil, err
	}
	if mc == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewMasterCategoryResponse(mc)
	return &out, nil
}

// Delete borra lógicamente una master category viva o devuelve ErrNotFound.
func (uc *MasterCategoryUseCase) Delete(id, actorID string) (*dto.MasterCategoryResponse, error) {
	mc, err := uc.repo.SoftDelete(id, actorID)
	if err != nil {
		return nil, err
	}
	if mc == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewMasterCategoryResponse(mc)
	return &out, nil
}

// Restore revierte el borrado lógico o devuelve ErrNotFound si la fila no
// está borrada.
func (uc *MasterCategoryUseCase) Restore(id, actorID string) (*dto.MasterCategoryResponse, error) {
	mc, err := uc.repo.Restore(id, actorID)
	if err != nil {
		return nil, err
	}
	if mc == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewMasterCategoryResponse(mc)
	return &out, nil
}
