package usecase

import (
	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/domain"
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

// CategoryUseCase operaciones de aplicación sobre categories.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func categoryFromRequest(id string, req dto.CategoryRequest) *entity.Category {
	return &entity.Category{
		ID:                   id,
		MasterCategoryID:     req.MasterCategoryID,
		MasterCategoryNameEN: req.MasterCategoryNameEN,
		NameEN:               req.NameEN,
		NameCN:               req.NameCN,
		Description:          req.Description,
		Code:                 req.Code,
	}
}

// List devuelve una página de categories vivas.
func (uc *CategoryUseCase) List(req dto.ListRequest) (*dto.ListData, error) {
	q := listQuery(req)
	items, total, err := uc.repo.FindAll(q)
	if err != nil {
		return nil, err
	}
	return &dto.ListData{
		Items:      dto.NewCategoryList(items),
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// GetByID devuelve una category viva o ErrNotFound.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCategoryResponse(c)
	return &out, nil
}

// Create crea una category. El nombre de la master category se guarda tal
// cual llega en el cuerpo (copia denormalizada).
func (uc *CategoryUseCase) Create(req dto.CategoryRequest, actorID string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.Create(categoryFromRequest("", req), actorID)
	if err != nil {
		return nil, err
	}
	out := dto.NewCategoryResponse(c)
	return &out, nil
}

// Update actualiza una category viva o devuelve ErrNotFound.
func (uc *CategoryUseCase) Update(id string, req dto.CategoryRequest, actorID string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.Update(categoryFromRequest(id, req), actorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCategoryResponse(c)
	return &out, nil
}

// Delete borra lógicamente una category viva o devuelve ErrNotFound.
func (uc *CategoryUseCase) Delete(id, actorID string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.SoftDelete(id, actorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCategoryResponse(c)
	return &out, nil
}

// Restore revierte el borrado lógico o devuelve ErrNotFound.
func (uc *CategoryUseCase) Restore(id, actorID string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.Restore(id, actorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCategoryResponse(c)
	return &out, nil
}
