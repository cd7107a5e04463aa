package usecase

import (
	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/domain"
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

// TypeCategoryUseCase operaciones de aplicación sobre type categories.
type TypeCategoryUseCase struct {
	repo repository.TypeCategoryRepository
}

// NewTypeCategoryUseCase construye el caso de uso.
func NewTypeCategoryUseCase(repo repository.TypeCategoryRepository) *TypeCategoryUseCase {
	return &TypeCategoryUseCase{repo: repo}
}

func typeCategoryFromRequest(id string, req dto.TypeCategoryRequest) *entity.TypeCategory {
	return &entity.TypeCategory{
		ID:          id,
		CategoryID:  req.CategoryID,
		NameEN:      req.NameEN,
		NameCN:      req.NameCN,
		Description: req.Description,
		Code:        req.Code,
	}
}

// List devuelve una página de type categories vivas, con filtro opcional de
// igualdad por category_id.
func (uc *TypeCategoryUseCase) List(req dto.TypeCategoryListRequest) (*dto.ListData, error) {
	q := listQuery(req.ListRequest)
	items, total, err := uc.repo.FindAll(q, req.CategoryID)
	if err != nil {
		return nil, err
	}
	return &dto.ListData{
		Items:      dto.NewTypeCategoryList(items),
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// GetByID devuelve una type category viva o ErrNotFound.
func (uc *TypeCategoryUseCase) GetByID(id string) (*dto.TypeCategoryResponse, error) {
	tc, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewTypeCategoryResponse(tc)
	return &out, nil
}

// Create crea una type category estampando el actor.
func (uc *TypeCategoryUseCase) Create(req dto.TypeCategoryRequest, actorID string) (*dto.TypeCategoryResponse, error) {
	tc, err := uc.repo.Create(typeCategoryFromRequest("", req), actorID)
	if err != nil {
		return nil, err
	}
	out := dto.NewTypeCategoryResponse(tc)
	return &out, nil
}

// Update actualiza una type category viva o devuelve ErrNotFound.
func (uc *TypeCategoryUseCase) Update(id string, req dto.TypeCategoryRequest, actorID string) (*dto.TypeCategoryResponse, error) {
	tc, err := uc.repo.Update(typeCategoryFromRequest(id, req), actorID)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewTypeCategoryResponse(tc)
	return &out, nil
}

// Delete borra lógicamente una type category viva o devuelve ErrNotFound.
func (uc *TypeCategoryUseCase) Delete(id, actorID string) (*dto.TypeCategoryResponse, error) {
	tc, err := uc.repo.SoftDelete(id, actorID)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewTypeCategoryResponse(tc)
	return &out, nil
}

// Restore revierte el borrado lógico o devuelve ErrNotFound.
func (uc *TypeCategoryUseCase) Restore(id, actorID string) (*dto.TypeCategoryResponse, error) {
	tc, err := uc.repo.Restore(id, actorID)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewTypeCategoryResponse(tc)
	return &out, nil
}
