package usecase

import (
	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/domain"
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

// UnitUseCase operaciones de aplicación sobre units. Este módulo no expone
// restore.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// List devuelve una página de units vivas.
func (uc *UnitUseCase) List(req dto.ListRequest) (*dto.ListData, error) {
	q := listQuery(req)
	items, total, err := uc.repo.FindAll(q)
	if err != nil {
		return nil, err
	}
	return &dto.ListData{
		Items:      dto.NewUnitList(items),
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// GetByID devuelve una unit viva o ErrNotFound.
func (uc *UnitUseCase) GetByID(id string) (*dto.UnitResponse, error) {
	u, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewUnitResponse(u)
	return &out, nil
}

// Create crea una unit estampando el actor.
func (uc *UnitUseCase) Create(req dto.UnitRequest, actorID string) (*dto.UnitResponse, error) {
	u, err := uc.repo.Create(&entity.Unit{
		NameEN:      req.NameEN,
		NameCN:      req.NameCN,
		Description: req.Description,
	}, actorID)
	if err != nil {
		return nil, err
	}
	out := dto.NewUnitResponse(u)
	return &out, nil
}

// Update actualiza una unit viva o devuelve ErrNotFound.
func (uc *UnitUseCase) Update(id string, req dto.UnitRequest, actorID string) (*dto.UnitResponse, error) {
	u, err := uc.repo.Update(&entity.Unit{
		ID:          id,
		NameEN:      req.NameEN,
		NameCN:      req.NameCN,
		Description: req.Description,
	}, actorID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewUnitResponse(u)
	return &out, nil
}

// Delete borra lógicamente una unit viva o devuelve ErrNotFound.
func (uc *UnitUseCase) Delete(id, actorID string) (*dto.UnitResponse, error) {
	u, err := uc.repo.SoftDelete(id, actorID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewUnitResponse(u)
	return &out, nil
}
