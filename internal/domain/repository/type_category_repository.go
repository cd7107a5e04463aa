package repository

import "github.com/andriansp/epc-catalog-api/internal/domain/entity"

// TypeCategoryRepository puerto de persistencia para TypeCategory.
// FindAll acepta un filtro opcional de igualdad por category_id.
type TypeCategoryRepository interface {
	FindAll(q ListQuery, categoryID string) ([]entity.TypeCategory, int, error)
	FindByID(id string) (*entity.TypeCategory, error)
	Create(tc *entity.TypeCategory, actorID string) (*entity.TypeCategory, error)
	Update(tc *entity.TypeCategory, actorID string) (*entity.TypeCategory, error)
	SoftDelete(id, actorID string) (*entity.TypeCategory, error)
	Restore(id, actorID string) (*entity.TypeCategory, error)
	HardDelete(id string) error
}
