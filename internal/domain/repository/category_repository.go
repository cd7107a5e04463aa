package repository

import "github.com/andriansp/epc-catalog-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para Category.
type CategoryRepository interface {
	FindAll(q ListQuery) ([]entity.Category, int, error)
	FindByID(id string) (*entity.Category, error)
	Create(c *entity.Category, actorID string) (*entity.Category, error)
	Update(c *entity.Category, actorID string) (*entity.Category, error)
	SoftDelete(id, actorID string) (*entity.Category, error)
	Restore(id, actorID string) (*entity.Category, error)
	HardDelete(id string) error
}
