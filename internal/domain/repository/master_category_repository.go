package repository

import "github.com/andriansp/epc-catalog-api/internal/domain/entity"

// MasterCategoryRepository puerto de persistencia para MasterCategory (DIP).
// Las operaciones de mutación devuelven (nil, nil) cuando no existe una fila
// en el estado de ciclo de vida requerido; el caller lo mapea a not-found.
type MasterCategoryRepository interface {
	FindAll(q ListQuery) ([]entity.MasterCategory, int, error)
	FindByID(id string) (*entity.MasterCategory, error)
	Create(mc *entity.MasterCategory, actorID string) (*entity.MasterCategory, error)
	Update(mc *entity.MasterCategory, actorID string) (*entity.MasterCategory, error)
	SoftDelete(id, actorID string) (*entity.MasterCategory, error)
	Restore(id, actorID string) (*entity.MasterCategory, error)
	HardDelete(id string) error
}
