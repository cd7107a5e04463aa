package repository

import "github.com/andriansp/epc-catalog-api/internal/domain/entity"

// UnitRepository puerto de persistencia para Unit.
// FindLiveByName busca una fila viva por unit_name_en exacto; es la mitad de
// lectura del find-or-create que ejecuta el escritor compuesto.
type UnitRepository interface {
	FindAll(q ListQuery) ([]entity.Unit, int, error)
	FindByID(id string) (*entity.Unit, error)
	FindLiveByName(name string) (*entity.Unit, error)
	Create(u *entity.Unit, actorID string) (*entity.Unit, error)
	Update(u *entity.Unit, actorID string) (*entity.Unit, error)
	SoftDelete(id, actorID string) (*entity.Unit, error)
	HardDelete(id string) error
}
