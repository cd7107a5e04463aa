package repository

import "github.com/andriansp/epc-catalog-api/internal/domain/entity"

// DokumenListRow fila del listado de dokumen. NameAll es la etiqueta compuesta
// concat_ws(' - ', dokumen_name, category_name_en, type_category_name_en) que
// produce el join agrupado con las categorías de sus item categories vivos.
type DokumenListRow struct {
	entity.Dokumen
	NameAll *string
}

// DokumenRepository puerto de persistencia para Dokumen.
// FindLiveByName y UpdateName existen para el escritor compuesto de
// item_category: resolución find-or-create por nombre y renombrado in-place
// del dokumen compartido durante un update.
type DokumenRepository interface {
	FindAll(q ListQuery) ([]DokumenListRow, int, error)
	FindByID(id string) (*entity.Dokumen, error)
	FindLiveByName(name string) (*entity.Dokumen, error)
	Create(d *entity.Dokumen, actorID string) (*entity.Dokumen, error)
	Update(d *entity.Dokumen, actorID string) (*entity.Dokumen, error)
	UpdateName(id, name, actorID string) error
	SoftDelete(id, actorID string) (*entity.Dokumen, error)
	Restore(id, actorID string) (*entity.Dokumen, error)
	HardDelete(id string) error
}
