// Package usecase contiene la lógica de aplicación: orquesta los puertos de
// persistencia y mapea entidades a DTOs. Las mutaciones multi-paso de los
// agregados corren dentro de transacciones vía repository.TxRunner.
package usecase

import (
	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

// listQuery convierte el cuerpo del listado y aplica los defaults antes de
// tocar el repositorio, para que la paginación de la respuesta use los
// valores efectivos.
func listQuery(req dto.ListRequest) repository.ListQuery {
	q := repository.ListQuery{
		Page:      req.Page,
		Limit:     req.Limit,
		Search:    req.Search,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	q.Normalize()
	return q
}
