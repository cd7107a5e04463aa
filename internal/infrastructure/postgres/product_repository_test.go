package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductSearchWhere_SinBusquedaSoloFilasVivas(t *testing.T) {
	where, args := productSearchWhere("")

	assert.Equal(t, `WHERE p.deleted_at IS NULL AND p.is_delete = false`, where)
	assert.Empty(t, args, "search '' desactiva el predicado, no es match de cadena vacía")
}

func TestProductSearchWhere_BusquedaCubreNombresVinYDescripcion(t *testing.T) {
	where, args := productSearchWhere("ZX200")

	assert.Equal(t, []any{"%ZX200%"}, args)
	assert.Contains(t, where, "p.product_name_en ILIKE $1")
	assert.Contains(t, where, "p.product_name_cn ILIKE $1")
	assert.Contains(t, where, "p.vin_number ILIKE $1")
	assert.Contains(t, where, "p.product_description ILIKE $1")
}
