package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

func TestListQuery_Normalize_AplicaDefaults(t *testing.T) {
	q := repository.ListQuery{}
	q.Normalize()

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "created_at", q.SortBy)
	assert.Equal(t, "desc", q.SortOrder)
}

func TestListQuery_Normalize_RespetaValoresValidos(t *testing.T) {
	q := repository.ListQuery{Page: 3, Limit: 25, SortBy: "dokumen_name", SortOrder: "asc"}
	q.Normalize()

	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "dokumen_name", q.SortBy)
	assert.Equal(t, "asc", q.SortOrder)
}

// Cualquier dirección distinta de "asc" cae a desc, incluida la mayúscula.
func TestListQuery_Normalize_DireccionInvalidaCaeADesc(t *testing.T) {
	q := repository.ListQuery{SortOrder: "ASC"}
	q.Normalize()
	assert.Equal(t, "desc", q.SortOrder)

	q = repository.ListQuery{SortOrder: "sideways"}
	q.Normalize()
	assert.Equal(t, "desc", q.SortOrder)
}

func TestListQuery_Normalize_PaginaYLimiteNoPositivos(t *testing.T) {
	q := repository.ListQuery{Page: -2, Limit: 0}
	q.Normalize()

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}

func TestListQuery_Offset(t *testing.T) {
	q := repository.ListQuery{Page: 1, Limit: 10}
	assert.Equal(t, 0, q.Offset())

	q = repository.ListQuery{Page: 4, Limit: 15}
	assert.Equal(t, 45, q.Offset())
}
