package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/application/usecase"
	"github.com/andriansp/epc-catalog-api/internal/domain"
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
)

const testActor = "00000000-0000-0000-0000-0000000000aa"

func str(s string) *string { return &s }
func intp(n int) *int      { return &n }

func newItemCategoryUC(s *fakeStore) *usecase.ItemCategoryUseCase {
	return usecase.NewItemCategoryUseCase(
		&fakeItemCategoryRepo{s},
		&fakeDokumenRepo{s},
		&fakeTxRunner{s},
	)
}

func itemCategoryRequest(dokumenName string, units ...string) dto.ItemCategoryRequest {
	req := dto.ItemCategoryRequest{
		NameEN:      str("Cylinder Head"),
		NameCN:      str("缸盖"),
		Description: str("cylinder head assembly"),
	}
	if dokumenName != "" {
		req.DokumenName = str(dokumenName)
	}
	for i, u := range units {
		item := dto.ItemCategoryDetailRequest{
			PartNumber:        str("PN-00" + string(rune('1'+i))),
			CatalogItemNameEN: str("Bolt"),
			Quantity:          intp(i + 1),
		}
		if u != "" {
			item.Unit = str(u)
		}
		req.DataItems = append(req.DataItems, item)
	}
	return req
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — escritura compuesta con resolución find-or-create
// ──────────────────────────────────────────────────────────────────────────────

func TestItemCategoryCreate_ResuelveDokumenYUnidadesPorNombre(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)

	resp, err := uc.Create(context.Background(), itemCategoryRequest("EPC-001", "pcs", "pcs"), testActor)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	require.NotNil(t, resp.DokumenID, "el padre debe quedar ligado al dokumen resuelto")
	assert.Equal(t, "EPC-001", *resp.DokumenName)
	require.Len(t, resp.DataItems, 2)
	assert.Equal(t, "pcs", *resp.DataItems[0].UnitNameEN,
		"el nombre de la unidad debe resolverse en la respuesta")

	assert.Len(t, s.dokumen, 1, "el dokumen se crea una sola vez")
	assert.Len(t, s.units, 1, "dos detalles con la misma unidad comparten una sola fila")
	assert.Equal(t, "pcs", *s.units[0].NameCN, "la creación siembra unit_name_cn con el mismo texto")
}

func TestItemCategoryCreate_ReutilizaDokumenVivoExistente(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)
	existente, err := (&fakeDokumenRepo{s}).Create(&entity.Dokumen{Name: str("EPC-001")}, testActor)
	require.NoError(t, err)

	resp, err := uc.Create(context.Background(), itemCategoryRequest("EPC-001"), testActor)
	require.NoError(t, err)

	require.NotNil(t, resp.DokumenID)
	assert.Equal(t, existente.ID, *resp.DokumenID, "nombre exacto vivo: se reutiliza, no se duplica")
	assert.Len(t, s.dokumen, 1)
}

func TestItemCategoryCreate_NombresVaciosNoCreanFilas(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)

	resp, err := uc.Create(context.Background(), itemCategoryRequest("", ""), testActor)
	require.NoError(t, err)

	assert.Nil(t, resp.DokumenID, "sin nombre de dokumen el padre queda sin referencia")
	assert.Empty(t, s.dokumen, "nombre vacío no dispara el find-or-create de dokumen")
	assert.Empty(t, s.units, "unidad vacía no dispara el find-or-create de units")
	require.Len(t, resp.DataItems, 1, "el detalle se inserta igualmente, con unidad nula")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — reemplazo completo de la colección de detalles
// ──────────────────────────────────────────────────────────────────────────────

func TestItemCategoryUpdate_ReemplazaDetallesSinConservarIDs(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)

	creado, err := uc.Create(context.Background(), itemCategoryRequest("EPC-001", "pcs", "set"), testActor)
	require.NoError(t, err)
	require.Len(t, creado.DataItems, 2)
	viejos := map[string]bool{}
	for _, d := range creado.DataItems {
		viejos[d.ID] = true
	}

	actualizado, err := uc.Update(context.Background(), creado.ID, itemCategoryRequest("EPC-001", "pcs"), testActor)
	require.NoError(t, err)

	require.Len(t, actualizado.DataItems, 1, "la colección del cuerpo sustituye a la anterior")
	assert.False(t, viejos[actualizado.DataItems[0].ID],
		"los ids de detalle no sobreviven al reemplazo")
	assert.Len(t, s.icds, 1, "los detalles anteriores se eliminan físicamente")
}

func TestItemCategoryUpdate_RenombraDokumenCompartidoInPlace(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)

	creado, err := uc.Create(context.Background(), itemCategoryRequest("Nombre Viejo"), testActor)
	require.NoError(t, err)
	require.NotNil(t, creado.DokumenID)

	actualizado, err := uc.Update(context.Background(), creado.ID, itemCategoryRequest("Nombre Nuevo"), testActor)
	require.NoError(t, err)

	require.NotNil(t, actualizado.DokumenID)
	assert.Equal(t, *creado.DokumenID, *actualizado.DokumenID,
		"el dokumen existente se renombra, no se resuelve de nuevo")
	assert.Equal(t, "Nombre Nuevo", *actualizado.DokumenName)
	assert.Len(t, s.dokumen, 1, "renombrar no crea un segundo dokumen")
}

func TestItemCategoryUpdate_SinDokumenIgnoraNombreNuevo(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)

	creado, err := uc.Create(context.Background(), itemCategoryRequest(""), testActor)
	require.NoError(t, err)
	require.Nil(t, creado.DokumenID)

	actualizado, err := uc.Update(context.Background(), creado.ID, itemCategoryRequest("EPC-002"), testActor)
	require.NoError(t, err)

	assert.Nil(t, actualizado.DokumenID,
		"la vinculación a un dokumen solo ocurre en create; update no adopta uno nuevo")
	assert.Empty(t, s.dokumen, "el nombre recibido no dispara el find-or-create en update")
}

func TestItemCategoryUpdate_NoExiste_RetornaNotFound(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)

	_, err := uc.Update(context.Background(), "no-existe", itemCategoryRequest(""), testActor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / Restore — cascada sobre los detalles
// ──────────────────────────────────────────────────────────────────────────────

func TestItemCategoryDelete_CascadaYRestore(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)

	creado, err := uc.Create(context.Background(), itemCategoryRequest("EPC-001", "pcs", "pcs"), testActor)
	require.NoError(t, err)

	borrado, err := uc.Delete(context.Background(), creado.ID, testActor)
	require.NoError(t, err)
	assert.True(t, borrado.IsDelete, "delete devuelve la fila recién borrada")
	for _, d := range s.icds {
		assert.True(t, d.IsDelete, "los detalles vivos caen en cascada")
	}

	_, err = uc.GetByID(creado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "una fila borrada no es visible en lectura")

	restaurado, err := uc.Restore(context.Background(), creado.ID, testActor)
	require.NoError(t, err)
	assert.False(t, restaurado.IsDelete)
	assert.Len(t, restaurado.DataItems, 2, "restore revive los detalles borrados")
}

func TestItemCategoryDelete_NoExiste_RetornaNotFound(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)

	_, err := uc.Delete(context.Background(), "no-existe", testActor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestItemCategoryList_ColapsaFilasPorDokumen(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)

	// Dos item categories sobre el mismo dokumen y uno sobre otro.
	_, err := uc.Create(context.Background(), itemCategoryRequest("EPC-001"), testActor)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), itemCategoryRequest("EPC-001"), testActor)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), itemCategoryRequest("EPC-002"), testActor)
	require.NoError(t, err)

	out, err := uc.List(dto.ItemCategoryListRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Pagination.Total,
		"el listado cuenta pares distintos (dokumen, master), no item categories")
	assert.Equal(t, 1, out.Pagination.Page)
	assert.Equal(t, 10, out.Pagination.Limit, "los defaults de paginación se reflejan en la respuesta")
}

func TestItemCategoryGetByDokumenID_DokumenInexistente(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)

	out, err := uc.GetByDokumenID("no-existe", dto.ListRequest{})
	require.NoError(t, err, "dokumen ausente no es un error, es una página vacía")

	assert.Nil(t, out.Header, "sin dokumen la cabecera es nula")
	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.Pagination.Total)
	assert.Equal(t, 1, out.Pagination.Page)
}

func TestItemCategoryGetByDokumenID_ConFilas(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)

	creado, err := uc.Create(context.Background(), itemCategoryRequest("EPC-001"), testActor)
	require.NoError(t, err)

	out, err := uc.GetByDokumenID(*creado.DokumenID, dto.ListRequest{})
	require.NoError(t, err)

	require.NotNil(t, out.Header)
	assert.Equal(t, "EPC-001", *out.Header.DokumenName)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Pagination.Total)
}

func TestItemCategoryGetByID_NoExiste_RetornaNotFound(t *testing.T) {
	s := newFakeStore()
	uc := newItemCategoryUC(s)

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
