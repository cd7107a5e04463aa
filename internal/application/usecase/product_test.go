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

func newProductUC(s *fakeStore) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(&fakeProductRepo{s}, &fakeTxRunner{s})
}

func productRequest(dokumenID *string, detalles int) dto.ProductRequest {
	req := dto.ProductRequest{
		NameEN:    str("Excavator ZX200"),
		VinNumber: str("VIN-123456"),
		ModelType: str("ZX200-5G"),
	}
	for i := 0; i < detalles; i++ {
		req.DataDetails = append(req.DataDetails, dto.ProductDetailRequest{
			DokumenID: dokumenID,
			NameEN:    str("Detail"),
		})
	}
	return req
}

func TestProductCreate_ConDetalles(t *testing.T) {
	s := newFakeStore()
	uc := newProductUC(s)
	dok, err := (&fakeDokumenRepo{s}).Create(&entity.Dokumen{Name: str("Manual ZX200")}, testActor)
	require.NoError(t, err)

	resp, err := uc.Create(context.Background(), productRequest(&dok.ID, 2), testActor)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	require.Len(t, resp.DataDetails, 2)
	assert.Equal(t, resp.ID, resp.DataDetails[0].ProductID)
	assert.Equal(t, "Manual ZX200", *resp.DataDetails[0].DokumenName,
		"el dokumen referenciado se resuelve en la respuesta")
}

func TestProductUpdate_ReemplazaDetallesSinConservarIDs(t *testing.T) {
	s := newFakeStore()
	uc := newProductUC(s)

	creado, err := uc.Create(context.Background(), productRequest(nil, 3), testActor)
	require.NoError(t, err)
	viejos := map[string]bool{}
	for _, d := range creado.DataDetails {
		viejos[d.ID] = true
	}

	actualizado, err := uc.Update(context.Background(), creado.ID, productRequest(nil, 1), testActor)
	require.NoError(t, err)

	require.Len(t, actualizado.DataDetails, 1)
	assert.False(t, viejos[actualizado.DataDetails[0].ID],
		"los ids de detalle no sobreviven al reemplazo")
	assert.Len(t, s.pds, 1, "los detalles anteriores se eliminan físicamente")
}

func TestProductUpdate_NoExiste_RetornaNotFound(t *testing.T) {
	s := newFakeStore()
	uc := newProductUC(s)

	_, err := uc.Update(context.Background(), "no-existe", productRequest(nil, 0), testActor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_CascadaYRestore(t *testing.T) {
	s := newFakeStore()
	uc := newProductUC(s)

	creado, err := uc.Create(context.Background(), productRequest(nil, 2), testActor)
	require.NoError(t, err)

	borrado, err := uc.Delete(context.Background(), creado.ID, testActor)
	require.NoError(t, err)
	assert.True(t, borrado.IsDelete, "delete devuelve la fila recién borrada")
	for _, d := range s.pds {
		assert.True(t, d.IsDelete, "los detalles vivos caen en cascada")
	}

	restaurado, err := uc.Restore(context.Background(), creado.ID, testActor)
	require.NoError(t, err)
	assert.False(t, restaurado.IsDelete)
	assert.Len(t, restaurado.DataDetails, 2, "restore revive los detalles borrados")
}

func TestProductList_PaginaSobreProductosLogicos(t *testing.T) {
	s := newFakeStore()
	uc := newProductUC(s)

	for i := 0; i < 3; i++ {
		_, err := uc.Create(context.Background(), productRequest(nil, 2), testActor)
		require.NoError(t, err)
	}

	out, err := uc.List(dto.ListRequest{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Pagination.Total, "el total cuenta productos, no filas del join")
	assert.Equal(t, 2, out.Pagination.TotalPages)
	items, ok := out.Items.([]dto.ProductResponse)
	require.True(t, ok)
	assert.Len(t, items, 2)
}
