package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/application/usecase"
	"github.com/andriansp/epc-catalog-api/internal/infrastructure/pdf"
)

// ItemCategoryHandler maneja las peticiones HTTP del agregado ItemCategory.
type ItemCategoryHandler struct {
	uc  *usecase.ItemCategoryUseCase
	pdf *pdf.CatalogSheetGenerator
}

// NewItemCategoryHandler construye el handler inyectando el caso de uso y el
// generador de fichas.
func NewItemCategoryHandler(uc *usecase.ItemCategoryUseCase, gen *pdf.CatalogSheetGenerator) *ItemCategoryHandler {
	return &ItemCategoryHandler{uc: uc, pdf: gen}
}

// List godoc
// @Summary      Listar item categories (proyección de búsqueda)
// @Description  Devuelve pares distintos (dokumen, master category coalescida),
// @Description  no filas de item category. Admite filtros por nombre de master
// @Description  category y de dokumen.
// @Tags         item_category
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemCategoryListRequest  true  "Paginación, búsqueda y filtros"
// @Success      200   {object}  dto.APIResponse
// @Security     BearerAuth
// @Router       /api/epc/item_category/get [post]
func (h *ItemCategoryHandler) List(c *fiber.Ctx) error {
	var in dto.ItemCategoryListRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.List(in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "listado de item categories", out)
}

// GetByID GET /api/epc/item_category/:id
func (h *ItemCategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "item category encontrada", out)
}

// GetByDokumenID godoc
// @Summary      Listar item categories de un dokumen
// @Description  Si el dokumen no existe devuelve 200 con cabecera nula y page
// @Description  vacía, no 404.
// @Tags         item_category
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del dokumen"
// @Param        body  body  dto.ListRequest  true  "Paginación"
// @Success      200   {object}  dto.APIResponse
// @Security     BearerAuth
// @Router       /api/epc/item_category/dokumen/{id}/get [post]
func (h *ItemCategoryHandler) GetByDokumenID(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.GetByDokumenID(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "item categories del dokumen", out)
}

// Create POST /api/epc/item_category/create
// Escritura compuesta: padre, detalles y find-or-create de dokumen y unidades
// en una sola transacción.
func (h *ItemCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return created(c, "item category creada", out)
}

// Update PUT /api/epc/item_category/:id
// Reemplaza el agregado completo; los ids de los detalles no sobreviven.
func (h *ItemCategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "item category actualizada", out)
}

// Delete DELETE /api/epc/item_category/:id
func (h *ItemCategoryHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "item category borrada", out)
}

// Restore POST /api/epc/item_category/:id/restore
func (h *ItemCategoryHandler) Restore(c *fiber.Ctx) error {
	out, err := h.uc.Restore(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "item category restaurada", out)
}

// ExportPDF godoc
// @Summary      Ficha de catálogo en PDF
// @Tags         item_category
// @Produce      application/pdf
// @Param        id   path  string  true  "ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/epc/item_category/{id}/pdf [get]
func (h *ItemCategoryHandler) ExportPDF(c *fiber.Ctx) error {
	ic, err := h.uc.GetAggregate(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	doc, err := h.pdf.GenerateCatalogSheet(ic)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="item_category_`+ic.ID+`.pdf"`)
	return c.Send(doc)
}
