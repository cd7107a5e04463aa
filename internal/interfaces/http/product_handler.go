package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del agregado Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler inyectando el caso de uso.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List POST /api/epc/product/get
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.List(in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "listado de productos", out)
}

// GetByID GET /api/epc/product/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "producto encontrado", out)
}

// Create POST /api/epc/product/create
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return created(c, "producto creado", out)
}

// Update PUT /api/epc/product/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "producto actualizado", out)
}

// Delete DELETE /api/epc/product/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "producto borrado", out)
}

// Restore POST /api/epc/product/:id/restore
func (h *ProductHandler) Restore(c *fiber.Ctx) error {
	out, err := h.uc.Restore(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "producto restaurado", out)
}
