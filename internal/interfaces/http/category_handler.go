package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP del recurso Category.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler inyectando el caso de uso.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List POST /api/epc/category/get
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.List(in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "listado de categories", out)
}

// GetByID GET /api/epc/category/:id
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "category encontrada", out)
}

// Create POST /api/epc/category/create
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return created(c, "category creada", out)
}

// Update PUT /api/epc/category/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "category actualizada", out)
}

// Delete DELETE /api/epc/category/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "category borrada", out)
}

// Restore POST /api/epc/category/:id/restore
func (h *CategoryHandler) Restore(c *fiber.Ctx) error {
	out, err := h.uc.Restore(c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "category restaurada", out)
}
