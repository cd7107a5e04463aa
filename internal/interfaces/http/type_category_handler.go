package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/application/usecase"
)

// TypeCategoryHandler maneja las peticiones HTTP del recurso TypeCategory.
type TypeCategoryHandler struct {
	uc *usecase.TypeCategoryUseCase
}

// NewTypeCategoryHandler construye el handler inyectando el caso de uso.
func NewTypeCategoryHandler(uc *usecase.TypeCategoryUseCase) *TypeCategoryHandler {
	return &TypeCategoryHandler{uc: uc}
}

// List POST /api/epc/type_category/get
// El cuerpo admite category_id para filtrar por igualdad.
func (h *TypeCategoryHandler) List(c *fiber.Ctx) error {
	var in dto.TypeCategoryListRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.List(in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "listado de type categories", out)
}

// GetByID GET /api/epc/type_category/:id
func (h *TypeCategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "type category encontrada", out)
}

// Create POST /api/epc/type_category/create
func (h *TypeCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.TypeCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return created(c, "type category creada", out)
}

// Update PUT /api/epc/type_category/:id
func (h *TypeCategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.TypeCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "type category actualizada", out)
}

// Delete DELETE /api/epc/type_category/:id
func (h *TypeCategoryHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "type category borrada", out)
}

// Restore POST /api/epc/type_category/:id/restore
func (h *TypeCategoryHandler) Restore(c *fiber.Ctx) error {
	out, err := h.uc.Restore(c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "type category restaurada", out)
}
