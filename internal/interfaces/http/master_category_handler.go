package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/application/usecase"
)

// MasterCategoryHandler maneja las peticiones HTTP del recurso MasterCategory.
type MasterCategoryHandler struct {
	uc *usecase.MasterCategoryUseCase
}

// NewMasterCategoryHandler construye el handler inyectando el caso de uso.
func NewMasterCategoryHandler(uc *usecase.MasterCategoryUseCase) *MasterCategoryHandler {
	return &MasterCategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar master categories
// @Tags         master_category
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ListRequest  true  "Paginación y búsqueda"
// @Success      200   {object}  dto.APIResponse
// @Security     BearerAuth
// @Router       /api/epc/master_category/get [post]
func (h *MasterCategoryHandler) List(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.List(in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "listado de master categories", out)
}

// GetByID godoc
// @Summary      Obtener master category por ID
// @Tags         master_category
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/epc/master_category/{id} [get]
func (h *MasterCategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "master category encontrada", out)
}

// Create godoc
// @Summary      Crear master category
// @Tags         master_category
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MasterCategoryRequest  true  "Datos"
// @Success      201   {object}  dto.APIResponse
// @Security     BearerAuth
// @Router       /api/epc/master_category/create [post]
func (h *MasterCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.MasterCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return created(c, "master category creada", out)
}

// Update godoc
// @Summary      Actualizar master category
// @Tags         master_category
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID"
// @Param        body  body  dto.MasterCategoryRequest  true  "Datos"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/epc/master_category/{id} [put]
func (h *MasterCategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.MasterCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "master category actualizada", out)
}

// Delete godoc
// @Summary      Borrar master category (lógico)
// @Tags         master_category
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/epc/master_category/{id} [delete]
func (h *MasterCategoryHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "master category borrada", out)
}

// Restore godoc
// @Summary      Restaurar master category
// @Tags         master_category
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/epc/master_category/{id}/restore [post]
func (h *MasterCategoryHandler) Restore(c *fiber.Ctx) error {
	out, err := h.uc.Restore(c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "master category restaurada", out)
}
