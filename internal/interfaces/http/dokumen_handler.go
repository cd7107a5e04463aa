package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/application/usecase"
)

// DokumenHandler maneja las peticiones HTTP del recurso Dokumen, incluido el
// duplicador.
type DokumenHandler struct {
	uc *usecase.DokumenUseCase
}

// NewDokumenHandler construye el handler inyectando el caso de uso.
func NewDokumenHandler(uc *usecase.DokumenUseCase) *DokumenHandler {
	return &DokumenHandler{uc: uc}
}

// List POST /api/epc/dokumen/get
func (h *DokumenHandler) List(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.List(in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "listado de dokumen", out)
}

// GetByID GET /api/epc/dokumen/:id
func (h *DokumenHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "dokumen encontrado", out)
}

// Create POST /api/epc/dokumen/create
func (h *DokumenHandler) Create(c *fiber.Ctx) error {
	var in dto.DokumenRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return created(c, "dokumen creado", out)
}

// Update PUT /api/epc/dokumen/:id
func (h *DokumenHandler) Update(c *fiber.Ctx) error {
	var in dto.DokumenRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "dokumen actualizado", out)
}

// Delete DELETE /api/epc/dokumen/:id
func (h *DokumenHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "dokumen borrado", out)
}

// Restore POST /api/epc/dokumen/:id/restore
func (h *DokumenHandler) Restore(c *fiber.Ctx) error {
	out, err := h.uc.Restore(c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "dokumen restaurado", out)
}

// Duplicate godoc
// @Summary      Duplicar dokumen en profundidad
// @Description  Crea una copia del dokumen con sus item categories vivos y
// @Description  sus detalles, todo con ids nuevos, en una sola transacción.
// @Tags         dokumen
// @Produce      json
// @Param        id   path  string  true  "ID del dokumen original"
// @Success      201  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/epc/dokumen/{id}/duplicate [post]
func (h *DokumenHandler) Duplicate(c *fiber.Ctx) error {
	out, err := h.uc.Duplicate(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return created(c, "dokumen duplicado", out)
}
