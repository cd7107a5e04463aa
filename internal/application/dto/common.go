package dto

import (
	"time"

	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
)

// ListRequest cuerpo común de los endpoints de listado (POST /get).
type ListRequest struct {
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	Search    string `json:"search"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

// Pagination metadatos de paginación de los listados.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination calcula totalPages como ceil(total/limit).
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// ListData payload de los listados: items más paginación.
type ListData struct {
	Items      any        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// APIResponse sobre de respuesta exitosa.
type APIResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse sobre de respuesta de error.
type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// AuditFields campos de auditoría expuestos en las respuestas.
type AuditFields struct {
	CreatedAt time.Time  `json:"created_at"`
	CreatedBy *string    `json:"created_by"`
	UpdatedAt time.Time  `json:"updated_at"`
	UpdatedBy *string    `json:"updated_by"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy *string    `json:"deleted_by"`
	IsDelete  bool       `json:"is_delete"`
}

// NewAuditFields mapea los campos de auditoría de una entidad.
func NewAuditFields(a entity.Audit) AuditFields {
	return AuditFields{
		CreatedAt: a.CreatedAt,
		CreatedBy: a.CreatedBy,
		UpdatedAt: a.UpdatedAt,
		UpdatedBy: a.UpdatedBy,
		DeletedAt: a.DeletedAt,
		DeletedBy: a.DeletedBy,
		IsDelete:  a.IsDelete,
	}
}
