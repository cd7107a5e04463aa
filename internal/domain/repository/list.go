package repository

// ListQuery parámetros comunes de los listados paginados.
// Search vacío desactiva el predicado de búsqueda (no es "match cadena vacía").
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// Normalize aplica los valores por defecto de los listados:
// page=1, limit=10, sort_by=created_at, sort_order=desc.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.SortBy == "" {
		q.SortBy = "created_at"
	}
	if q.SortOrder != "asc" {
		q.SortOrder = "desc"
	}
}

// Offset devuelve el desplazamiento para LIMIT/OFFSET.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
