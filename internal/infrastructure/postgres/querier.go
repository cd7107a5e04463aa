package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae pool y transacción: tanto *pgxpool.Pool como pgx.Tx lo
// satisfacen, así que cada repositorio funciona igual dentro o fuera de una tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}

// emptyToNil normaliza referencias opcionales: cadena vacía equivale a ausente
// y se persiste como NULL.
func emptyToNil(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

// ilikePattern arma el patrón de coincidencia parcial case-insensitive.
func ilikePattern(s string) string {
	return "%" + s + "%"
}

// qualifySortColumn antepone el alias de la tabla primaria salvo que la columna
// ya venga calificada. Solo deja pasar identificadores simples; cualquier otra
// cosa cae al orden por defecto.
func qualifySortColumn(column, alias string) string {
	if column == "" || !isSafeIdentifier(column) {
		column = "created_at"
	}
	if strings.Contains(column, ".") {
		return column
	}
	if alias == "" {
		return column
	}
	return alias + "." + column
}

// sortDirection normaliza la dirección de orden; el default es desc.
func sortDirection(s string) string {
	if strings.EqualFold(s, "asc") {
		return "asc"
	}
	return "desc"
}

func isSafeIdentifier(s string) bool {
	dots := 0
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
