// seed aplica migrations/schema.sql y puebla datos base del catálogo:
// un usuario admin, unidades comunes y una jerarquía de ejemplo.
//
// Uso: go run ./cmd/seed [ruta/schema.sql]
// La conexión se toma de las mismas env vars que cmd/api (DB_HOST, DB_PORT...).
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/andriansp/epc-catalog-api/internal/infrastructure/postgres"
	"github.com/andriansp/epc-catalog-api/pkg/config"
)

func main() {
	schemaPath := "migrations/schema.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "leer esquema: %v\n", err)
		os.Exit(1)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "aplicar esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("esquema aplicado")

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
		os.Exit(1)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (user_name, email, password_hash, role)
		VALUES ('Administrador', 'admin@example.com', $1, 'admin')
		ON CONFLICT (email) DO NOTHING`, string(hash))
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed de usuario: %v\n", err)
		os.Exit(1)
	}

	units := [][2]string{
		{"pcs", "件"},
		{"set", "套"},
		{"kg", "千克"},
		{"liter", "升"},
	}
	for _, u := range units {
		_, err := pool.Exec(ctx, `
			INSERT INTO units (unit_name_en, unit_name_cn)
			SELECT $1, $2
			WHERE NOT EXISTS (
				SELECT 1 FROM units WHERE unit_name_en = $1 AND is_delete = false
			)`, u[0], u[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed de unidades: %v\n", err)
			os.Exit(1)
		}
	}

	// Jerarquía mínima de ejemplo para probar los listados coalescidos.
	_, err = pool.Exec(ctx, `
		WITH mc AS (
			INSERT INTO master_categories (master_category_name_en, master_category_name_cn)
			SELECT 'Engine', '发动机'
			WHERE NOT EXISTS (
				SELECT 1 FROM master_categories WHERE master_category_name_en = 'Engine' AND is_delete = false
			)
			RETURNING master_category_id
		), c AS (
			INSERT INTO categories (master_category_id, master_category_name_en, category_name_en, category_name_cn)
			SELECT master_category_id, 'Engine', 'Engine Block', '缸体' FROM mc
			RETURNING category_id
		)
		INSERT INTO type_categories (category_id, type_category_name_en, type_category_name_cn)
		SELECT category_id, 'Cylinder Head', '缸盖' FROM c`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed de jerarquía: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("datos base cargados")
}
