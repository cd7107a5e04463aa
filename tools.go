//go:build tools

package tools

// Pin de herramientas de build: swag genera docs/swagger.json a partir de las
// anotaciones de los handlers.
import (
	_ "github.com/swaggo/swag"
)
