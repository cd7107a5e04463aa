package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andriansp/epc-catalog-api/internal/application/auth"
	"github.com/andriansp/epc-catalog-api/internal/application/usecase"
	"github.com/andriansp/epc-catalog-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MasterCategoryUC *usecase.MasterCategoryUseCase
	CategoryUC       *usecase.CategoryUseCase
	TypeCategoryUC   *usecase.TypeCategoryUseCase
	UnitUC           *usecase.UnitUseCase
	DokumenUC        *usecase.DokumenUseCase
	ItemCategoryUC   *usecase.ItemCategoryUseCase
	ProductUC        *usecase.ProductUseCase
	AuthUC           *auth.UseCase
	PDFGenerator     *pdf.CatalogSheetGenerator
	JWTSecret        string
}

// Router registra las rutas de la API bajo /api/epc. Todos los listados son
// POST /get con el cuerpo de paginación; todo excepto auth requiere Bearer
// Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/epc")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	mc := protected.Group("/master_category")
	mcHandler := NewMasterCategoryHandler(deps.MasterCategoryUC)
	mc.Post("/get", mcHandler.List)
	mc.Get("/:id", mcHandler.GetByID)
	mc.Post("/create", mcHandler.Create)
	mc.Put("/:id", mcHandler.Update)
	mc.Delete("/:id", mcHandler.Delete)
	mc.Post("/:id/restore", mcHandler.Restore)

	cat := protected.Group("/category")
	catHandler := NewCategoryHandler(deps.CategoryUC)
	cat.Post("/get", catHandler.List)
	cat.Get("/:id", catHandler.GetByID)
	cat.Post("/create", catHandler.Create)
	cat.Put("/:id", catHandler.Update)
	cat.Delete("/:id", catHandler.Delete)
	cat.Post("/:id/restore", catHandler.Restore)

	tc := protected.Group("/type_category")
	tcHandler := NewTypeCategoryHandler(deps.TypeCategoryUC)
	tc.Post("/get", tcHandler.List)
	tc.Get("/:id", tcHandler.GetByID)
	tc.Post("/create", tcHandler.Create)
	tc.Put("/:id", tcHandler.Update)
	tc.Delete("/:id", tcHandler.Delete)
	tc.Post("/:id/restore", tcHandler.Restore)

	// Unit no expone restore.
	unit := protected.Group("/unit")
	unitHandler := NewUnitHandler(deps.UnitUC)
	unit.Post("/get", unitHandler.List)
	unit.Get("/:id", unitHandler.GetByID)
	unit.Post("/create", unitHandler.Create)
	unit.Put("/:id", unitHandler.Update)
	unit.Delete("/:id", unitHandler.Delete)

	dok := protected.Group("/dokumen")
	dokHandler := NewDokumenHandler(deps.DokumenUC)
	dok.Post("/get", dokHandler.List)
	dok.Get("/:id", dokHandler.GetByID)
	dok.Post("/create", dokHandler.Create)
	dok.Put("/:id", dokHandler.Update)
	dok.Delete("/:id", dokHandler.Delete)
	dok.Post("/:id/restore", dokHandler.Restore)
	dok.Post("/:id/duplicate", dokHandler.Duplicate)

	ic := protected.Group("/item_category")
	icHandler := NewItemCategoryHandler(deps.ItemCategoryUC, deps.PDFGenerator)
	ic.Post("/get", icHandler.List)
	ic.Post("/dokumen/:id/get", icHandler.GetByDokumenID)
	ic.Get("/:id", icHandler.GetByID)
	ic.Get("/:id/pdf", icHandler.ExportPDF)
	ic.Post("/create", icHandler.Create)
	ic.Put("/:id", icHandler.Update)
	ic.Delete("/:id", icHandler.Delete)
	ic.Post("/:id/restore", icHandler.Restore)

	prod := protected.Group("/product")
	prodHandler := NewProductHandler(deps.ProductUC)
	prod.Post("/get", prodHandler.List)
	prod.Get("/:id", prodHandler.GetByID)
	prod.Post("/create", prodHandler.Create)
	prod.Put("/:id", prodHandler.Update)
	prod.Delete("/:id", prodHandler.Delete)
	prod.Post("/:id/restore", prodHandler.Restore)
}
