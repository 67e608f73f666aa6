package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastano/moda-admin-api/internal/application/auth"
	"github.com/jcastano/moda-admin-api/internal/application/inventory"
	"github.com/jcastano/moda-admin-api/internal/application/usecase"
	"github.com/jcastano/moda-admin-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CategoryUC  *usecase.CategoryUseCase
	BrandUC     *usecase.BrandUseCase
	BannerUC    *usecase.BannerUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *inventory.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; el registro lo hace un admin autenticado.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin),
		authHandler.Register,
	)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleBrandOwner)

	// Categories (solo admin)
	categories := protected.Group("/categories", adminOnly)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Brands (solo admin)
	brands := protected.Group("/brands", adminOnly)
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Post("/", brandHandler.Create)
	brands.Get("/", brandHandler.List)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Put("/:id", brandHandler.Update)
	brands.Delete("/:id", brandHandler.Delete)

	// Banners (solo admin)
	banners := protected.Group("/banners", adminOnly)
	bannerHandler := NewBannerHandler(deps.BannerUC)
	banners.Post("/", bannerHandler.Create)
	banners.Get("/", bannerHandler.List)
	banners.Get("/:id", bannerHandler.GetByID)
	banners.Put("/:id", bannerHandler.Update)
	banners.Delete("/:id", bannerHandler.Delete)

	// Products (admin y brand_owner; el usecase restringe por marca)
	products := protected.Group("/products", anyRole)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Inventory: ledger de variantes (admin y brand_owner)
	invGroup := protected.Group("/inventory", anyRole)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/products", inventoryHandler.List)
	invGroup.Put("/products/:id/stock", inventoryHandler.UpdateStock)
	invGroup.Get("/report", inventoryHandler.Report)
}
