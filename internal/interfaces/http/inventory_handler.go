package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastano/moda-admin-api/internal/application/dto"
	"github.com/jcastano/moda-admin-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del ledger de variantes (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func caller(c *fiber.Ctx) inventory.Caller {
	return inventory.Caller{
		UserID:  GetUserID(c),
		Role:    GetRole(c),
		BrandID: GetBrandID(c),
	}
}

// List godoc
// @Summary      Listar productos con stock por talla
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        name       query  string  false  "Filtro por nombre (subcadena)"
// @Param        category   query  string  false  "Filtro por categoría (subcadena)"
// @Param        brand      query  string  false  "Filtro por marca (subcadena; ignorado para brand_owner)"
// @Param        page       query  int     false  "Página (1-based)"   default(1)
// @Param        page_size  query  int     false  "Tamaño de página"   default(20)
// @Success      200  {object}  dto.VariantProductListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory/products [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	filters := dto.ProductFilters{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
	}
	page := dto.PageRequest{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}
	out, err := h.uc.ListVariantProducts(c.Context(), caller(c), filters, page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateStock godoc
// @Summary      Actualización masiva de stock por talla de un producto
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.BulkStockUpdateRequest  true  "Nuevas cantidades por talla"
// @Success      200   {object}  dto.VariantProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/stock [put]
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.BulkStockUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "updates no puede estar vacío"})
	}

	// Las escrituras no esperan indefinidamente al almacenamiento.
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	out, err := h.uc.UpdateStock(ctx, caller(c), id, in.Updates)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF del inventario visible para el caller
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/inventory/report [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.uc.BuildStockReport(c.Context(), caller(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(pdf)
}
