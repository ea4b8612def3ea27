package controllers

import (
	"go-storefront/src/services/catalog"

	"github.com/gofiber/fiber/v2"
)

type CatalogController struct {
	catalogStore catalog.Store
}

func NewCatalogController(catalogStore catalog.Store) *CatalogController {
	return &CatalogController{
		catalogStore: catalogStore,
	}
}

func (c *CatalogController) Route(app *fiber.App) {
	api := app.Group("/api/v1/catalog")
	api.Get("/products", c.GetAllProducts)
	api.Get("/products/:id", c.GetProduct)
	api.Get("/variants/:id", c.GetVariant)
}

// GetAllProducts godoc
// @Summary      Get all products
// @Description  Retrieves the full product catalog with variants
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  catalog.Product
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/catalog/products [get]
func (c *CatalogController) GetAllProducts(ctx *fiber.Ctx) error {
	products, err := c.catalogStore.GetAllProducts(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(products)
}

// GetProduct godoc
// @Summary      Get product by ID
// @Description  Retrieves a specific product by ID
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  catalog.Product
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/catalog/products/{id} [get]
func (c *CatalogController) GetProduct(ctx *fiber.Ctx) error {
	productID := ctx.Params("id")
	product, err := c.catalogStore.GetProductByID(ctx.Context(), productID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if product == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	return ctx.JSON(product)
}

// GetVariant godoc
// @Summary      Get variant by ID
// @Description  Retrieves a specific product variant by ID
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Variant ID"
// @Success      200  {object}  catalog.ProductVariant
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/catalog/variants/{id} [get]
func (c *CatalogController) GetVariant(ctx *fiber.Ctx) error {
	variantID := ctx.Params("id")
	variant, err := c.catalogStore.GetVariantByID(ctx.Context(), variantID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if variant == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Variant not found"})
	}
	return ctx.JSON(variant)
}
