package handlers

import (
	"errors"
	"log"
	"strings"

	"souq/internal/models"
	"souq/internal/pricing"
	"souq/internal/repositories"
	"souq/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the public storefront catalog: product listings and
// the category index.
type CatalogHandler struct {
	products   *services.ProductService
	categories *services.CategoryService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(products *services.ProductService, categories *services.CategoryService) *CatalogHandler {
	return &CatalogHandler{
		products:   products,
		categories: categories,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:id", h.HandleGetProduct)
	router.Get("/categories", h.HandleListCategories)
}

// productView is a product as the storefront renders it: images split into a
// list and the markdown badge percentage precomputed.
type productView struct {
	models.Product
	ImageList       []string `json:"image_list"`
	DiscountPercent int      `json:"discount_percent,omitempty"`
}

func toProductView(p models.Product) productView {
	view := productView{
		Product:         p,
		DiscountPercent: pricing.DiscountPercent(p.OriginalPrice, p.Price),
	}
	for _, img := range strings.Split(p.Images, "\n") {
		if img != "" {
			view.ImageList = append(view.ImageList, img)
		}
	}
	return view
}

// HandleListProducts lists available products, optionally filtered by
// category slug and sorted by rating, price or recency.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 12)
	categorySlug := c.Query("category")
	sortBy := c.Query("sortBy", repositories.SortNewest)

	products, err := h.products.ListProducts(categorySlug, sortBy, limit)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return c.JSON(fiber.Map{"products": views})
}

// HandleGetProduct returns a single product by ID.
func (h *CatalogHandler) HandleGetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.products.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
		})
	}
	return c.JSON(toProductView(*product))
}

// HandleListCategories returns all categories in display order.
func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.ListCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
		})
	}
	return c.JSON(fiber.Map{"categories": categories})
}
