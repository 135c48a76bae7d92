package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"souq/internal/models"
	"souq/internal/repositories"
	"souq/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the backoffice CRUD surfaces and order management.
// Every route registered here sits behind the operator token middleware.
type AdminHandler struct {
	products   *services.ProductService
	categories *services.CategoryService
	companies  *services.CompanyService
	orders     *services.OrderService
	validate   *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(products *services.ProductService, categories *services.CategoryService, companies *services.CompanyService, orders *services.OrderService) *AdminHandler {
	return &AdminHandler{
		products:   products,
		categories: categories,
		companies:  companies,
		orders:     orders,
		validate:   validator.New(),
	}
}

// RegisterRoutes registers the backoffice routes. router must already be
// gated by middleware.AdminRequired.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)

	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleListCategories)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)

	companyRoutes := router.Group("/companies")
	companyRoutes.Get("/", h.HandleListCompanies)
	companyRoutes.Post("/", h.HandleCreateCompany)
	companyRoutes.Put("/:id", h.HandleUpdateCompany)
	companyRoutes.Delete("/:id", h.HandleDeleteCompany)

	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

func (h *AdminHandler) validationError(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// --- Products ---

func (h *AdminHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.products.ListAllProducts()
	if err != nil {
		log.Printf("Error listing products for admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}
	return c.JSON(fiber.Map{"products": products})
}

func (h *AdminHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(product); err != nil {
		return h.validationError(c, err)
	}

	if err := h.products.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *AdminHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	product.ID = c.Params("id")
	if err := h.validate.Struct(product); err != nil {
		return h.validationError(c, err)
	}

	if err := h.products.UpdateProduct(&product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error updating product %s: %v", product.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
		})
	}
	return c.JSON(product)
}

func (h *AdminHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.products.DeleteProduct(id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error deleting product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s deleted successfully", id),
	})
}

// --- Categories ---

func (h *AdminHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.ListCategories()
	if err != nil {
		log.Printf("Error listing categories for admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
		})
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func (h *AdminHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(category); err != nil {
		return h.validationError(c, err)
	}

	if err := h.categories.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create category",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *AdminHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	category.ID = c.Params("id")
	if err := h.validate.Struct(category); err != nil {
		return h.validationError(c, err)
	}

	if err := h.categories.UpdateCategory(&category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		log.Printf("Error updating category %s: %v", category.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update category",
		})
	}
	return c.JSON(category)
}

func (h *AdminHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.categories.DeleteCategory(id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		log.Printf("Error deleting category %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete category",
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Category %s deleted successfully", id),
	})
}

// --- Companies ---

func (h *AdminHandler) HandleListCompanies(c *fiber.Ctx) error {
	companies, err := h.companies.ListCompanies()
	if err != nil {
		log.Printf("Error listing companies for admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve companies",
		})
	}
	return c.JSON(fiber.Map{"companies": companies})
}

func (h *AdminHandler) HandleCreateCompany(c *fiber.Ctx) error {
	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(company); err != nil {
		return h.validationError(c, err)
	}

	if err := h.companies.CreateCompany(&company); err != nil {
		log.Printf("Error creating company: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create company",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

func (h *AdminHandler) HandleUpdateCompany(c *fiber.Ctx) error {
	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	company.ID = c.Params("id")
	if err := h.validate.Struct(company); err != nil {
		return h.validationError(c, err)
	}

	if err := h.companies.UpdateCompany(&company); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Company not found",
			})
		}
		log.Printf("Error updating company %s: %v", company.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update company",
		})
	}
	return c.JSON(company)
}

func (h *AdminHandler) HandleDeleteCompany(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.companies.DeleteCompany(id); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Company not found",
			})
		}
		log.Printf("Error deleting company %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete company",
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Company %s deleted successfully", id),
	})
}

// --- Orders ---

func (h *AdminHandler) HandleListOrders(c *fiber.Ctx) error {
	sort := c.Query("sort", repositories.OrderSortNewest)
	orders, err := h.orders.GetAllOrders(sort)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	return c.JSON(fiber.Map{"orders": orders})
}

// HandleUpdateOrderStatus sets an order's fulfillment status. Any status in
// the vocabulary may be set from any other.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required",
		})
	}

	status := models.OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if err := h.orders.UpdateOrderStatus(orderID, status); err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Invalid order status: %s", req.Status),
			})
		}
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		log.Printf("Error updating status for order %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s status updated to %s", orderID, status),
	})
}
