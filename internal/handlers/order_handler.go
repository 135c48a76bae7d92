package handlers

import (
	"errors"
	"fmt"
	"log"

	"souq/internal/cart"
	"souq/internal/repositories"
	"souq/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles checkout submission and public order tracking.
type OrderHandler struct {
	service  *services.OrderService
	carts    *cart.Manager
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, carts *cart.Manager) *OrderHandler {
	return &OrderHandler{
		service:  service,
		carts:    carts,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/track/:key", h.HandleTrackOrder)
}

// HandleCreateOrder submits a checkout. On success the session cart is
// cleared; on any failure the cart is left intact so the shopper can retry.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var input services.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing checkout body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
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

	order, err := h.service.CreateOrder(input)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		if errors.Is(err, repositories.ErrProductNotFound) ||
			errors.Is(err, services.ErrInvalidPaymentMode) ||
			errors.Is(err, services.ErrEmptyOrder) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Order could not be placed",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create order",
		})
	}

	// The order is durable; the pending cart has served its purpose.
	if sid := c.Cookies(cartSessionCookie); sid != "" {
		h.carts.Cart(sid).Clear()
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// HandleTrackOrder looks up an order by tracking key. An unknown key is a
// normal outcome and reports as 404, distinct from a server failure.
func (h *OrderHandler) HandleTrackOrder(c *fiber.Ctx) error {
	key := c.Params("key")
	order, err := h.service.TrackOrder(key)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Order not found",
			})
		}
		log.Printf("Error tracking order %q: %v", key, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "An error occurred while fetching order status",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}
