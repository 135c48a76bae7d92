package handlers

import (
	"fmt"
	"log"
	"time"

	"souq/internal/cart"
	"souq/internal/pricing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// cartSessionCookie identifies the shopper's durable cart across visits.
const cartSessionCookie = "cart_session"

// CartHandler exposes the session cart over HTTP. Every response carries the
// full cart with the derived quote so the storefront can render totals
// without a second round trip.
type CartHandler struct {
	carts    *cart.Manager
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts *cart.Manager) *CartHandler {
	return &CartHandler{
		carts:    carts,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// sessionCart returns the cart for the request's session, minting a session
// cookie on first contact.
func (h *CartHandler) sessionCart(c *fiber.Ctx) *cart.Cart {
	sid := c.Cookies(cartSessionCookie)
	if sid == "" {
		sid = uuid.New().String()
		c.Cookie(&fiber.Cookie{
			Name:     cartSessionCookie,
			Value:    sid,
			Expires:  time.Now().Add(365 * 24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}
	return h.carts.Cart(sid)
}

func cartResponse(shopperCart *cart.Cart) fiber.Map {
	quote := pricing.QuoteFor(shopperCart.Subtotal(), shopperCart.IsEmpty())
	return fiber.Map{
		"items":    shopperCart.Items(),
		"count":    shopperCart.Count(),
		"subtotal": quote.Subtotal,
		"shipping": quote.Shipping,
		"vat":      quote.VAT,
		"total":    quote.Total,
	}
}

// HandleGetCart returns the session cart with its quote.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(cartResponse(h.sessionCart(c)))
}

// addItemRequest is the payload for adding a product to the cart. The price
// is the snapshot the storefront displayed; it is not re-read later.
type addItemRequest struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	NameAr   string  `json:"name_ar"`
	Price    float64 `json:"price" validate:"gte=0"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
}

// HandleAddItem adds a product line to the cart, merging quantity into an
// existing line for the same product.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
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

	shopperCart := h.sessionCart(c)
	shopperCart.Add(cart.Item{
		ID:       req.ID,
		Name:     req.Name,
		NameAr:   req.NameAr,
		Price:    req.Price,
		Image:    req.Image,
		Category: req.Category,
	}, req.Quantity)

	return c.Status(fiber.StatusCreated).JSON(cartResponse(shopperCart))
}

// HandleUpdateQuantity sets a line's quantity to an exact value; anything
// below 1 removes the line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	shopperCart := h.sessionCart(c)
	shopperCart.UpdateQuantity(c.Params("id"), req.Quantity)
	return c.JSON(cartResponse(shopperCart))
}

// HandleRemoveItem removes a line. Removing an absent product is benign and
// still returns the (unchanged) cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	shopperCart := h.sessionCart(c)
	shopperCart.Remove(c.Params("id"))
	return c.JSON(cartResponse(shopperCart))
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	shopperCart := h.sessionCart(c)
	shopperCart.Clear()
	return c.JSON(cartResponse(shopperCart))
}
