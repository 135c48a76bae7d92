package services

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"souq/internal/models"
	"souq/internal/repositories"
	"souq/pkg/rabbitmq"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	orderKeyPrefix  = "ORD-"
	orderKeyCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderKeyLength  = 7

	// maxKeyAttempts bounds the regenerate-and-retry loop when a generated
	// tracking key collides with an existing order.
	maxKeyAttempts = 5
)

var (
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
)

// OrderItemInput is one cart line reduced to what the order needs: the
// product reference, the quantity and the unit price snapshot.
type OrderItemInput struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// CreateOrderInput is a checkout submission. TotalAmount is computed by the
// caller from the cart and pricing rules and is persisted verbatim.
type CreateOrderInput struct {
	CustomerName string             `json:"customer_name" validate:"required,min=2,max=200"`
	Phone        string             `json:"phone" validate:"required,min=5,max=30"`
	Email        string             `json:"email" validate:"omitempty,email"`
	Address      string             `json:"address" validate:"required,max=500"`
	TotalAmount  float64            `json:"total_amount" validate:"gte=0"`
	PaymentMode  models.PaymentMode `json:"payment_mode" validate:"required"`
	Items        []OrderItemInput   `json:"items" validate:"required,min=1,dive"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case order events are not published.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// CreateOrder materializes a checkout submission into a persisted order with
// a generated tracking key. The order and its items commit as one unit; on
// any failure nothing is persisted and the caller keeps its cart for retry.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if !input.PaymentMode.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentMode, input.PaymentMode)
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("invalid quantity %d for product %s", item.Quantity, item.ProductID)
		}
		// The product must still exist at submission time. Its live price is
		// deliberately not consulted: the cart's snapshot is what the
		// customer agreed to pay.
		if _, err := s.productRepo.GetByID(item.ProductID); err != nil {
			return nil, fmt.Errorf("failed to resolve order item: %w", err)
		}
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order := &models.Order{
		ID:           uuid.New().String(),
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		TotalAmount:  input.TotalAmount,
		PaymentMode:  input.PaymentMode,
		Status:       models.OrderStatusPending,
		Items:        items,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// Keys are random, so collisions are possible if unlikely; the unique
	// index reports them and we retry with a fresh key.
	var err error
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		order.OrderKey = generateOrderKey()
		err = s.orderRepo.Create(order)
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		log.Printf("Order key %s collided, regenerating (attempt %d)", order.OrderKey, attempt+1)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publish("order.created", map[string]interface{}{
		"order_id":  order.ID,
		"order_key": order.OrderKey,
		"status":    order.Status,
		"total":     order.TotalAmount,
	})

	return order, nil
}

// TrackOrder looks an order up by its tracking key. Keys are matched
// case-insensitively with surrounding whitespace ignored. Item product names
// are resolved against the live catalog at lookup time; a name stays empty
// when its product has since been deleted.
func (s *OrderService) TrackOrder(orderKey string) (*models.Order, error) {
	normalized := strings.ToUpper(strings.TrimSpace(orderKey))
	if normalized == "" {
		return nil, fmt.Errorf("empty order key: %w", repositories.ErrOrderNotFound)
	}

	order, err := s.orderRepo.GetByKey(normalized)
	if err != nil {
		return nil, err
	}

	for i := range order.Items {
		product, err := s.productRepo.GetByID(order.Items[i].ProductID)
		if err != nil {
			continue
		}
		order.Items[i].ProductName = product.NameEn
	}
	return order, nil
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetAllOrders retrieves all orders for the backoffice listing.
func (s *OrderService) GetAllOrders(sort string) ([]models.Order, error) {
	return s.orderRepo.GetAll(sort)
}

// UpdateOrderStatus sets an order's status. Any status in the vocabulary may
// be set from any other; the workflow is operator-driven and deliberately
// unconstrained.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publish("order.status_changed", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})
	return nil
}

// publish sends an order event when a message queue client is configured.
// Publishing is best effort and never fails the operation that triggered it.
func (s *OrderService) publish(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

// generateOrderKey produces a short human-typable tracking key: a fixed
// prefix plus a random uppercase alphanumeric suffix.
func generateOrderKey() string {
	buf := make([]byte, orderKeyLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back to a
		// uuid-derived suffix rather than panic in the checkout path.
		id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
		return orderKeyPrefix + id[:orderKeyLength]
	}
	for i, b := range buf {
		buf[i] = orderKeyCharset[int(b)%len(orderKeyCharset)]
	}
	return orderKeyPrefix + string(buf)
}
