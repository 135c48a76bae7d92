package models

import "time"

// OrderStatus is the fulfillment state of an order. Transitions are
// operator-driven; any status may be set from any other.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is part of the status vocabulary.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentMode is how the customer chose to pay.
type PaymentMode string

const (
	PaymentCash       PaymentMode = "CASH"
	PaymentCreditCard PaymentMode = "CREDIT_CARD"
	PaymentTabby      PaymentMode = "TABBY"
)

// Valid reports whether m is part of the payment vocabulary.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentTabby:
		return true
	}
	return false
}

// OrderItem is a persisted snapshot of one purchased line. Price is captured
// at order creation and never re-read from the live product, so historical
// orders show what the customer actually paid.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string  `json:"-" gorm:"type:varchar(36);index"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // unit price at the time of order

	// ProductName is resolved against the live catalog at lookup time and is
	// empty when the product has since been deleted.
	ProductName string `json:"product_name,omitempty" gorm:"-"`
}

// Order represents a finalized purchase intent. TotalAmount is stored as
// submitted at checkout (shipping folded in) and is never recomputed.
type Order struct {
	ID           string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderKey     string      `json:"order_key" gorm:"uniqueIndex;type:varchar(16)"`
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email,omitempty"`
	Address      string      `json:"address"`
	TotalAmount  float64     `json:"total_amount"`
	PaymentMode  PaymentMode `json:"payment_mode" gorm:"type:varchar(20)"`
	Status       OrderStatus `json:"status" gorm:"type:varchar(20);default:PENDING;index"`
	Items        []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
