package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order orden de venta con sus renglones. Total = suma de Subtotal de los items.
type Order struct {
	ID          string
	TenantID    string
	ContactID   string
	OrderNumber string
	Status      string
	Total       decimal.Decimal
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem renglón de una orden. Subtotal = UnitPrice * Quantity.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// ComputeTotal recalcula Total a partir de los renglones.
func (o *Order) ComputeTotal() {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal)
	}
	o.Total = total
}
