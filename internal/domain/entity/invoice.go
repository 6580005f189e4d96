package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice factura emitida a partir de una orden. Total debe igualar el
// Total de la orden de origen; DueDate = fecha de emisión + 30 días.
type Invoice struct {
	ID            string
	TenantID      string
	OrderID       string
	ContactID     string
	InvoiceNumber string
	Status        string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	IssuedAt      time.Time
	DueDate       time.Time
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
