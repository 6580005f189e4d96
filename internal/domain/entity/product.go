package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto o servicio del catálogo demo. Se upserta con IDs estables
// para que las corridas repetidas no dupliquen el catálogo.
type Product struct {
	ID          string
	TenantID    string
	SKU         string
	Name        string
	Description string
	Category    string
	CostPrice   decimal.Decimal
	SalePrice   decimal.Decimal
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
