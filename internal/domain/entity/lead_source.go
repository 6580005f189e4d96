package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeadSource origen de leads materializado por rollup sobre contactos y
// negocios. Nunca es fuente de verdad: cada corrida recalcula Leads a partir
// de los contactos cuyo Source coincide con Name, y Conversions/TotalValue a
// partir de los negocios ganados de esos contactos.
type LeadSource struct {
	ID             string
	TenantID       string
	Name           string
	Leads          int
	Conversions    int
	TotalValue     decimal.Decimal
	AvgValue       decimal.Decimal
	ConversionRate float64 // Conversions / Leads, 0 si no hay leads
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
