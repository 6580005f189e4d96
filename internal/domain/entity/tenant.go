package entity

import "time"

// Tenant raíz de alcance multi-tenant. Todas las entidades hijas referencian exactamente un tenant.
type Tenant struct {
	ID        string
	Name      string
	Subdomain string
	Plan      string // free, professional, enterprise
	Status    string // active, suspended
	Email     string
	Phone     string
	City      string
	State     string
	Country   string
	Industry  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
