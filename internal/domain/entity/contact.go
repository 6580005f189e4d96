package entity

import "time"

// Etapas de ciclo de vida de un contacto.
const (
	ContactStageProspect = "prospect"
	ContactStageContact  = "contact"
	ContactStageCustomer = "customer"
)

// Contact persona u organización del CRM. Pertenece a exactamente un tenant;
// tras su creación solo se muta para enlazar SourceID (rollup de origen).
type Contact struct {
	ID              string
	TenantID        string
	Name            string
	Email           string
	Phone           string
	Company         string
	Source          string // etiqueta de origen: Website, LinkedIn, Referral...
	SourceID        string // enlace al LeadSource materializado; vacío hasta el rollup
	Stage           string // prospect, contact, customer
	Status          string // active, archived
	Address         string
	City            string
	State           string
	PostalCode      string
	Country         string
	LeadScore       int
	LastContactedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
