package seed

import (
	"context"
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// EntityKind identifica cada clase de registro que el motor conoce.
type EntityKind string

const (
	KindTenant         EntityKind = "tenant"
	KindUser           EntityKind = "user"
	KindContact        EntityKind = "contact"
	KindDeal           EntityKind = "deal"
	KindTask           EntityKind = "task"
	KindProduct        EntityKind = "product"
	KindOrder          EntityKind = "order"
	KindOrderItem      EntityKind = "order_item"
	KindInvoice        EntityKind = "invoice"
	KindCampaign       EntityKind = "campaign"
	KindCampaignMember EntityKind = "campaign_member"
	KindLeadSource     EntityKind = "lead_source"
	KindTicket         EntityKind = "support_ticket"
	KindTicketReply    EntityKind = "ticket_reply"
	KindAuditLog       EntityKind = "audit_log"
	KindAutomationRun  EntityKind = "automation_run"
	KindNotification   EntityKind = "notification"
)

// Store puerto de persistencia que el motor consume. La implementación de
// producción vive en internal/infrastructure/postgres; los tests usan una
// implementación en memoria.
type Store interface {
	// Tenant y principal
	GetTenantBySubdomain(ctx context.Context, subdomain string) (*entity.Tenant, error)
	CreateTenant(ctx context.Context, t *entity.Tenant) error
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, u *entity.User) error
	UpdateUserTenant(ctx context.Context, userID, tenantID string) error

	// Entidades del CRM
	CreateContact(ctx context.Context, c *entity.Contact) error
	ListContacts(ctx context.Context, tenantID string) ([]entity.Contact, error)
	LinkContactSource(ctx context.Context, contactID, sourceID string) error
	ClearContactSources(ctx context.Context, tenantID string) error

	CreateDeal(ctx context.Context, d *entity.Deal) error
	ListDeals(ctx context.Context, tenantID string) ([]entity.Deal, error)

	CreateTask(ctx context.Context, t *entity.Task) error

	UpsertProduct(ctx context.Context, p *entity.Product) error
	ListProducts(ctx context.Context, tenantID string) ([]entity.Product, error)

	CreateOrder(ctx context.Context, o *entity.Order) error
	ListOrders(ctx context.Context, tenantID string) ([]entity.Order, error)
	CreateInvoice(ctx context.Context, i *entity.Invoice) error

	CreateCampaign(ctx context.Context, c *entity.Campaign) error
	CreateCampaignMember(ctx context.Context, m *entity.CampaignMember) error

	UpsertLeadSource(ctx context.Context, s *entity.LeadSource) error
	ListLeadSources(ctx context.Context, tenantID string) ([]entity.LeadSource, error)

	CreateTicket(ctx context.Context, t *entity.SupportTicket) error
	CreateTicketReply(ctx context.Context, r *entity.TicketReply) error

	CreateAuditLog(ctx context.Context, a *entity.AuditLog) error
	CreateAutomationRun(ctx context.Context, r *entity.AutomationRun) error
	CreateNotification(ctx context.Context, n *entity.Notification) error

	// Operaciones genéricas por clase
	Count(ctx context.Context, kind EntityKind, tenantID string, from, to *time.Time) (int, error)
	DeleteByTenant(ctx context.Context, kind EntityKind, tenantID string) error
	Supports(ctx context.Context, kind EntityKind) (bool, error)
}

// SeedResult resumen por clase de entidad de una corrida.
// Persisted proviene de un conteo independiente contra el store, nunca del
// tally en memoria de escrituras exitosas.
type SeedResult struct {
	Kind      EntityKind `json:"kind"`
	Requested int        `json:"requested"`
	Attempted int        `json:"attempted"`
	Failed    int        `json:"failed"`
	Persisted int        `json:"persisted"`
	Skipped   bool       `json:"skipped,omitempty"` // la clase no existe en este despliegue
}

// Summary resultado agregado de una corrida completa.
type Summary struct {
	TenantID   string                     `json:"tenant_id"`
	StartedAt  time.Time                  `json:"started_at"`
	FinishedAt time.Time                  `json:"finished_at"`
	Results    map[EntityKind]*SeedResult `json:"results"`
}

// Total suma los persistidos de todas las clases.
func (s *Summary) Total() int {
	total := 0
	for _, r := range s.Results {
		total += r.Persisted
	}
	return total
}
