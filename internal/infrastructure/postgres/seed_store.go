package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tu-usuario/crm-pro/internal/application/seed"
)

var _ seed.Store = (*SeedStore)(nil)

// kindTables tabla física de cada clase de entidad.
var kindTables = map[seed.EntityKind]string{
	seed.KindTenant:         "tenants",
	seed.KindUser:           "users",
	seed.KindContact:        "contacts",
	seed.KindDeal:           "deals",
	seed.KindTask:           "tasks",
	seed.KindProduct:        "products",
	seed.KindOrder:          "orders",
	seed.KindOrderItem:      "order_items",
	seed.KindInvoice:        "invoices",
	seed.KindCampaign:       "campaigns",
	seed.KindCampaignMember: "campaign_members",
	seed.KindLeadSource:     "lead_sources",
	seed.KindTicket:         "support_tickets",
	seed.KindTicketReply:    "ticket_replies",
	seed.KindAuditLog:       "audit_logs",
	seed.KindAutomationRun:  "automation_runs",
	seed.KindNotification:   "notifications",
}

// Clases sin columna tenant_id propia: se alcanzan a través de su padre.
var childDeleteQueries = map[seed.EntityKind]string{
	seed.KindOrderItem:      `DELETE FROM order_items WHERE order_id IN (SELECT id FROM orders WHERE tenant_id = $1)`,
	seed.KindTicketReply:    `DELETE FROM ticket_replies WHERE ticket_id IN (SELECT id FROM support_tickets WHERE tenant_id = $1)`,
	seed.KindCampaignMember: `DELETE FROM campaign_members WHERE campaign_id IN (SELECT id FROM campaigns WHERE tenant_id = $1)`,
}

var childCountQueries = map[seed.EntityKind]string{
	seed.KindOrderItem:      `SELECT COUNT(*) FROM order_items WHERE order_id IN (SELECT id FROM orders WHERE tenant_id = $1)`,
	seed.KindTicketReply:    `SELECT COUNT(*) FROM ticket_replies WHERE ticket_id IN (SELECT id FROM support_tickets WHERE tenant_id = $1)`,
	seed.KindCampaignMember: `SELECT COUNT(*) FROM campaign_members WHERE campaign_id IN (SELECT id FROM campaigns WHERE tenant_id = $1)`,
}

// SeedStore implementación PostgreSQL del puerto de persistencia del motor
// (usable con pool o tx vía Querier). El sondeo de capacidades se cachea:
// el esquema no cambia durante una corrida.
type SeedStore struct {
	q Querier

	mu       sync.Mutex
	supports map[seed.EntityKind]bool
}

// NewSeedStore construye el adaptador. Pasar pool o tx (Querier).
func NewSeedStore(q Querier) *SeedStore {
	return &SeedStore{q: q, supports: make(map[seed.EntityKind]bool)}
}

// Supports sondea con to_regclass si la tabla de la clase existe en este
// despliegue. El resultado se cachea por clase.
func (s *SeedStore) Supports(ctx context.Context, kind seed.EntityKind) (bool, error) {
	s.mu.Lock()
	if cached, ok := s.supports[kind]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	table, ok := kindTables[kind]
	if !ok {
		return false, fmt.Errorf("clase desconocida %q", kind)
	}

	var exists bool
	err := s.q.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, table).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sondear tabla %s: %w", table, err)
	}

	s.mu.Lock()
	s.supports[kind] = exists
	s.mu.Unlock()
	return exists, nil
}

// Count cuenta filas de la clase para el tenant, opcionalmente acotadas por
// created_at. Es la lectura independiente que respalda cada SeedResult.
func (s *SeedStore) Count(ctx context.Context, kind seed.EntityKind, tenantID string, from, to *time.Time) (int, error) {
	var n int

	if query, ok := childCountQueries[kind]; ok {
		if err := s.q.QueryRow(ctx, query, tenantID).Scan(&n); err != nil {
			return 0, fmt.Errorf("count %s: %w", kind, err)
		}
		return n, nil
	}

	table, ok := kindTables[kind]
	if !ok {
		return 0, fmt.Errorf("clase desconocida %q", kind)
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE tenant_id = $1`, table)
	args := []any{tenantID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	if err := s.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return n, nil
}

// DeleteByTenant borra todas las filas de la clase para el tenant. Las
// clases hijas sin tenant_id se alcanzan por su padre.
func (s *SeedStore) DeleteByTenant(ctx context.Context, kind seed.EntityKind, tenantID string) error {
	if query, ok := childDeleteQueries[kind]; ok {
		if _, err := s.q.Exec(ctx, query, tenantID); err != nil {
			return fmt.Errorf("delete %s: %w", kind, err)
		}
		return nil
	}

	table, ok := kindTables[kind]
	if !ok {
		return fmt.Errorf("clase desconocida %q", kind)
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE tenant_id = $1`, table)
	if _, err := s.q.Exec(ctx, query, tenantID); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}
