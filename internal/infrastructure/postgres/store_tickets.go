package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CreateTicket persiste un ticket de soporte.
func (s *SeedStore) CreateTicket(ctx context.Context, t *entity.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (id, tenant_id, contact_id, subject, body, priority, status, resolved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := s.q.Exec(ctx, query,
		t.ID, t.TenantID, t.ContactID, t.Subject, t.Body, t.Priority, t.Status, t.ResolvedAt, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// CreateTicketReply agrega una respuesta al hilo de un ticket.
func (s *SeedStore) CreateTicketReply(ctx context.Context, r *entity.TicketReply) error {
	query := `
		INSERT INTO ticket_replies (id, ticket_id, from_agent, body, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := s.q.Exec(ctx, query, r.ID, r.TicketID, r.FromAgent, r.Body, r.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ticket reply: %w", err)
	}
	return nil
}
