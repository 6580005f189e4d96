package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

var ticketStatuses = []string{
	entity.TicketStatusOpen,
	entity.TicketStatusInProgress,
	entity.TicketStatusResolved,
	entity.TicketStatusClosed,
}

var ticketPriorities = []string{"low", "medium", "high", "urgent"}

// SeedTickets crea tickets de soporte con piso mensual y sus hilos de
// respuestas. El hilo alterna autoría empezando por el contacto;
// ResolvedAt se setea si y solo si el estado es resolved o closed.
func (s *Seeder) SeedTickets(ctx context.Context, tenantID string, window DateRange) (*SeedResult, error) {
	contacts, err := s.verifiedContacts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("tickets: %w", err)
	}

	stamps := AllocateWithFloor(s.rng, targetTickets, 1, window)
	ops := make([]Op, 0, len(stamps))
	replyOps := make([]Op, 0, len(stamps)*2)
	for i, createdAt := range stamps {
		contact := contacts[s.rng.Intn(len(contacts))]
		status := ticketStatuses[i%len(ticketStatuses)]

		t := &entity.SupportTicket{
			ID:        uuid.NewString(),
			TenantID:  tenantID,
			ContactID: contact.ID,
			Subject:   pick(s.rng, ticketSubjects),
			Body:      fmt.Sprintf("Ticket demo abierto por %s", contact.Name),
			Priority:  ticketPriorities[i%len(ticketPriorities)],
			Status:    status,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
		if status == entity.TicketStatusResolved || status == entity.TicketStatusClosed {
			resolved := RandomDateInRange(s.rng, DateRange{Start: createdAt, End: window.End})
			t.ResolvedAt = &resolved
		}
		ops = append(ops, func(ctx context.Context) error {
			return s.store.CreateTicket(ctx, t)
		})

		// Hilo de 1..4 respuestas alternando contacto y agente.
		nReplies := 1 + s.rng.Intn(4)
		replyAt := createdAt
		for j := 0; j < nReplies; j++ {
			replyAt = replyAt.Add(window.End.Sub(replyAt) / 8)
			r := &entity.TicketReply{
				ID:        uuid.NewString(),
				TicketID:  t.ID,
				FromAgent: j%2 == 1,
				Body:      fmt.Sprintf("Respuesta %d del hilo", j+1),
				CreatedAt: replyAt,
			}
			replyOps = append(replyOps, func(ctx context.Context) error {
				return s.store.CreateTicketReply(ctx, r)
			})
		}
	}

	// Los tickets van primero: cada respuesta referencia a su ticket.
	ok, failed := s.exec.RunSequential(ctx, "crear ticket", ops)
	res, err := s.finish(ctx, KindTicket, tenantID, len(stamps), ok+failed, failed)
	if err != nil {
		return res, err
	}

	rOK, rFail := s.exec.RunSequential(ctx, "crear respuesta", replyOps)
	s.log.Info().Int("ok", rOK).Int("fallas", rFail).Msg("respuestas de tickets creadas")
	return res, nil
}
