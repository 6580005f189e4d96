package seed

import (
	"context"
	"fmt"
)

// resetOrder clases a borrar, hijos más profundos primero para no violar
// claves foráneas: renglones antes que órdenes, respuestas antes que
// tickets, miembros antes que campañas. El principal y el tenant nunca se
// borran; los contactos se desenganchan de sus orígenes antes de borrar los
// orígenes.
var resetOrder = []EntityKind{
	KindOrderItem,
	KindInvoice,
	KindOrder,
	KindTicketReply,
	KindTicket,
	KindCampaignMember,
	KindCampaign,
	KindLeadSource,
	KindAuditLog,
	KindAutomationRun,
	KindNotification,
	KindTask,
	KindDeal,
	KindContact,
	KindProduct,
}

// Reset borra todas las filas del tenant en orden de dependencia. Las
// clases que el despliegue no tiene se saltan en silencio vía Supports.
func (s *Seeder) Reset(ctx context.Context, tenantID string) error {
	// Desenganchar contactos de orígenes antes de borrar los orígenes.
	supported, err := s.store.Supports(ctx, KindLeadSource)
	if err != nil {
		return fmt.Errorf("reset: sondear %s: %w", KindLeadSource, err)
	}
	if supported {
		if err := s.exec.WithRetry(ctx, "desenganchar orígenes", func(ctx context.Context) error {
			return s.store.ClearContactSources(ctx, tenantID)
		}); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}

	for _, kind := range resetOrder {
		supported, err := s.store.Supports(ctx, kind)
		if err != nil {
			return fmt.Errorf("reset: sondear %s: %w", kind, err)
		}
		if !supported {
			s.log.Debug().Str("clase", string(kind)).Msg("clase ausente en este despliegue, reset la salta")
			continue
		}

		kind := kind
		if err := s.exec.WithRetry(ctx, "borrar "+string(kind), func(ctx context.Context) error {
			return s.store.DeleteByTenant(ctx, kind, tenantID)
		}); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}

	s.log.Info().Str("tenant", tenantID).Msg("reset completado")
	return nil
}
