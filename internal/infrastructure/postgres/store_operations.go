package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CreateAuditLog agrega un registro de auditoría (append-only).
func (s *SeedStore) CreateAuditLog(ctx context.Context, a *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, tenant_id, actor_id, action, entity_type, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.q.Exec(ctx, query,
		a.ID, a.TenantID, a.ActorID, a.Action, a.EntityType, a.EntityID, a.Detail, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// CreateAutomationRun agrega una corrida de automatización (append-only).
func (s *SeedStore) CreateAutomationRun(ctx context.Context, r *entity.AutomationRun) error {
	query := `
		INSERT INTO automation_runs (id, tenant_id, rule_name, trigger_event, status, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.q.Exec(ctx, query,
		r.ID, r.TenantID, r.RuleName, r.Trigger, r.Status, r.DurationMs, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert automation run: %w", err)
	}
	return nil
}

// CreateNotification agrega una notificación (append-only).
func (s *SeedStore) CreateNotification(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, tenant_id, user_id, kind, title, body, read_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.q.Exec(ctx, query,
		n.ID, n.TenantID, n.UserID, n.Kind, n.Title, n.Body, n.ReadAt, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}
