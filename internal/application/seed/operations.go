package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// SeedOperations crea los registros operativos append-only: auditoría,
// corridas de automatización y notificaciones. Referencian al principal y
// nunca se mutan después de creados.
func (s *Seeder) SeedOperations(ctx context.Context, tenantID, actorID string, window DateRange) (map[EntityKind]*SeedResult, error) {
	results := make(map[EntityKind]*SeedResult, 3)

	auditOps := make([]Op, 0, targetAuditLogs)
	for _, createdAt := range Allocate(s.rng, targetAuditLogs, window) {
		a := &entity.AuditLog{
			ID:         uuid.NewString(),
			TenantID:   tenantID,
			ActorID:    actorID,
			Action:     pick(s.rng, auditActions),
			EntityType: pick(s.rng, auditEntityTypes),
			EntityID:   uuid.NewString(),
			Detail:     "registro de auditoría demo",
			CreatedAt:  createdAt,
		}
		auditOps = append(auditOps, func(ctx context.Context) error {
			return s.store.CreateAuditLog(ctx, a)
		})
	}
	ok, failed := s.exec.RunBatched(ctx, "crear audit log", auditOps, s.exec.BatchSize())
	res, err := s.finish(ctx, KindAuditLog, tenantID, targetAuditLogs, ok+failed, failed)
	if err != nil {
		return results, err
	}
	results[KindAuditLog] = res

	runOps := make([]Op, 0, targetAutomationRuns)
	for i, createdAt := range Allocate(s.rng, targetAutomationRuns, window) {
		rule := automationRules[i%len(automationRules)]
		status := "success"
		if i%10 == 9 {
			status = "failed"
		}
		r := &entity.AutomationRun{
			ID:         uuid.NewString(),
			TenantID:   tenantID,
			RuleName:   rule.Name,
			Trigger:    rule.Trigger,
			Status:     status,
			DurationMs: 20 + s.rng.Intn(1500),
			CreatedAt:  createdAt,
		}
		runOps = append(runOps, func(ctx context.Context) error {
			return s.store.CreateAutomationRun(ctx, r)
		})
	}
	ok, failed = s.exec.RunBatched(ctx, "crear automation run", runOps, s.exec.BatchSize())
	res, err = s.finish(ctx, KindAutomationRun, tenantID, targetAutomationRuns, ok+failed, failed)
	if err != nil {
		return results, err
	}
	results[KindAutomationRun] = res

	notifOps := make([]Op, 0, targetNotifications)
	for i, createdAt := range Allocate(s.rng, targetNotifications, window) {
		kind := notificationKinds[i%len(notificationKinds)]
		n := &entity.Notification{
			ID:        uuid.NewString(),
			TenantID:  tenantID,
			UserID:    actorID,
			Kind:      kind.Kind,
			Title:     kind.Title,
			Body:      fmt.Sprintf("Notificación demo %d", i+1),
			CreatedAt: createdAt,
		}
		if i%3 != 0 {
			read := RandomDateInRange(s.rng, DateRange{Start: createdAt, End: window.End})
			n.ReadAt = &read
		}
		notifOps = append(notifOps, func(ctx context.Context) error {
			return s.store.CreateNotification(ctx, n)
		})
	}
	ok, failed = s.exec.RunBatched(ctx, "crear notificación", notifOps, s.exec.BatchSize())
	res, err = s.finish(ctx, KindNotification, tenantID, targetNotifications, ok+failed, failed)
	if err != nil {
		return results, err
	}
	results[KindNotification] = res

	return results, nil
}
