package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

var taskStatuses = []string{
	entity.TaskStatusPending,
	entity.TaskStatusInProgress,
	entity.TaskStatusCompleted,
}

var taskPriorities = []string{"low", "medium", "high"}

// SeedTasks crea tareas asignadas al principal y ligadas a contactos
// persistidos. CompletedAt se setea si y solo si el estado es completed.
func (s *Seeder) SeedTasks(ctx context.Context, tenantID, assigneeID string, window DateRange) (*SeedResult, error) {
	contacts, err := s.verifiedContacts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("tareas: %w", err)
	}

	stamps := Allocate(s.rng, targetTasks, window)
	ops := make([]Op, 0, len(stamps))
	for i, createdAt := range stamps {
		contact := contacts[s.rng.Intn(len(contacts))]
		status := taskStatuses[i%len(taskStatuses)]

		t := &entity.Task{
			ID:           uuid.NewString(),
			TenantID:     tenantID,
			ContactID:    contact.ID,
			AssignedToID: assigneeID,
			Title:        pick(s.rng, taskTitles),
			Description:  fmt.Sprintf("Tarea demo para %s", contact.Name),
			Priority:     taskPriorities[i%len(taskPriorities)],
			Status:       status,
			DueDate:      createdAt.AddDate(0, 0, 1+s.rng.Intn(30)),
			CreatedAt:    createdAt,
			UpdatedAt:    createdAt,
		}
		if status == entity.TaskStatusCompleted {
			done := RandomDateInRange(s.rng, DateRange{Start: createdAt, End: window.End})
			t.CompletedAt = &done
		}

		ops = append(ops, func(ctx context.Context) error {
			return s.store.CreateTask(ctx, t)
		})
	}

	ok, failed := s.exec.RunSequential(ctx, "crear tarea", ops)
	return s.finish(ctx, KindTask, tenantID, targetTasks, ok+failed, failed)
}
