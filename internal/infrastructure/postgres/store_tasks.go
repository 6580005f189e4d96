package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CreateTask persiste una nueva tarea.
func (s *SeedStore) CreateTask(ctx context.Context, t *entity.Task) error {
	query := `
		INSERT INTO tasks (id, tenant_id, contact_id, assigned_to_id, title, description,
			priority, status, due_date, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := s.q.Exec(ctx, query,
		t.ID, t.TenantID, t.ContactID, t.AssignedToID, t.Title, t.Description,
		t.Priority, t.Status, t.DueDate, t.CompletedAt, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}
