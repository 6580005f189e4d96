package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CreateDeal persiste una nueva oportunidad.
func (s *SeedStore) CreateDeal(ctx context.Context, d *entity.Deal) error {
	query := `
		INSERT INTO deals (id, tenant_id, contact_id, name, value, stage, probability,
			expected_close_date, actual_close_date, lost_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := s.q.Exec(ctx, query,
		d.ID, d.TenantID, d.ContactID, d.Name, d.Value, d.Stage, d.Probability,
		d.ExpectedCloseDate, d.ActualCloseDate, d.LostReason, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert deal: %w", err)
	}
	return nil
}

// ListDeals lista todas las oportunidades del tenant.
func (s *SeedStore) ListDeals(ctx context.Context, tenantID string) ([]entity.Deal, error) {
	query := `
		SELECT id, tenant_id, contact_id, name, value, stage, probability,
			expected_close_date, actual_close_date, lost_reason, created_at, updated_at
		FROM deals WHERE tenant_id = $1 ORDER BY created_at`
	rows, err := s.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()

	var list []entity.Deal
	for rows.Next() {
		var d entity.Deal
		if err := rows.Scan(
			&d.ID, &d.TenantID, &d.ContactID, &d.Name, &d.Value, &d.Stage, &d.Probability,
			&d.ExpectedCloseDate, &d.ActualCloseDate, &d.LostReason, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
