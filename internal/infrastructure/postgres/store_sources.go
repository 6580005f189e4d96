package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// UpsertLeadSource inserta o actualiza un origen por (tenant, nombre). El
// rollup se recalcula en cada corrida, así que las métricas siempre pisan
// a las viejas.
func (s *SeedStore) UpsertLeadSource(ctx context.Context, src *entity.LeadSource) error {
	query := `
		INSERT INTO lead_sources (id, tenant_id, name, leads, conversions,
			total_value, avg_value, conversion_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (tenant_id, name) DO UPDATE SET
			leads = EXCLUDED.leads,
			conversions = EXCLUDED.conversions,
			total_value = EXCLUDED.total_value,
			avg_value = EXCLUDED.avg_value,
			conversion_rate = EXCLUDED.conversion_rate,
			updated_at = EXCLUDED.updated_at`
	_, err := s.q.Exec(ctx, query,
		src.ID, src.TenantID, src.Name, src.Leads, src.Conversions,
		src.TotalValue, src.AvgValue, src.ConversionRate, src.CreatedAt, src.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert lead source: %w", err)
	}
	return nil
}

// ListLeadSources lista los orígenes del tenant.
func (s *SeedStore) ListLeadSources(ctx context.Context, tenantID string) ([]entity.LeadSource, error) {
	query := `
		SELECT id, tenant_id, name, leads, conversions, total_value, avg_value,
			conversion_rate, created_at, updated_at
		FROM lead_sources WHERE tenant_id = $1 ORDER BY name`
	rows, err := s.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list lead sources: %w", err)
	}
	defer rows.Close()

	var list []entity.LeadSource
	for rows.Next() {
		var src entity.LeadSource
		if err := rows.Scan(&src.ID, &src.TenantID, &src.Name, &src.Leads, &src.Conversions,
			&src.TotalValue, &src.AvgValue, &src.ConversionRate, &src.CreatedAt, &src.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead source: %w", err)
		}
		list = append(list, src)
	}
	return list, rows.Err()
}
