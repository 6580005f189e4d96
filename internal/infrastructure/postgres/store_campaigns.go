package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CreateCampaign persiste una campaña.
func (s *SeedStore) CreateCampaign(ctx context.Context, c *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (id, tenant_id, name, channel, status, budget, recipients,
			sent, delivered, opened, clicked, sent_at, starts_at, ends_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := s.q.Exec(ctx, query,
		c.ID, c.TenantID, c.Name, c.Channel, c.Status, c.Budget, c.Recipients,
		c.Sent, c.Delivered, c.Opened, c.Clicked, c.SentAt, c.StartsAt, c.EndsAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// CreateCampaignMember suscribe un contacto a una campaña.
func (s *SeedStore) CreateCampaignMember(ctx context.Context, m *entity.CampaignMember) error {
	query := `
		INSERT INTO campaign_members (id, campaign_id, contact_id, status, joined_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $5)`
	_, err := s.q.Exec(ctx, query, m.ID, m.CampaignID, m.ContactID, m.Status, m.JoinedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert campaign member: %w", err)
	}
	return nil
}
