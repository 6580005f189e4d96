package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// Tasas del embudo de campañas. Cada métrica es una fracción de la anterior,
// lo que preserva sent >= delivered >= opened >= clicked.
var (
	funnelDelivered = 0.95
	funnelOpened    = 0.25
	funnelClicked   = 0.15
)

// SeedCampaigns crea campañas con piso de una por mes más un excedente, y
// suscribe contactos como miembros. Las métricas del embudo se derivan en
// cadena para mantener la monotonía; las campañas programadas aún no
// enviaron nada, así que su embudo queda en cero y sin SentAt.
func (s *Seeder) SeedCampaigns(ctx context.Context, tenantID string, window DateRange) (*SeedResult, error) {
	contacts, err := s.verifiedContacts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("campañas: %w", err)
	}

	stamps := AllocateWithFloor(s.rng, targetCampaignsExtra, 1, window)
	ops := make([]Op, 0, len(stamps))
	memberOps := make([]Op, 0, len(stamps)*5)
	for i, startsAt := range stamps {
		status := entity.CampaignStatusCompleted
		switch i % 4 {
		case 0:
			status = entity.CampaignStatusScheduled
		case 1:
			status = entity.CampaignStatusSent
		}

		recipients := 100 + s.rng.Intn(900)
		c := &entity.Campaign{
			ID:         uuid.NewString(),
			TenantID:   tenantID,
			Name:       fmt.Sprintf("%s %s %d", pick(s.rng, campaignNameTemplates), startsAt.Month(), startsAt.Year()),
			Channel:    campaignChannels[i%len(campaignChannels)],
			Status:     status,
			Budget:     decimal.NewFromInt(int64(5_000 + s.rng.Intn(45_000))),
			Recipients: recipients,
			StartsAt:   startsAt,
			EndsAt:     startsAt.AddDate(0, 0, 14),
			CreatedAt:  startsAt,
			UpdatedAt:  startsAt,
		}
		if status != entity.CampaignStatusScheduled {
			c.Sent = recipients - s.rng.Intn(recipients/10+1)
			c.Delivered = int(float64(c.Sent) * funnelDelivered)
			c.Opened = int(float64(c.Delivered) * funnelOpened)
			c.Clicked = int(float64(c.Opened) * funnelClicked)
			sentAt := startsAt
			c.SentAt = &sentAt
		}
		ops = append(ops, func(ctx context.Context) error {
			return s.store.CreateCampaign(ctx, c)
		})

		// Miembros: un puñado de contactos por campaña.
		nMembers := 3 + s.rng.Intn(8)
		for j := 0; j < nMembers; j++ {
			m := &entity.CampaignMember{
				ID:         uuid.NewString(),
				CampaignID: c.ID,
				ContactID:  contacts[s.rng.Intn(len(contacts))].ID,
				Status:     "subscribed",
				JoinedAt:   startsAt,
			}
			memberOps = append(memberOps, func(ctx context.Context) error {
				return s.store.CreateCampaignMember(ctx, m)
			})
		}
	}

	ok, failed := s.exec.RunBatched(ctx, "crear campaña", ops, s.exec.BatchSize())
	res, err := s.finish(ctx, KindCampaign, tenantID, len(stamps), ok+failed, failed)
	if err != nil {
		return res, err
	}

	mOK, mFail := s.exec.RunBatched(ctx, "suscribir miembro", memberOps, s.exec.BatchSize())
	s.log.Info().Int("ok", mOK).Int("fallas", mFail).Msg("miembros de campaña creados")
	return res, nil
}
