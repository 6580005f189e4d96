package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

var dealStages = []string{
	entity.DealStageLead,
	entity.DealStageQualified,
	entity.DealStageProposal,
	entity.DealStageNegotiation,
	entity.DealStageWon,
	entity.DealStageLost,
}

// SeedDeals crea oportunidades ligadas a contactos ya persistidos.
// Exige una instantánea verificada de contactos: con cero contactos falla
// duro en lugar de devolver un vacío que parezca éxito.
func (s *Seeder) SeedDeals(ctx context.Context, tenantID string, window DateRange) (*SeedResult, error) {
	contacts, err := s.verifiedContacts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("deals: %w", err)
	}

	stamps := Allocate(s.rng, targetDeals, window)
	ops := make([]Op, 0, len(stamps))
	for i, createdAt := range stamps {
		contact := contacts[s.rng.Intn(len(contacts))]
		stage := dealStages[i%len(dealStages)]
		value := decimal.NewFromInt(int64(10_000 + s.rng.Intn(490_000)))

		d := &entity.Deal{
			ID:        uuid.NewString(),
			TenantID:  tenantID,
			ContactID: contact.ID,
			Name:      fmt.Sprintf("%s - %s", pick(s.rng, dealNameTemplates), contact.Company),
			Value:     value,
			Stage:     stage,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}

		switch stage {
		case entity.DealStageWon:
			// Cierre real entre la creación y el fin de la ventana.
			closed := RandomDateInRange(s.rng, DateRange{Start: createdAt, End: window.End})
			d.Probability = 100
			d.ActualCloseDate = &closed
		case entity.DealStageLost:
			d.Probability = 0
			d.LostReason = pick(s.rng, lostReasons)
		default:
			d.Probability = 10 + s.rng.Intn(80)
			expected := createdAt.AddDate(0, 0, 15+s.rng.Intn(75))
			d.ExpectedCloseDate = &expected
		}

		ops = append(ops, func(ctx context.Context) error {
			return s.store.CreateDeal(ctx, d)
		})
	}

	ok, failed := s.exec.RunSequential(ctx, "crear deal", ops)
	return s.finish(ctx, KindDeal, tenantID, targetDeals, ok+failed, failed)
}
