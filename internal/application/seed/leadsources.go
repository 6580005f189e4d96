package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// SeedLeadSources materializa el rollup de orígenes de leads. Los orígenes
// no son fuente de verdad: se recomputan siempre desde los contactos y
// negocios persistidos (leads por etiqueta, conversiones y valor sobre los
// negocios ganados) y luego se re-enlazan los contactos que quedaron sin
// SourceID. Upsert por (tenant, nombre), idempotente.
func (s *Seeder) SeedLeadSources(ctx context.Context, tenantID string, window DateRange) (*SeedResult, error) {
	contacts, err := s.verifiedContacts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("orígenes de leads: %w", err)
	}
	deals, err := s.store.ListDeals(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listar negocios para rollup: %w", err)
	}

	// Rollup: leads por etiqueta de origen, conversiones y valor total
	// sobre los negocios ganados del contacto de cada etiqueta.
	leads := make(map[string]int)
	sourceByContact := make(map[string]string, len(contacts))
	for _, c := range contacts {
		if c.Source == "" {
			continue
		}
		leads[c.Source]++
		sourceByContact[c.ID] = c.Source
	}
	conversions := make(map[string]int)
	totalValue := make(map[string]decimal.Decimal)
	for _, d := range deals {
		if d.Stage != entity.DealStageWon {
			continue
		}
		src, ok := sourceByContact[d.ContactID]
		if !ok {
			continue
		}
		conversions[src]++
		totalValue[src] = totalValue[src].Add(d.Value)
	}
	// Los orígenes del catálogo existen aunque hoy no tengan contactos.
	for _, name := range leadSourceNames {
		if _, ok := leads[name]; !ok {
			leads[name] = 0
		}
	}

	existing, err := s.store.ListLeadSources(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listar orígenes: %w", err)
	}
	idByName := make(map[string]string, len(existing))
	for _, src := range existing {
		idByName[src.Name] = src.ID
	}

	ops := make([]Op, 0, len(leads))
	for name, n := range leads {
		id, ok := idByName[name]
		if !ok {
			id = uuid.NewString()
			idByName[name] = id
		}
		src := &entity.LeadSource{
			ID:          id,
			TenantID:    tenantID,
			Name:        name,
			Leads:       n,
			Conversions: conversions[name],
			TotalValue:  totalValue[name],
			CreatedAt:   window.Start,
			UpdatedAt:   time.Now(),
		}
		if src.Conversions > 0 {
			src.AvgValue = src.TotalValue.Div(decimal.NewFromInt(int64(src.Conversions))).Round(2)
		}
		if n > 0 {
			src.ConversionRate = float64(src.Conversions) / float64(n)
		}
		ops = append(ops, func(ctx context.Context) error {
			return s.store.UpsertLeadSource(ctx, src)
		})
	}
	ok, failed := s.exec.RunSequential(ctx, "upsert origen", ops)

	// Re-enlazar contactos sin SourceID con el origen de su etiqueta.
	linkOps := make([]Op, 0)
	for _, c := range contacts {
		if c.SourceID != "" || c.Source == "" {
			continue
		}
		srcID, found := idByName[c.Source]
		if !found {
			continue
		}
		contactID := c.ID
		linkOps = append(linkOps, func(ctx context.Context) error {
			return s.store.LinkContactSource(ctx, contactID, srcID)
		})
	}
	linkOK, linkFail := s.exec.RunSequential(ctx, "enlazar origen de contacto", linkOps)
	s.log.Info().
		Int("enlazados", linkOK).
		Int("fallidos", linkFail).
		Msg("re-enlace de orígenes de contactos")

	return s.finish(ctx, KindLeadSource, tenantID, len(leads), ok+failed, failed)
}
