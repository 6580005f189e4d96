package seed

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain"
)

// fullCoverageKinds clases que deben tener filas en todos los meses de la
// ventana; un mes en cero es fatal para ellas.
var fullCoverageKinds = []EntityKind{KindContact, KindDeal, KindTask, KindCampaign}

// Verify contrasta los conteos reportados por las fábricas contra conteos
// independientes del store y chequea la cobertura mensual. Una divergencia
// fuerte indica pérdida silenciosa (rollback de transacción) y no debe
// reportarse como éxito.
func (s *Seeder) Verify(ctx context.Context, tenantID string, window DateRange, results map[EntityKind]*SeedResult) error {
	for kind, res := range results {
		if res.Skipped {
			continue
		}
		count, err := s.store.Count(ctx, kind, tenantID, nil, nil)
		if err != nil {
			return fmt.Errorf("verificar %s: %w", kind, err)
		}

		reported := res.Attempted - res.Failed
		if reported > 0 {
			if count == 0 {
				return fmt.Errorf("verificar %s: %d éxitos reportados pero cero filas persistidas: %w",
					kind, reported, domain.ErrVerificationMismatch)
			}
			diff := count - reported
			if diff < 0 {
				diff = -diff
			}
			if float64(diff)/float64(reported) > 0.5 {
				return fmt.Errorf("verificar %s: reportados %d, persistidos %d: %w",
					kind, reported, count, domain.ErrVerificationMismatch)
			}
		}
		s.log.Debug().
			Str("clase", string(kind)).
			Int("reportados", reported).
			Int("persistidos", count).
			Msg("conteo verificado")
	}

	// Cobertura mensual de las clases que la exigen.
	months := MonthsInRange(window)
	for _, kind := range fullCoverageKinds {
		res, ok := results[kind]
		if !ok || res.Skipped || res.Persisted == 0 {
			continue
		}
		for _, m := range months {
			from, to := m.Start, m.End
			n, err := s.store.Count(ctx, kind, tenantID, &from, &to)
			if err != nil {
				return fmt.Errorf("verificar cobertura de %s: %w", kind, err)
			}
			if n == 0 {
				return fmt.Errorf("verificar cobertura de %s: mes %s sin filas: %w",
					kind, m.Start.Format("2006-01"), domain.ErrVerificationMismatch)
			}
		}
	}

	s.log.Info().Str("tenant", tenantID).Msg("verificación completada")
	return nil
}
