package seed

import (
	"context"
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// SeedProducts upserta el catálogo fijo con IDs estables. Idempotente:
// corridas repetidas actualizan las mismas filas en lugar de duplicarlas.
func (s *Seeder) SeedProducts(ctx context.Context, tenantID string, window DateRange) (*SeedResult, error) {
	ops := make([]Op, 0, len(productCatalog))
	for _, def := range productCatalog {
		createdAt := RandomDateInRange(s.rng, window)
		p := &entity.Product{
			ID:          def.ID,
			TenantID:    tenantID,
			SKU:         def.SKU,
			Name:        def.Name,
			Description: "Producto demo: " + def.Name,
			Category:    def.Category,
			CostPrice:   money(def.Cost),
			SalePrice:   money(def.Sale),
			Quantity:    10 + s.rng.Intn(90),
			CreatedAt:   createdAt,
			UpdatedAt:   time.Now(),
		}
		ops = append(ops, func(ctx context.Context) error {
			return s.store.UpsertProduct(ctx, p)
		})
	}

	ok, failed := s.exec.RunSequential(ctx, "upsert producto", ops)
	return s.finish(ctx, KindProduct, tenantID, len(productCatalog), ok+failed, failed)
}
