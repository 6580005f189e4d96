package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// UpsertProduct inserta o actualiza un producto del catálogo por su ID
// estable. Las corridas repetidas actualizan la misma fila.
func (s *SeedStore) UpsertProduct(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, tenant_id, sku, name, description, category,
			cost_price, sale_price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			sku = EXCLUDED.sku,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			cost_price = EXCLUDED.cost_price,
			sale_price = EXCLUDED.sale_price,
			quantity = EXCLUDED.quantity,
			updated_at = EXCLUDED.updated_at`
	_, err := s.q.Exec(ctx, query,
		p.ID, p.TenantID, p.SKU, p.Name, p.Description, p.Category,
		p.CostPrice, p.SalePrice, p.Quantity, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// ListProducts lista el catálogo del tenant.
func (s *SeedStore) ListProducts(ctx context.Context, tenantID string) ([]entity.Product, error) {
	query := `
		SELECT id, tenant_id, sku, name, description, category, cost_price, sale_price, quantity, created_at, updated_at
		FROM products WHERE tenant_id = $1 ORDER BY sku`
	rows, err := s.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.TenantID, &p.SKU, &p.Name, &p.Description, &p.Category,
			&p.CostPrice, &p.SalePrice, &p.Quantity, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
