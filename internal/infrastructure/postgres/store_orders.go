package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CreateOrder persiste una orden con sus renglones. Si un renglón falla la
// orden queda con renglones parciales; el llamador decide reintentar o
// contar la falla, igual que con cualquier otra escritura.
func (s *SeedStore) CreateOrder(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, tenant_id, contact_id, order_number, status, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.q.Exec(ctx, query,
		o.ID, o.TenantID, o.ContactID, o.OrderNumber, o.Status, o.Total, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, it := range o.Items {
		_, err := s.q.Exec(ctx, itemQuery,
			it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal, o.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// ListOrders lista las órdenes del tenant con sus renglones.
func (s *SeedStore) ListOrders(ctx context.Context, tenantID string) ([]entity.Order, error) {
	query := `
		SELECT id, tenant_id, contact_id, order_number, status, total, created_at, updated_at
		FROM orders WHERE tenant_id = $1 ORDER BY created_at`
	rows, err := s.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []entity.Order
	index := make(map[string]int)
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.TenantID, &o.ContactID, &o.OrderNumber, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		index[o.ID] = len(list)
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemQuery := `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.unit_price, i.subtotal
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.tenant_id = $1`
	itemRows, err := s.q.Query(ctx, itemQuery, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var it entity.OrderItem
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if pos, ok := index[it.OrderID]; ok {
			list[pos].Items = append(list[pos].Items, it)
		}
	}
	return list, itemRows.Err()
}

// CreateInvoice persiste una factura enlazada a su orden.
func (s *SeedStore) CreateInvoice(ctx context.Context, i *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, tenant_id, order_id, contact_id, invoice_number, status,
			subtotal, tax, total, issued_at, due_date, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := s.q.Exec(ctx, query,
		i.ID, i.TenantID, i.OrderID, i.ContactID, i.InvoiceNumber, i.Status,
		i.Subtotal, i.Tax, i.Total, i.IssuedAt, i.DueDate, i.PaidAt, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}
