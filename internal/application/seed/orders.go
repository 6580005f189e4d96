package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

var orderStatuses = []string{
	entity.OrderStatusPending,
	entity.OrderStatusPaid,
	entity.OrderStatusShipped,
	entity.OrderStatusDelivered,
	entity.OrderStatusCancelled,
}

var taxRate = decimal.NewFromFloat(0.18)

// SeedOrders crea órdenes con 1..3 renglones del catálogo y una factura
// enlazada por orden. Invariantes: factura.Total == orden.Total y ambas
// apuntan al mismo contacto; PaidAt presente solo en estados terminales de pago.
func (s *Seeder) SeedOrders(ctx context.Context, tenantID string, window DateRange) (*SeedResult, *SeedResult, error) {
	contacts, err := s.verifiedContacts(ctx, tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("órdenes: %w", err)
	}
	products, err := s.verifiedProducts(ctx, tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("órdenes: %w", err)
	}

	stamps := Allocate(s.rng, targetOrders, window)
	orderOps := make([]Op, 0, len(stamps))
	invoiceOps := make([]Op, 0, len(stamps))

	for i, createdAt := range stamps {
		contact := contacts[s.rng.Intn(len(contacts))]
		status := orderStatuses[i%len(orderStatuses)]

		order := &entity.Order{
			ID:          uuid.NewString(),
			TenantID:    tenantID,
			ContactID:   contact.ID,
			OrderNumber: fmt.Sprintf("ORD-%04d", i+1),
			Status:      status,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		}

		nItems := 1 + s.rng.Intn(3)
		for j := 0; j < nItems; j++ {
			p := products[s.rng.Intn(len(products))]
			qty := 1 + s.rng.Intn(5)
			subtotal := p.SalePrice.Mul(decimal.NewFromInt(int64(qty)))
			order.Items = append(order.Items, entity.OrderItem{
				ID:        uuid.NewString(),
				OrderID:   order.ID,
				ProductID: p.ID,
				Quantity:  qty,
				UnitPrice: p.SalePrice,
				Subtotal:  subtotal,
			})
		}
		order.ComputeTotal()

		subtotal := order.Total.Div(taxRate.Add(decimal.NewFromInt(1))).Round(2)
		invoice := &entity.Invoice{
			ID:            uuid.NewString(),
			TenantID:      tenantID,
			OrderID:       order.ID,
			ContactID:     contact.ID,
			InvoiceNumber: fmt.Sprintf("INV-%04d", i+1),
			Status:        invoiceStatusFor(status),
			Subtotal:      subtotal,
			Tax:           order.Total.Sub(subtotal),
			Total:         order.Total,
			IssuedAt:      createdAt,
			DueDate:       createdAt.AddDate(0, 0, 30),
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		}
		if status == entity.OrderStatusPaid || status == entity.OrderStatusDelivered {
			paid := RandomDateInRange(s.rng, DateRange{Start: createdAt, End: window.End})
			invoice.PaidAt = &paid
		}

		orderOps = append(orderOps, func(ctx context.Context) error {
			return s.store.CreateOrder(ctx, order)
		})
		invoiceOps = append(invoiceOps, func(ctx context.Context) error {
			return s.store.CreateInvoice(ctx, invoice)
		})
	}

	// Las órdenes van primero: la factura referencia a su orden.
	okO, failO := s.exec.RunSequential(ctx, "crear orden", orderOps)
	orderRes, err := s.finish(ctx, KindOrder, tenantID, targetOrders, okO+failO, failO)
	if err != nil {
		return orderRes, nil, err
	}

	okI, failI := s.exec.RunSequential(ctx, "crear factura", invoiceOps)
	invoiceRes, err := s.finish(ctx, KindInvoice, tenantID, targetOrders, okI+failI, failI)
	return orderRes, invoiceRes, err
}

func invoiceStatusFor(orderStatus string) string {
	switch orderStatus {
	case entity.OrderStatusPaid, entity.OrderStatusDelivered:
		return entity.InvoiceStatusPaid
	case entity.OrderStatusCancelled:
		return entity.InvoiceStatusCancelled
	default:
		return entity.InvoiceStatusSent
	}
}
