package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// SeedContacts crea los contactos base distribuidos sobre toda la ventana.
// La rotación de etapas idx%3 garantiza un mínimo por etapa para los
// consumidores aguas abajo (los deals necesitan clientes existentes).
func (s *Seeder) SeedContacts(ctx context.Context, tenantID string, window DateRange) (*SeedResult, error) {
	stamps := Allocate(s.rng, targetContacts, window)

	ops := make([]Op, 0, len(stamps))
	for i, createdAt := range stamps {
		name := fullName(s.rng)
		loc := cities[i%len(cities)]

		var stage string
		switch i % 3 {
		case 0:
			stage = entity.ContactStageCustomer
		case 1:
			stage = entity.ContactStageContact
		default:
			stage = entity.ContactStageProspect
		}

		c := &entity.Contact{
			ID:        uuid.NewString(),
			TenantID:  tenantID,
			Name:      name,
			Email:     emailFor(name, i),
			Phone:     phone(s.rng),
			Company:   pick(s.rng, companies),
			Source:    leadSourceNames[i%len(leadSourceNames)],
			Stage:     stage,
			Status:    "active",
			City:      loc.City,
			State:     loc.State,
			Country:   "India",
			LeadScore: 10 + s.rng.Intn(90),
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
		// Uno de cada cinco tiene contacto reciente registrado.
		if i%5 == 0 {
			last := RandomDateInRange(s.rng, DateRange{Start: createdAt, End: window.End})
			c.LastContactedAt = &last
		}

		ops = append(ops, func(ctx context.Context) error {
			return s.store.CreateContact(ctx, c)
		})
	}

	ok, failed := s.exec.RunSequential(ctx, "crear contacto", ops)
	return s.finish(ctx, KindContact, tenantID, targetContacts, ok+failed, failed)
}
