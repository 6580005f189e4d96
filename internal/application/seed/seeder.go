package seed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// Objetivos por clase en modo completo. El modo mínimo solo siembra
// productos, contactos, deals y tareas.
const (
	targetProducts       = 15
	targetContacts       = 150
	targetDeals          = 200
	targetTasks          = 300
	targetOrders         = 80
	targetCampaignsExtra = 20
	targetTickets        = 60
	targetAuditLogs      = 200
	targetAutomationRuns = 60
	targetNotifications  = 120
)

// Seeder fábricas de entidades demo. Cada fábrica asigna marcas de tiempo
// con el asignador temporal, persiste a través del ejecutor y devuelve un
// SeedResult cuyo Persisted sale de un conteo independiente contra el store.
type Seeder struct {
	store Store
	exec  *Executor
	rng   *rand.Rand
	log   *logger.Logger
}

// NewSeeder arma las fábricas. El RNG se inyecta para tests deterministas.
func NewSeeder(store Store, exec *Executor, rng *rand.Rand, log *logger.Logger) *Seeder {
	return &Seeder{store: store, exec: exec, rng: rng, log: log}
}

// finish hace el conteo de lectura independiente y decide si la fábrica
// falló duro. Un resultado vacío tras intentos no triviales es fatal: los
// vacíos silenciosos cascadean a las fábricas dependientes.
func (s *Seeder) finish(ctx context.Context, kind EntityKind, tenantID string, requested, attempted, failed int) (*SeedResult, error) {
	persisted, err := s.store.Count(ctx, kind, tenantID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("contar %s persistidos: %w", kind, err)
	}

	res := &SeedResult{
		Kind:      kind,
		Requested: requested,
		Attempted: attempted,
		Failed:    failed,
		Persisted: persisted,
	}
	s.log.Info().
		Str("clase", string(kind)).
		Int("pedidos", requested).
		Int("intentados", attempted).
		Int("fallidos", failed).
		Int("persistidos", persisted).
		Msg("fábrica terminada")

	if persisted == 0 && attempted > 0 {
		return res, fmt.Errorf("%s: %d escrituras intentadas y cero filas persistidas: %w",
			kind, attempted, domain.ErrAllWritesRejected)
	}
	return res, nil
}

// verifiedContacts devuelve una instantánea verificada de los contactos del
// tenant: si el largo de la lista no coincide con el conteo persistido la
// vuelve a pedir, para no operar sobre una lista parcial o vieja.
func (s *Seeder) verifiedContacts(ctx context.Context, tenantID string) ([]entity.Contact, error) {
	contacts, err := s.store.ListContacts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listar contactos: %w", err)
	}
	count, err := s.store.Count(ctx, KindContact, tenantID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("contar contactos: %w", err)
	}
	if len(contacts) != count {
		s.log.Warn().
			Int("en_memoria", len(contacts)).
			Int("persistidos", count).
			Msg("instantánea de contactos desactualizada, repitiendo lectura")
		contacts, err = s.store.ListContacts(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("relistar contactos: %w", err)
		}
	}
	if len(contacts) == 0 {
		return nil, fmt.Errorf("sin contactos disponibles para el tenant %s: %w",
			tenantID, domain.ErrNoUpstreamData)
	}
	return contacts, nil
}

// verifiedProducts igual que verifiedContacts pero para el catálogo.
func (s *Seeder) verifiedProducts(ctx context.Context, tenantID string) ([]entity.Product, error) {
	products, err := s.store.ListProducts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("sin productos disponibles para el tenant %s: %w",
			tenantID, domain.ErrNoUpstreamData)
	}
	return products, nil
}
