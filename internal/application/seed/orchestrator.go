package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// Identidad fija del negocio demo. Credenciales de fixture, no un secreto.
const (
	demoSubdomain     = "demo"
	demoTenantName    = "Demo Business Pvt Ltd"
	demoAdminEmail    = "admin@demo.com"
	demoAdminName     = "Demo Admin"
	demoAdminPassword = "Test@1234"
)

// Options parámetros de una corrida.
type Options struct {
	// TenantID apunta la corrida a un tenant existente; vacío usa (o crea)
	// el tenant demo por subdominio.
	TenantID string
	// Comprehensive true siembra todos los módulos; false solo el CRM base
	// (productos, contactos, deals, tareas).
	Comprehensive bool
}

// Orchestrator secuencia el pipeline completo de siembra y garantiza una
// sola corrida activa por tenant.
type Orchestrator struct {
	store   Store
	seeder  *Seeder
	tracker *Tracker
	window  DateRange
	log     *logger.Logger
}

// NewOrchestrator arma el pipeline. El tracker se inyecta para que los
// tests puedan usar registros aislados.
func NewOrchestrator(store Store, seeder *Seeder, tracker *Tracker, window DateRange, log *logger.Logger) *Orchestrator {
	return &Orchestrator{store: store, seeder: seeder, tracker: tracker, window: window, log: log}
}

// trackingKey clave de single-flight: el tenant pedido o el demo por defecto.
func trackingKey(opts Options) string {
	if opts.TenantID != "" {
		return opts.TenantID
	}
	return demoSubdomain
}

// Run ejecuta el pipeline de forma sincrónica. Si ya hay una corrida activa
// para el tenant devuelve domain.ErrSeedAlreadyRunning sin encolar.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*Summary, error) {
	key := trackingKey(opts)
	if !o.tracker.Start(key) {
		return nil, fmt.Errorf("tenant %s: %w", key, domain.ErrSeedAlreadyRunning)
	}
	defer o.tracker.Stop(key)
	return o.run(ctx, opts)
}

// RunBackground reserva el single-flight de forma sincrónica y ejecuta el
// pipeline en segundo plano. El llamador descubre el desenlace por la
// interfaz de estado, no por esta llamada.
func (o *Orchestrator) RunBackground(opts Options) error {
	key := trackingKey(opts)
	if !o.tracker.Start(key) {
		return fmt.Errorf("tenant %s: %w", key, domain.ErrSeedAlreadyRunning)
	}
	go func() {
		defer o.tracker.Stop(key)
		if _, err := o.run(context.Background(), opts); err != nil {
			o.log.Error().Err(err).Str("tenant", key).Msg("siembra en segundo plano fallida")
		}
	}()
	return nil
}

// Status expone el estado de la corrida para la superficie de polling.
func (o *Orchestrator) Status(opts Options) (running bool, elapsed time.Duration) {
	return o.tracker.Status(trackingKey(opts))
}

// CurrentCounts cuenta las filas persistidas por clase para la superficie de
// polling. Con el tenant demo aún no creado devuelve conteos vacíos.
func (o *Orchestrator) CurrentCounts(ctx context.Context, opts Options) (map[EntityKind]int, error) {
	tenantID := opts.TenantID
	if tenantID == "" {
		tenant, err := o.store.GetTenantBySubdomain(ctx, demoSubdomain)
		if err != nil {
			return nil, fmt.Errorf("buscar tenant: %w", err)
		}
		if tenant == nil {
			return map[EntityKind]int{}, nil
		}
		tenantID = tenant.ID
	}

	kinds := []EntityKind{
		KindProduct, KindContact, KindDeal, KindTask,
		KindOrder, KindInvoice, KindCampaign, KindLeadSource, KindTicket,
	}
	counts := make(map[EntityKind]int, len(kinds))
	for _, kind := range kinds {
		supported, err := o.store.Supports(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("sondear %s: %w", kind, err)
		}
		if !supported {
			continue
		}
		n, err := o.store.Count(ctx, kind, tenantID, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("contar %s: %w", kind, err)
		}
		counts[kind] = n
	}
	return counts, nil
}

// run pipeline fijo: tenant → principal → reset → base → dependientes →
// transversales → verificación → resumen. Cada etapa es fatal salvo las
// clases transversales ausentes del esquema, que se saltan.
func (o *Orchestrator) run(ctx context.Context, opts Options) (*Summary, error) {
	startedAt := time.Now()

	tenant, err := o.ensureTenant(ctx, opts.TenantID)
	if err != nil {
		return nil, fmt.Errorf("etapa tenant: %w", err)
	}
	admin, err := o.ensureAdmin(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("etapa principal: %w", err)
	}
	if err := o.seeder.Reset(ctx, tenant.ID); err != nil {
		return nil, fmt.Errorf("etapa reset: %w", err)
	}

	summary := &Summary{
		TenantID:  tenant.ID,
		StartedAt: startedAt,
		Results:   make(map[EntityKind]*SeedResult),
	}

	// Entidades base.
	res, err := o.seeder.SeedProducts(ctx, tenant.ID, o.window)
	if err != nil {
		return nil, fmt.Errorf("etapa productos: %w", err)
	}
	summary.Results[KindProduct] = res

	res, err = o.seeder.SeedContacts(ctx, tenant.ID, o.window)
	if err != nil {
		return nil, fmt.Errorf("etapa contactos: %w", err)
	}
	summary.Results[KindContact] = res

	// Entidades dependientes.
	res, err = o.seeder.SeedDeals(ctx, tenant.ID, o.window)
	if err != nil {
		return nil, fmt.Errorf("etapa deals: %w", err)
	}
	summary.Results[KindDeal] = res

	res, err = o.seeder.SeedTasks(ctx, tenant.ID, admin.ID, o.window)
	if err != nil {
		return nil, fmt.Errorf("etapa tareas: %w", err)
	}
	summary.Results[KindTask] = res

	if opts.Comprehensive {
		orderRes, invoiceRes, err := o.seeder.SeedOrders(ctx, tenant.ID, o.window)
		if err != nil {
			return nil, fmt.Errorf("etapa órdenes: %w", err)
		}
		summary.Results[KindOrder] = orderRes
		summary.Results[KindInvoice] = invoiceRes

		// Entidades transversales: la ausencia de la clase en el esquema se
		// salta, cualquier otro error es fatal.
		if err := o.seedOptional(ctx, summary, KindCampaign, func() (*SeedResult, error) {
			return o.seeder.SeedCampaigns(ctx, tenant.ID, o.window)
		}); err != nil {
			return nil, fmt.Errorf("etapa campañas: %w", err)
		}
		if err := o.seedOptional(ctx, summary, KindLeadSource, func() (*SeedResult, error) {
			return o.seeder.SeedLeadSources(ctx, tenant.ID, o.window)
		}); err != nil {
			return nil, fmt.Errorf("etapa orígenes: %w", err)
		}
		if err := o.seedOptional(ctx, summary, KindTicket, func() (*SeedResult, error) {
			return o.seeder.SeedTickets(ctx, tenant.ID, o.window)
		}); err != nil {
			return nil, fmt.Errorf("etapa tickets: %w", err)
		}

		supported, err := o.store.Supports(ctx, KindAuditLog)
		if err != nil {
			return nil, fmt.Errorf("etapa operaciones: %w", err)
		}
		if supported {
			opsResults, err := o.seeder.SeedOperations(ctx, tenant.ID, admin.ID, o.window)
			for k, r := range opsResults {
				summary.Results[k] = r
			}
			if err != nil {
				return nil, fmt.Errorf("etapa operaciones: %w", err)
			}
		} else {
			o.log.Warn().Msg("clases operativas ausentes en este despliegue, etapa saltada")
			summary.Results[KindAuditLog] = &SeedResult{Kind: KindAuditLog, Skipped: true}
		}
	}

	if err := o.seeder.Verify(ctx, tenant.ID, o.window, summary.Results); err != nil {
		return nil, fmt.Errorf("etapa verificación: %w", err)
	}

	summary.FinishedAt = time.Now()
	o.log.Info().
		Str("tenant", tenant.ID).
		Int("total", summary.Total()).
		Dur("duracion", summary.FinishedAt.Sub(summary.StartedAt)).
		Msg("siembra completada")
	return summary, nil
}

// seedOptional ejecuta una fábrica transversal si el despliegue soporta la
// clase; si no, registra el salto en el resumen.
func (o *Orchestrator) seedOptional(ctx context.Context, summary *Summary, kind EntityKind, fn func() (*SeedResult, error)) error {
	supported, err := o.store.Supports(ctx, kind)
	if err != nil {
		return fmt.Errorf("sondear %s: %w", kind, err)
	}
	if !supported {
		o.log.Warn().Str("clase", string(kind)).Msg("clase ausente en este despliegue, etapa saltada")
		summary.Results[kind] = &SeedResult{Kind: kind, Skipped: true}
		return nil
	}
	res, err := fn()
	if err != nil {
		return err
	}
	summary.Results[kind] = res
	return nil
}

// ensureTenant reutiliza el tenant pedido o adquiere-o-crea el demo.
func (o *Orchestrator) ensureTenant(ctx context.Context, tenantID string) (*entity.Tenant, error) {
	existing, err := o.store.GetTenantBySubdomain(ctx, demoSubdomain)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("buscar tenant: %w", err)
	}
	if existing != nil {
		if tenantID != "" && existing.ID != tenantID {
			return nil, fmt.Errorf("tenant %s no corresponde al subdominio demo: %w", tenantID, domain.ErrInvalidInput)
		}
		return existing, nil
	}

	now := time.Now()
	t := &entity.Tenant{
		ID:        tenantID,
		Name:      demoTenantName,
		Subdomain: demoSubdomain,
		Plan:      "professional",
		Status:    "active",
		Email:     demoAdminEmail,
		City:      "Mumbai",
		State:     "Maharashtra",
		Country:   "India",
		Industry:  "software",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := o.store.CreateTenant(ctx, t); err != nil {
		return nil, fmt.Errorf("crear tenant: %w", err)
	}
	o.log.Info().Str("tenant", t.ID).Msg("tenant demo creado")
	return t, nil
}

// ensureAdmin upserta el principal por su email fijo. Si el tenant fue
// recreado, repara la referencia en lugar de crear un segundo principal.
func (o *Orchestrator) ensureAdmin(ctx context.Context, tenantID string) (*entity.User, error) {
	existing, err := o.store.GetUserByEmail(ctx, demoAdminEmail)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("buscar principal: %w", err)
	}
	if existing != nil {
		if existing.TenantID != tenantID {
			if err := o.store.UpdateUserTenant(ctx, existing.ID, tenantID); err != nil {
				return nil, fmt.Errorf("reparar tenant del principal: %w", err)
			}
			existing.TenantID = tenantID
			o.log.Info().Str("usuario", existing.ID).Msg("referencia de tenant del principal reparada")
		}
		return existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear contraseña del principal: %w", err)
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.NewString(),
		TenantID:     tenantID,
		Email:        demoAdminEmail,
		Name:         demoAdminName,
		PasswordHash: string(hash),
		Role:         "owner",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := o.store.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("crear principal: %w", err)
	}
	o.log.Info().Str("usuario", u.ID).Msg("principal demo creado")
	return u, nil
}
