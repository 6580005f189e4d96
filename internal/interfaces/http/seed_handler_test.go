package http_test

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/seed"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	apphttp "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake store para el handler
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore embebe la interfaz para satisfacerla sin implementar cada método.
// Solo los métodos que el handler ejercita se sobreescriben; llamar cualquier
// otro haría panic, lo que delata un test mal planteado.
type fakeStore struct {
	seed.Store
	tenant *entity.Tenant
}

func (f *fakeStore) GetTenantBySubdomain(ctx context.Context, subdomain string) (*entity.Tenant, error) {
	return f.tenant, nil
}

func (f *fakeStore) Supports(ctx context.Context, kind seed.EntityKind) (bool, error) {
	return true, nil
}

func (f *fakeStore) Count(ctx context.Context, kind seed.EntityKind, tenantID string, from, to *time.Time) (int, error) {
	return 0, nil
}

// buildSeedApp arma la app Fiber con el orquestador sobre el fake store.
// Devuelve también el tracker para poder simular una corrida activa.
func buildSeedApp(t *testing.T, store seed.Store) (*fiber.App, *seed.Tracker) {
	t.Helper()

	log := logger.Nop()
	rng := rand.New(rand.NewSource(7))
	exec := seed.NewExecutor(config.SeedConfig{
		Retries:     1,
		BaseDelayMs: 1,
		BatchSize:   5,
		PauseEveryN: 5,
		PauseMs:     0,
	}, nil, rng, log)

	loc := time.UTC
	window := seed.DateRange{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, loc),
		End:   time.Date(2026, 3, 1, 0, 0, 0, 0, loc).Add(-time.Millisecond),
	}

	seeder := seed.NewSeeder(store, exec, rng, log)
	tracker := seed.NewTracker()
	orch := seed.NewOrchestrator(store, seeder, tracker, window, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Orchestrator:         orch,
		DefaultComprehensive: true,
		JWTSecret:            testJWTSecret,
	})
	return app, tracker
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del handler
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedHandler_CorridaActiva_Retorna409(t *testing.T) {
	app, tracker := buildSeedApp(t, &fakeStore{})

	// Simula una corrida en curso para el tenant demo.
	require.True(t, tracker.Start("demo"))
	defer tracker.Stop("demo")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	req.Header.Set("Authorization", tokenForRole(t, "owner"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode,
		"una corrida activa debe rechazarse, nunca encolarse")

	var body dto.SeedAlreadyRunningResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.AlreadyRunning)
	assert.GreaterOrEqual(t, body.ElapsedMs, int64(0))
}

func TestSeedHandler_ConWait_CorridaActiva_Retorna409(t *testing.T) {
	app, tracker := buildSeedApp(t, &fakeStore{})

	require.True(t, tracker.Start("demo"))
	defer tracker.Stop("demo")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed?wait=true", nil)
	req.Header.Set("Authorization", tokenForRole(t, "owner"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSeedHandler_Status_SinCorrida(t *testing.T) {
	app, _ := buildSeedApp(t, &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/seed/status", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.SeedStatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Running)
	// Sin tenant demo creado aún, no hay conteos que reportar.
	assert.Empty(t, body.Counts)
}

func TestSeedHandler_Status_ConTenantExistente(t *testing.T) {
	tenant := &entity.Tenant{
		ID:        "tenant-demo-1",
		Name:      "Demo Business Pvt Ltd",
		Subdomain: "demo",
		CreatedAt: time.Now(),
	}
	app, tracker := buildSeedApp(t, &fakeStore{tenant: tenant})

	require.True(t, tracker.Start("demo"))
	defer tracker.Stop("demo")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/seed/status", nil)
	req.Header.Set("Authorization", tokenForRole(t, "owner"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.SeedStatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Running)
	assert.NotEmpty(t, body.Counts, "con tenant resuelto deben reportarse conteos")
	for kind, n := range body.Counts {
		assert.Zero(t, n, "conteo de %s debe ser cero en el fake", kind)
	}
}

func TestSeedHandler_BodyInvalido_Retorna400(t *testing.T) {
	app, _ := buildSeedApp(t, &fakeStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", strings.NewReader(`{"comprehensive":`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "owner"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización de la superficie admin
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedHandler_SinToken_Retorna401(t *testing.T) {
	app, _ := buildSeedApp(t, &fakeStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSeedHandler_RolMember_Retorna403(t *testing.T) {
	app, _ := buildSeedApp(t, &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/seed/status", nil)
	req.Header.Set("Authorization", tokenForRole(t, "member"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
