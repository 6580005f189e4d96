package seed_test

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/seed"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

var errTransitorio = errors.New("connection reset by peer")
var errPermanente = errors.New("violación de constraint")

func testExecutor(t *testing.T) *seed.Executor {
	t.Helper()
	cfg := config.SeedConfig{
		Retries:     6,
		BaseDelayMs: 1, // backoff mínimo para que los tests no duerman
		BatchSize:   3,
		PauseEveryN: 0,
		PauseMs:     0,
	}
	transient := func(err error) bool { return errors.Is(err, errTransitorio) }
	return seed.NewExecutor(cfg, transient, rand.New(rand.NewSource(7)), logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// WithRetry
// ──────────────────────────────────────────────────────────────────────────────

func TestWithRetry_TransitorioDosVecesLuegoExito(t *testing.T) {
	exec := testExecutor(t)
	calls := 0
	err := exec.WithRetry(context.Background(), "op", func(ctx context.Context) error {
		calls++
		if calls <= 2 {
			return errTransitorio
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls, "dos reintentos exactos antes del éxito")
}

func TestWithRetry_NoTransitorioPropagaDeInmediato(t *testing.T) {
	exec := testExecutor(t)
	calls := 0
	err := exec.WithRetry(context.Background(), "op", func(ctx context.Context) error {
		calls++
		return errPermanente
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errPermanente)
	assert.Equal(t, 1, calls, "un error no transitorio no se reintenta")
}

func TestWithRetry_AgotamientoEnvuelveStoreUnavailable(t *testing.T) {
	exec := testExecutor(t)
	calls := 0
	err := exec.WithRetry(context.Background(), "op", func(ctx context.Context) error {
		calls++
		return errTransitorio
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, 7, calls, "intento inicial más 6 reintentos")
	assert.Contains(t, err.Error(), "7 intentos", "el error anota la cantidad de intentos")
}

func TestWithRetry_ContextoCanceladoCorta(t *testing.T) {
	exec := testExecutor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := exec.WithRetry(ctx, "op", func(ctx context.Context) error {
		return errTransitorio
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// ──────────────────────────────────────────────────────────────────────────────
// RunSequential
// ──────────────────────────────────────────────────────────────────────────────

func TestRunSequential_FallasParcialesNoAbortanElLote(t *testing.T) {
	exec := testExecutor(t)
	ops := make([]seed.Op, 0, 10)
	for i := 0; i < 10; i++ {
		i := i
		ops = append(ops, func(ctx context.Context) error {
			if i%4 == 3 {
				return errPermanente
			}
			return nil
		})
	}
	ok, failed := exec.RunSequential(context.Background(), "lote", ops)
	assert.Equal(t, 8, ok)
	assert.Equal(t, 2, failed)
}

func TestRunSequential_NuncaConcurrente(t *testing.T) {
	exec := testExecutor(t)
	var inFlight, maxInFlight int32
	ops := make([]seed.Op, 0, 20)
	for i := 0; i < 20; i++ {
		ops = append(ops, func(ctx context.Context) error {
			cur := atomic.AddInt32(&inFlight, 1)
			if cur > atomic.LoadInt32(&maxInFlight) {
				atomic.StoreInt32(&maxInFlight, cur)
			}
			atomic.AddInt32(&inFlight, -1)
			return nil
		})
	}
	ok, failed := exec.RunSequential(context.Background(), "lote", ops)
	assert.Equal(t, 20, ok)
	assert.Zero(t, failed)
	assert.Equal(t, int32(1), maxInFlight, "las escrituras secuenciales jamás se superponen")
}

// ──────────────────────────────────────────────────────────────────────────────
// RunBatched
// ──────────────────────────────────────────────────────────────────────────────

func TestRunBatched_SettleAll(t *testing.T) {
	exec := testExecutor(t)
	var executed int32
	ops := make([]seed.Op, 0, 9)
	for i := 0; i < 9; i++ {
		i := i
		ops = append(ops, func(ctx context.Context) error {
			atomic.AddInt32(&executed, 1)
			if i%3 == 0 {
				return errPermanente
			}
			return nil
		})
	}
	ok, failed := exec.RunBatched(context.Background(), "lote", ops, 3)
	assert.Equal(t, int32(9), executed, "toda operación se observa aunque sus hermanas fallen")
	assert.Equal(t, 6, ok)
	assert.Equal(t, 3, failed)
}

func TestRunBatched_RespetaElTopeDeConcurrencia(t *testing.T) {
	exec := testExecutor(t)
	var inFlight, maxInFlight int32
	ops := make([]seed.Op, 0, 12)
	for i := 0; i < 12; i++ {
		ops = append(ops, func(ctx context.Context) error {
			cur := atomic.AddInt32(&inFlight, 1)
			for {
				max := atomic.LoadInt32(&maxInFlight)
				if cur <= max || atomic.CompareAndSwapInt32(&maxInFlight, max, cur) {
					break
				}
			}
			atomic.AddInt32(&inFlight, -1)
			return nil
		})
	}
	ok, _ := exec.RunBatched(context.Background(), "lote", ops, 4)
	assert.Equal(t, 12, ok)
	assert.LessOrEqual(t, maxInFlight, int32(4), "nunca más operaciones en vuelo que el tamaño de ronda")
}

func TestRunBatched_ReintentosConcurrentesCompletan(t *testing.T) {
	// Las operaciones de una ronda reintentan en goroutines paralelas y
	// todas sortean jitter del mismo generador. Con -race este test delata
	// cualquier acceso sin sincronizar al generador compartido.
	exec := testExecutor(t)
	attempts := make([]int32, 8)
	ops := make([]seed.Op, 0, len(attempts))
	for i := range attempts {
		i := i
		ops = append(ops, func(ctx context.Context) error {
			if atomic.AddInt32(&attempts[i], 1) <= 2 {
				return errTransitorio
			}
			return nil
		})
	}
	ok, failed := exec.RunBatched(context.Background(), "lote", ops, 4)
	assert.Equal(t, 8, ok)
	assert.Zero(t, failed)
	for i := range attempts {
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts[i]), "operación %d con reintentos de más o de menos", i)
	}
}
