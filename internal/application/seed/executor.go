package seed

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// Op una escritura lógica contra el store.
type Op func(ctx context.Context) error

// Executor ejecuta escrituras con reintento acotado y ritmo controlado.
// El predicado transient lo inyecta la capa de infraestructura para que el
// motor no conozca códigos de error de un store concreto.
type Executor struct {
	retries     int
	baseDelay   time.Duration
	pauseEveryN int
	pause       time.Duration
	batchSize   int
	transient   func(error) bool
	rng         *rand.Rand
	rngMu       sync.Mutex
	log         *logger.Logger
}

// NewExecutor crea el ejecutor a partir de la configuración de siembra.
func NewExecutor(cfg config.SeedConfig, transient func(error) bool, rng *rand.Rand, log *logger.Logger) *Executor {
	if transient == nil {
		transient = func(error) bool { return false }
	}
	return &Executor{
		retries:     cfg.Retries,
		baseDelay:   time.Duration(cfg.BaseDelayMs) * time.Millisecond,
		pauseEveryN: cfg.PauseEveryN,
		pause:       time.Duration(cfg.PauseMs) * time.Millisecond,
		batchSize:   cfg.BatchSize,
		transient:   transient,
		rng:         rng,
		log:         log,
	}
}

// WithRetry ejecuta fn con hasta retries reintentos ante errores transitorios,
// con backoff exponencial más jitter. Los errores no transitorios se propagan
// de inmediato. Al agotar los reintentos devuelve el último error envuelto en
// domain.ErrStoreUnavailable junto con la cantidad de intentos.
func (e *Executor) WithRetry(ctx context.Context, label string, fn Op) error {
	var lastErr error
	for attempt := 0; attempt <= e.retries; attempt++ {
		if attempt > 0 {
			delay := e.baseDelay * (1 << (attempt - 1))
			// rand.Rand no es seguro para uso concurrente y los reintentos
			// de RunBatched corren en goroutines paralelas.
			e.rngMu.Lock()
			delay += time.Duration(e.rng.Int63n(int64(e.baseDelay) + 1))
			e.rngMu.Unlock()
			e.log.Debug().
				Str("op", label).
				Int("intento", attempt).
				Dur("espera", delay).
				Msg("reintentando escritura transitoria")
			select {
			case <-ctx.Done():
				return fmt.Errorf("%s: %w", label, ctx.Err())
			case <-time.After(delay):
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !e.transient(lastErr) {
			return fmt.Errorf("%s: %w", label, lastErr)
		}
	}
	return fmt.Errorf("%s: %d intentos agotados (%v): %w", label, e.retries+1, lastErr, domain.ErrStoreUnavailable)
}

// RunSequential ejecuta las operaciones estrictamente de a una, insertando
// una pausa cada pauseEveryN escrituras para dejar reciclar la conexión.
// Las fallas individuales se cuentan y registran pero no abortan el lote.
func (e *Executor) RunSequential(ctx context.Context, label string, ops []Op) (succeeded, failed int) {
	for i, op := range ops {
		if err := e.WithRetry(ctx, label, op); err != nil {
			failed++
			e.log.Warn().
				Str("op", label).
				Int("indice", i).
				Err(err).
				Msg("escritura fallida en lote secuencial")
		} else {
			succeeded++
		}

		if e.pauseEveryN > 0 && (i+1)%e.pauseEveryN == 0 && i+1 < len(ops) {
			select {
			case <-ctx.Done():
				failed += len(ops) - i - 1
				e.logBatch(label, succeeded, failed)
				return succeeded, failed
			case <-time.After(e.pause):
			}
		}
	}
	e.logBatch(label, succeeded, failed)
	return succeeded, failed
}

// BatchSize tamaño de ronda configurado para el modo batched.
func (e *Executor) BatchSize() int {
	return e.batchSize
}

// RunBatched ejecuta batchSize operaciones concurrentes por ronda con
// semántica settle-all: toda operación de la ronda se observa hasta el final
// aunque sus hermanas fallen. Pausa entre rondas.
func (e *Executor) RunBatched(ctx context.Context, label string, ops []Op, batchSize int) (succeeded, failed int) {
	if batchSize < 1 {
		batchSize = 1
	}

	for start := 0; start < len(ops); start += batchSize {
		end := start + batchSize
		if end > len(ops) {
			end = len(ops)
		}
		round := ops[start:end]

		errs := make([]error, len(round))
		var wg sync.WaitGroup
		for i, op := range round {
			wg.Add(1)
			go func(i int, op Op) {
				defer wg.Done()
				errs[i] = e.WithRetry(ctx, label, op)
			}(i, op)
		}
		wg.Wait()

		roundOK, roundFail := 0, 0
		for i, err := range errs {
			if err != nil {
				roundFail++
				e.log.Warn().
					Str("op", label).
					Int("indice", start+i).
					Err(err).
					Msg("escritura fallida en ronda")
			} else {
				roundOK++
			}
		}
		succeeded += roundOK
		failed += roundFail
		e.log.Debug().
			Str("op", label).
			Int("ok", roundOK).
			Int("fallas", roundFail).
			Msg("ronda completada")

		if end < len(ops) && e.pause > 0 {
			select {
			case <-ctx.Done():
				failed += len(ops) - end
				e.logBatch(label, succeeded, failed)
				return succeeded, failed
			case <-time.After(e.pause):
			}
		}
	}
	e.logBatch(label, succeeded, failed)
	return succeeded, failed
}

func (e *Executor) logBatch(label string, ok, failed int) {
	ev := e.log.Info()
	if failed > 0 && ok == 0 {
		// Falla total: señal de problema de conectividad o constraint, no ruido transitorio.
		ev = e.log.Error()
	}
	ev.Str("op", label).Int("ok", ok).Int("fallas", failed).Msg("lote de escrituras terminado")
}
