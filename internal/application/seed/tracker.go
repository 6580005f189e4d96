package seed

import (
	"sync"
	"time"
)

// Tracker registro de corridas en vuelo por tenant. Garantiza una sola
// corrida activa por tenant; se inyecta (no es un singleton de paquete)
// para que los tests puedan instanciar registros aislados.
type Tracker struct {
	mu   sync.Mutex
	runs map[string]time.Time
}

// NewTracker crea un registro vacío.
func NewTracker() *Tracker {
	return &Tracker{runs: make(map[string]time.Time)}
}

// Start marca el tenant como en curso. Devuelve false si ya había una
// corrida activa; en ese caso el llamador debe rechazar, nunca encolar.
func (t *Tracker) Start(tenantID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, running := t.runs[tenantID]; running {
		return false
	}
	t.runs[tenantID] = time.Now()
	return true
}

// Stop libera el tenant.
func (t *Tracker) Stop(tenantID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.runs, tenantID)
}

// Status informa si hay una corrida activa y su tiempo transcurrido.
func (t *Tracker) Status(tenantID string) (running bool, elapsed time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	startedAt, ok := t.runs[tenantID]
	if !ok {
		return false, 0
	}
	return true, time.Since(startedAt)
}
