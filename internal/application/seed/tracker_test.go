package seed_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/seed"
)

func TestTracker_SingleFlightPorTenant(t *testing.T) {
	tr := seed.NewTracker()

	require.True(t, tr.Start("tenant-a"))
	assert.False(t, tr.Start("tenant-a"), "segunda corrida para el mismo tenant se rechaza")
	assert.True(t, tr.Start("tenant-b"), "otro tenant no se ve afectado")

	tr.Stop("tenant-a")
	assert.True(t, tr.Start("tenant-a"), "tras Stop el tenant vuelve a estar libre")
}

func TestTracker_Status(t *testing.T) {
	tr := seed.NewTracker()

	running, elapsed := tr.Status("tenant-a")
	assert.False(t, running)
	assert.Zero(t, elapsed)

	tr.Start("tenant-a")
	running, elapsed = tr.Status("tenant-a")
	assert.True(t, running)
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))

	tr.Stop("tenant-a")
	running, _ = tr.Status("tenant-a")
	assert.False(t, running)
}

func TestTracker_StartConcurrenteSoloUnoGana(t *testing.T) {
	tr := seed.NewTracker()
	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tr.Start("tenant-a") {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins, "exactamente un Start concurrente debe ganar")
}
