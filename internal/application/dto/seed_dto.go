package dto

// SeedRequest parámetros opcionales de POST /api/admin/seed.
type SeedRequest struct {
	TenantID      string `json:"tenant_id"`
	Comprehensive *bool  `json:"comprehensive"` // nil usa el valor de configuración
}

// SeedStartedResponse respuesta cuando la corrida arranca en segundo plano.
type SeedStartedResponse struct {
	Started bool   `json:"started"`
	Message string `json:"message"`
}

// SeedAlreadyRunningResponse respuesta cuando ya hay una corrida activa para
// el tenant: se rechaza, no se encola.
type SeedAlreadyRunningResponse struct {
	AlreadyRunning bool  `json:"already_running"`
	ElapsedMs      int64 `json:"elapsed_ms"`
}

// SeedStatusResponse respuesta de GET /api/admin/seed/status.
type SeedStatusResponse struct {
	Running   bool           `json:"running"`
	ElapsedMs int64          `json:"elapsed_ms,omitempty"`
	Counts    map[string]int `json:"counts,omitempty"`
}
