package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/seed"
	"github.com/tu-usuario/crm-pro/internal/domain"
)

// SeedHandler maneja la superficie admin del motor de datos demo.
type SeedHandler struct {
	orch                 *seed.Orchestrator
	defaultComprehensive bool
}

// NewSeedHandler construye el handler.
func NewSeedHandler(orch *seed.Orchestrator, defaultComprehensive bool) *SeedHandler {
	return &SeedHandler{orch: orch, defaultComprehensive: defaultComprehensive}
}

// Run POST /api/admin/seed?wait=true
// Por defecto arranca la corrida en segundo plano y responde de inmediato;
// con wait=true espera el pipeline completo y devuelve el resumen. Una
// corrida activa para el mismo tenant se rechaza con 409, nunca se encola.
func (h *SeedHandler) Run(c *fiber.Ctx) error {
	var in dto.SeedRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}

	opts := seed.Options{
		TenantID:      in.TenantID,
		Comprehensive: h.defaultComprehensive,
	}
	if in.Comprehensive != nil {
		opts.Comprehensive = *in.Comprehensive
	}

	if c.QueryBool("wait") {
		summary, err := h.orch.Run(c.Context(), opts)
		if err != nil {
			if errors.Is(err, domain.ErrSeedAlreadyRunning) {
				_, elapsed := h.orch.Status(opts)
				return c.Status(fiber.StatusConflict).JSON(dto.SeedAlreadyRunningResponse{
					AlreadyRunning: true,
					ElapsedMs:      elapsed.Milliseconds(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SEED_FAILED", Message: err.Error()})
		}
		return c.JSON(summary)
	}

	if err := h.orch.RunBackground(opts); err != nil {
		if errors.Is(err, domain.ErrSeedAlreadyRunning) {
			_, elapsed := h.orch.Status(opts)
			return c.Status(fiber.StatusConflict).JSON(dto.SeedAlreadyRunningResponse{
				AlreadyRunning: true,
				ElapsedMs:      elapsed.Milliseconds(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SEED_FAILED", Message: err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.SeedStartedResponse{
		Started: true,
		Message: "siembra iniciada en segundo plano; consultar /api/admin/seed/status",
	})
}

// Status GET /api/admin/seed/status
// Informa si hay una corrida activa y los conteos persistidos actuales; con
// running=false y conteos en cero el llamador detecta una corrida fallida.
func (h *SeedHandler) Status(c *fiber.Ctx) error {
	opts := seed.Options{TenantID: c.Query("tenant_id")}
	running, elapsed := h.orch.Status(opts)

	counts, err := h.orch.CurrentCounts(c.Context(), opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.SeedStatusResponse{
		Running:   running,
		ElapsedMs: elapsed.Milliseconds(),
		Counts:    make(map[string]int, len(counts)),
	}
	for kind, n := range counts {
		out.Counts[string(kind)] = n
	}
	return c.JSON(out)
}
