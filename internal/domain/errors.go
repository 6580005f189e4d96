package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrStoreUnavailable: escritura agotó los reintentos ante errores transitorios del store.
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")
	// ErrNoUpstreamData: una fábrica dependiente no encontró filas de su entidad upstream.
	ErrNoUpstreamData = errors.New("sin datos upstream para la entidad dependiente")
	// ErrAllWritesRejected: el store rechazó todas las escrituras de una fábrica.
	ErrAllWritesRejected = errors.New("todas las escrituras fueron rechazadas")
	// ErrVerificationMismatch: el conteo verificado diverge del reportado (posible rollback silencioso).
	ErrVerificationMismatch = errors.New("verificación inconsistente con lo reportado")
	// ErrSeedAlreadyRunning: ya existe una siembra activa para el tenant.
	ErrSeedAlreadyRunning = errors.New("siembra ya en curso para el tenant")
)
