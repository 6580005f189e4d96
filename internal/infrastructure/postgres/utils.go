package postgres

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// IsTransient clasifica errores que vale la pena reintentar: conexión caída
// o inalcanzable (clase 08), conflicto de serialización (40001), deadlock
// (40P01) y timeouts de red. Todo lo demás se propaga de inmediato.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "57P03": // serialization_failure, deadlock_detected, cannot_connect_now
			return true
		}
		if strings.HasPrefix(pgErr.Code, "08") { // connection_exception
			return true
		}
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// El pooler puede cortar la conexión sin un código SQLSTATE.
	msg := err.Error()
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "unexpected EOF") ||
		strings.Contains(msg, "conn closed")
}
