package entity

import "time"

// Estados de un ticket de soporte.
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

// SupportTicket ticket de soporte abierto por un contacto.
type SupportTicket struct {
	ID         string
	TenantID   string
	ContactID  string
	Subject    string
	Body       string
	Priority   string // low, medium, high, urgent
	Status     string
	ResolvedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TicketReply respuesta dentro del hilo de un ticket. FromAgent alterna
// entre contacto y agente empezando por el contacto.
type TicketReply struct {
	ID        string
	TicketID  string
	FromAgent bool
	Body      string
	CreatedAt time.Time
}
