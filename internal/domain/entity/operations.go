package entity

import "time"

// AuditLog registro de auditoría de una acción sobre una entidad.
type AuditLog struct {
	ID         string
	TenantID   string
	ActorID    string
	Action     string // create, update, delete, login
	EntityType string
	EntityID   string
	Detail     string
	CreatedAt  time.Time
}

// AutomationRun ejecución de una regla de automatización.
type AutomationRun struct {
	ID         string
	TenantID   string
	RuleName   string
	Trigger    string // deal_stage_changed, contact_created, task_overdue
	Status     string // success, failed, skipped
	DurationMs int
	CreatedAt  time.Time
}

// Notification notificación dirigida al principal del tenant.
type Notification struct {
	ID        string
	TenantID  string
	UserID    string
	Kind      string // deal_won, task_due, ticket_opened, campaign_done
	Title     string
	Body      string
	ReadAt    *time.Time
	CreatedAt time.Time
}
