package entity

import "time"

// Estados de una tarea.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Task tarea asignada al principal, opcionalmente ligada a un contacto.
// CompletedAt presente si y solo si el estado es completed.
type Task struct {
	ID           string
	TenantID     string
	ContactID    string
	AssignedToID string
	Title        string
	Description  string
	Priority     string // low, medium, high
	Status       string
	DueDate      time.Time
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
