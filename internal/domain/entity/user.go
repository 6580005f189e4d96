package entity

import "time"

// User principal administrador del tenant. Es un singleton entre corridas:
// el reset nunca lo elimina y su TenantID se repara si el tenant fue recreado.
type User struct {
	ID           string
	TenantID     string
	Email        string
	Name         string
	PasswordHash string
	Role         string // owner, admin, member
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
