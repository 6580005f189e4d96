package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// GetTenantBySubdomain obtiene un tenant por subdominio. Devuelve nil si no existe.
func (s *SeedStore) GetTenantBySubdomain(ctx context.Context, subdomain string) (*entity.Tenant, error) {
	query := `
		SELECT id, name, subdomain, plan, status, email, phone, city, state, country, industry, created_at, updated_at
		FROM tenants WHERE subdomain = $1`
	var t entity.Tenant
	err := s.q.QueryRow(ctx, query, subdomain).Scan(
		&t.ID, &t.Name, &t.Subdomain, &t.Plan, &t.Status, &t.Email, &t.Phone,
		&t.City, &t.State, &t.Country, &t.Industry, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// CreateTenant persiste un nuevo tenant.
func (s *SeedStore) CreateTenant(ctx context.Context, t *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, subdomain, plan, status, email, phone, city, state, country, industry, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := s.q.Exec(ctx, query,
		t.ID, t.Name, t.Subdomain, t.Plan, t.Status, t.Email, t.Phone,
		t.City, t.State, t.Country, t.Industry, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetUserByEmail obtiene un usuario por email. Devuelve nil si no existe.
func (s *SeedStore) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, tenant_id, email, name, password_hash, role, created_at, updated_at
		FROM users WHERE email = $1`
	var u entity.User
	err := s.q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.TenantID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// CreateUser persiste un nuevo usuario.
func (s *SeedStore) CreateUser(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, tenant_id, email, name, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.q.Exec(ctx, query,
		u.ID, u.TenantID, u.Email, u.Name, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// UpdateUserTenant repara la referencia de tenant de un usuario.
func (s *SeedStore) UpdateUserTenant(ctx context.Context, userID, tenantID string) error {
	tag, err := s.q.Exec(ctx, `UPDATE users SET tenant_id = $1, updated_at = NOW() WHERE id = $2`, tenantID, userID)
	if err != nil {
		return fmt.Errorf("update user tenant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
