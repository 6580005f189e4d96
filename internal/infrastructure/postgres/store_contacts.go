package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CreateContact persiste un nuevo contacto.
func (s *SeedStore) CreateContact(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, tenant_id, name, email, phone, company, source, source_id, stage, status,
			address, city, state, postal_code, country, lead_score, last_contacted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := s.q.Exec(ctx, query,
		c.ID, c.TenantID, c.Name, c.Email, c.Phone, c.Company, c.Source, c.SourceID, c.Stage, c.Status,
		c.Address, c.City, c.State, c.PostalCode, c.Country, c.LeadScore, c.LastContactedAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// ListContacts lista todos los contactos del tenant.
func (s *SeedStore) ListContacts(ctx context.Context, tenantID string) ([]entity.Contact, error) {
	query := `
		SELECT id, tenant_id, name, email, phone, company, source, COALESCE(source_id, ''), stage, status,
			address, city, state, postal_code, country, lead_score, last_contacted_at, created_at, updated_at
		FROM contacts WHERE tenant_id = $1 ORDER BY created_at`
	rows, err := s.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var list []entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(
			&c.ID, &c.TenantID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Source, &c.SourceID, &c.Stage, &c.Status,
			&c.Address, &c.City, &c.State, &c.PostalCode, &c.Country, &c.LeadScore, &c.LastContactedAt, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// LinkContactSource enlaza un contacto con su origen materializado.
func (s *SeedStore) LinkContactSource(ctx context.Context, contactID, sourceID string) error {
	tag, err := s.q.Exec(ctx, `UPDATE contacts SET source_id = $1, updated_at = NOW() WHERE id = $2`, sourceID, contactID)
	if err != nil {
		return fmt.Errorf("link contact source: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ClearContactSources desengancha todos los contactos del tenant de sus
// orígenes, previo al borrado de lead_sources.
func (s *SeedStore) ClearContactSources(ctx context.Context, tenantID string) error {
	_, err := s.q.Exec(ctx, `UPDATE contacts SET source_id = NULL WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return fmt.Errorf("clear contact sources: %w", err)
	}
	return nil
}
