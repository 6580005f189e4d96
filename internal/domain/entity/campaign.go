package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una campaña de marketing.
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusSent      = "sent"
	CampaignStatusCompleted = "completed"
)

// Campaign campaña de marketing con métricas de embudo.
// Invariantes: Recipients >= Sent >= Delivered >= Opened >= Clicked;
// SentAt presente si y solo si el estado es sent o completed.
type Campaign struct {
	ID         string
	TenantID   string
	Name       string
	Channel    string // email, social, ads, webinar
	Status     string
	Budget     decimal.Decimal
	Recipients int
	Sent       int
	Delivered  int
	Opened     int
	Clicked    int
	SentAt     *time.Time
	StartsAt   time.Time
	EndsAt     time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CampaignMember contacto inscrito en una campaña.
type CampaignMember struct {
	ID         string
	CampaignID string
	ContactID  string
	Status     string // subscribed, unsubscribed, bounced
	JoinedAt   time.Time
}
