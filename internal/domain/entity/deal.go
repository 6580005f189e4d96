package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etapas del pipeline de ventas. "won" y "lost" son terminales.
const (
	DealStageLead        = "lead"
	DealStageQualified   = "qualified"
	DealStageProposal    = "proposal"
	DealStageNegotiation = "negotiation"
	DealStageWon         = "won"
	DealStageLost        = "lost"
)

// Deal oportunidad de venta ligada a un contacto.
// Invariantes: solo "won" lleva ActualCloseDate; solo "lost" lleva LostReason;
// CreatedAt <= ExpectedCloseDate / ActualCloseDate.
type Deal struct {
	ID                string
	TenantID          string
	ContactID         string
	Name              string
	Value             decimal.Decimal
	Stage             string
	Probability       int // 0-100; 100 si won, 0 si lost
	ExpectedCloseDate *time.Time
	ActualCloseDate   *time.Time
	LostReason        string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsTerminal indica si la etapa es final (won o lost).
func (d Deal) IsTerminal() bool {
	return d.Stage == DealStageWon || d.Stage == DealStageLost
}
