package models

import (
	"time"

	"github.com/shopspring/decimal"

	"churchsite/internal/domain"
)

// Donation is a pledge/log entry. No payment is processed; TransactionID
// is a reference minted by the payment stub.
type Donation struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:100;not null" json:"name"`
	Email         string          `gorm:"size:255;not null" json:"email"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	DonationType  string          `gorm:"size:20;not null;default:'general';index" json:"donation_type"`
	IsRecurring   bool            `gorm:"not null;default:false;index" json:"is_recurring"`
	TransactionID string          `gorm:"size:255" json:"transaction_id"`
	Notes         string          `gorm:"type:text" json:"notes"`
	DonationDate  time.Time       `gorm:"autoCreateTime;index" json:"donation_date"`
}

func (d *Donation) Label() string {
	return d.Name + " - $" + d.Amount.StringFixed(2) + " (" + domain.FundDisplay(d.DonationType) + ")"
}
