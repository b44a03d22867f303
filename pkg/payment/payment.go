package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

type ChargeRequest struct {
	Name      string
	Email     string
	Amount    decimal.Decimal
	Fund      string
	Recurring bool
}

type Receipt struct {
	TransactionID string
}

// Provider records a donation charge. The site deliberately performs no real
// payment processing; the stub is the only implementation.
type Provider interface {
	Charge(ctx context.Context, req ChargeRequest) (*Receipt, error)
}
