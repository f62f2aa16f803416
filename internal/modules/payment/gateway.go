package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// StubGateway authorizes every charge and mints provider-style identifiers.
// TODO: swap for the Stripe integration once merchant onboarding completes.
type StubGateway struct{}

func NewStubGateway() *StubGateway { return &StubGateway{} }

func (StubGateway) Authorize(_ context.Context, amount float64, _, _ string) (GatewayResult, error) {
	if amount <= 0 {
		return GatewayResult{}, ErrInvalidAmount
	}
	return GatewayResult{
		IntentID:      fmt.Sprintf("pi_%s", uuid.NewString()),
		TransactionID: fmt.Sprintf("txn_%s", uuid.NewString()),
	}, nil
}
