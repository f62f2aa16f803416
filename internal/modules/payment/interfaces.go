package payment

import "context"

// Gateway is the external card processor. The stub implementation stands in
// until a real provider is integrated.
type Gateway interface {
	Authorize(ctx context.Context, amount float64, currency, method string) (GatewayResult, error)
}

type GatewayResult struct {
	IntentID      string
	TransactionID string
}
