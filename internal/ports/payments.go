package ports

import "context"

// ChargeClient requests an unconfirmed charge intent from the external payment
// processor. Amounts are in minor units (cents); confirmation and capture
// happen client-side with the returned secret.
type ChargeClient interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error)
}
