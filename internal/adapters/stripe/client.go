package stripe

import (
	"context"
	"fmt"

	stripesdk "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// ChargeClient requests card-payable PaymentIntents from Stripe. Only intent
// creation happens server-side; confirmation runs in the client with the
// returned secret.
type ChargeClient struct {
	api *client.API
}

func NewChargeClient(apiKey string) *ChargeClient {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &ChargeClient{api: api}
}

func (c *ChargeClient) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	params := &stripesdk.PaymentIntentParams{
		Params:             stripesdk.Params{Context: ctx},
		Amount:             stripesdk.Int64(amountMinor),
		Currency:           stripesdk.String(currency),
		PaymentMethodTypes: stripesdk.StringSlice([]string{"card"}),
	}
	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
