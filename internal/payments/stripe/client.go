// Package stripe wraps checkout-session creation behind the payment
// provider interface the payments service depends on.
package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

type Client struct {
	currency   string
	successURL string
	cancelURL  string
}

func NewClient(secretKey, currency, successURL, cancelURL string) *Client {
	stripe.Key = secretKey
	return &Client{
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CreateCheckoutSession creates a hosted checkout session for a booking and
// returns the redirect URL. The amount is in whole currency units; Stripe
// expects the smallest unit, hence the conversion.
func (c *Client) CreateCheckoutSession(ctx context.Context, bookingID string, amount int64) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(c.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Parking Slot Booking - %s", bookingID)),
					},
					UnitAmount: stripe.Int64(amount * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(fmt.Sprintf("%s?bookingId=%s", c.successURL, bookingID)),
		CancelURL:  stripe.String(c.cancelURL),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return sess.URL, nil
}
