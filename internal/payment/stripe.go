// internal/payment/stripe.go
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const defaultStripeBaseURL = "https://api.stripe.com"

// StripeClient creates checkout sessions through Stripe's REST API.
// BaseURL and HTTPClient are exported so tests can point the client at a
// local test server.
type StripeClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewStripeClient constructs a client with the live Stripe endpoint.
func NewStripeClient(apiKey string) *StripeClient {
	return &StripeClient{
		APIKey:     apiKey,
		BaseURL:    defaultStripeBaseURL,
		HTTPClient: http.DefaultClient,
	}
}

// CreateSession creates a one-time payment checkout session for a single
// package line item.
func (c *StripeClient) CreateSession(ctx context.Context, params SessionParams) (Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", "usd")
	form.Set("line_items[0][price_data][product_data][name]", params.PackageName+" Package")
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(toCents(params.Price), 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("customer_email", params.CustomerEmail)
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("client_reference_id", uuid.NewString())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return Session{}, fmt.Errorf("build checkout request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("create checkout session: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Session{}, fmt.Errorf("read checkout response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Session{}, providerError(resp.StatusCode, body)
	}

	var sess Session
	if err := json.Unmarshal(body, &sess); err != nil {
		return Session{}, fmt.Errorf("decode checkout response: %w", err)
	}
	return sess, nil
}

// toCents converts a price in major units to the minor unit Stripe
// bills in, rounding to the nearest cent.
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func providerError(status int, body []byte) error {
	var e struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return fmt.Errorf("stripe: %s (status %d)", e.Error.Message, status)
	}
	return fmt.Errorf("stripe: unexpected status %d", status)
}
