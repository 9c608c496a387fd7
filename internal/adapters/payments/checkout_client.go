package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/platform/obs"
	"stylecloset-service/internal/ports"
)

const defaultTimeout = 15 * time.Second

// CheckoutClient implements PaymentProvider against a Stripe-style
// payments REST API (form-encoded requests, bearer secret key). The
// secret key is injected at construction and validated at call time.
type CheckoutClient struct {
	session    *http.Client
	secretKey  string
	baseURL    string
	successURL string
	cancelURL  string
}

func NewCheckoutClient(secretKey, baseURL, successURL, cancelURL string) *CheckoutClient {
	if baseURL == "" {
		baseURL = "https://api.stripe.com"
	}

	return &CheckoutClient{
		session:    &http.Client{Timeout: defaultTimeout},
		secretKey:  secretKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCheckoutSession registers a one-off payment for the order and
// returns the provider's session reference.
func (c *CheckoutClient) CreateCheckoutSession(
	ctx context.Context,
	order domain.Order,
) (_ ports.CheckoutSession, err error) {
	defer obs.Time(ctx, "payments.CreateCheckoutSession")(&err)

	if strings.TrimSpace(c.secretKey) == "" {
		return ports.CheckoutSession{}, fmt.Errorf("checkout client: secret key is empty: %w", domain.ErrConfiguration)
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("client_reference_id", order.ID)
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", order.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.Itoa(order.AmountCents))
	form.Set("line_items[0][price_data][product_data][name]", productName(order))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return ports.CheckoutSession{}, fmt.Errorf("create session request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.session.Do(req)
	if err != nil {
		return ports.CheckoutSession{}, fmt.Errorf("send session request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ports.CheckoutSession{}, fmt.Errorf("checkout client: status %d: %w",
			resp.StatusCode, domain.ErrConfiguration)
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return ports.CheckoutSession{}, fmt.Errorf("checkout client: status %d: %s: %w",
			resp.StatusCode, strings.TrimSpace(string(b)), domain.ErrUpstream)
	}

	var decoded sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.CheckoutSession{}, fmt.Errorf("decode session response: %w", err)
	}
	if decoded.ID == "" {
		return ports.CheckoutSession{}, fmt.Errorf("checkout client: response missing session id: %w", domain.ErrUpstream)
	}

	return ports.CheckoutSession{ID: decoded.ID, URL: decoded.URL}, nil
}

func productName(order domain.Order) string {
	if order.Description != "" {
		return order.Description
	}
	return "Style Closet order " + order.ID
}
