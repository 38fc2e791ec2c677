package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Frankfurter fetches rates from a Frankfurter API instance.
type Frankfurter struct {
	url    string
	client *http.Client
}

func NewFrankfurter(baseURL string) *Frankfurter {
	return &Frankfurter{url: strings.TrimSuffix(baseURL, "/"), client: newClient()}
}

type frankfurterResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

func (f *Frankfurter) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	query := url.Values{"from": {from}, "to": {to}}
	resp, err := get(ctx, f.client, fmt.Sprintf("%s/latest?%s", f.url, query.Encode()))
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	var body frankfurterResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to decode response: %w", ErrUnavailable, err)
	}

	rate, ok := body.Rates[to]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: no rate for %s in response", ErrUnsupportedCurrency, to)
	}

	return rate, nil
}
