// Package rates provides currency exchange rates and the bitcoin price.
package rates

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	ErrUnsupportedCurrency = errors.New("the currency is not supported")
	ErrUnavailable         = errors.New("the exchange rate is currently not available")
	ErrPairInvalid         = errors.New("currency pairs must have the format FROM:TO")
)

// Provider returns the rate to convert one unit of from into to.
type Provider interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// Pair is a currency pair, e.g. USD:BRL.
type Pair struct {
	From string `json:"from" example:"USD"`
	To   string `json:"to" example:"BRL"`
}

func (p Pair) String() string {
	return fmt.Sprintf("%s:%s", p.From, p.To)
}

// Code validates and normalizes an ISO 4217 currency code.
func Code(s string) (string, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedCurrency, s)
	}

	return unit.String(), nil
}

// ParsePairs parses a whitespace separated list of pairs like "USD:BRL EUR:BRL".
func ParsePairs(s string) ([]Pair, error) {
	var pairs []Pair
	for _, field := range strings.Fields(s) {
		from, to, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("%w, got '%s'", ErrPairInvalid, field)
		}

		pair, err := NewPair(from, to)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}

// NewPair validates both currency codes.
func NewPair(from, to string) (Pair, error) {
	f, err := Code(from)
	if err != nil {
		return Pair{}, err
	}

	t, err := Code(to)
	if err != nil {
		return Pair{}, err
	}

	return Pair{From: f, To: t}, nil
}

// Conversion is the result of converting an amount.
type Conversion struct {
	Pair
	Amount decimal.Decimal `json:"amount" example:"100"`
	Rate   decimal.Decimal `json:"rate" example:"5.4321"`
	Result decimal.Decimal `json:"result" example:"543.21"`
}

// Convert converts the amount with the rate from the provider.
func Convert(ctx context.Context, p Provider, amount decimal.Decimal, from, to string) (Conversion, error) {
	pair, err := NewPair(from, to)
	if err != nil {
		return Conversion{}, err
	}

	rate := decimal.NewFromInt(1)
	if pair.From != pair.To {
		rate, err = p.Rate(ctx, pair.From, pair.To)
		if err != nil {
			return Conversion{}, err
		}
	}

	return Conversion{
		Pair:   pair,
		Amount: amount,
		Rate:   rate,
		Result: amount.Mul(rate).Round(2),
	}, nil
}

func newClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// get performs a GET request and returns the response for status 200.
func get(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status code %d from %s", ErrUnavailable, resp.StatusCode, req.URL.Host)
	}

	return resp, nil
}
