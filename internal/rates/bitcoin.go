package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the bitcoin price in reais.
type Quote struct {
	Price     decimal.Decimal `json:"price" example:"352310.12"`
	Change24h decimal.Decimal `json:"change24h" example:"-1.84"`
	UpdatedAt time.Time       `json:"updatedAt" example:"2024-07-03T12:00:00Z"`
}

// BitcoinSource returns the current bitcoin quote.
type BitcoinSource interface {
	Bitcoin(ctx context.Context) (Quote, error)
}

// CoinGecko fetches the bitcoin price from the CoinGecko API.
type CoinGecko struct {
	url    string
	client *http.Client
	now    func() time.Time
}

func NewCoinGecko(baseURL string) *CoinGecko {
	return &CoinGecko{url: strings.TrimSuffix(baseURL, "/"), client: newClient(), now: time.Now}
}

func (c *CoinGecko) Bitcoin(ctx context.Context) (Quote, error) {
	resp, err := get(ctx, c.client, c.url+"/simple/price?ids=bitcoin&vs_currencies=brl&include_24hr_change=true")
	if err != nil {
		return Quote{}, err
	}
	defer resp.Body.Close()

	var body map[string]struct {
		BRL       decimal.Decimal `json:"brl"`
		Change24h decimal.Decimal `json:"brl_24h_change"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Quote{}, fmt.Errorf("%w: failed to decode response: %w", ErrUnavailable, err)
	}

	btc, ok := body["bitcoin"]
	if !ok || !btc.BRL.IsPositive() {
		return Quote{}, fmt.Errorf("%w: no bitcoin price in response", ErrUnavailable)
	}

	return Quote{
		Price:     btc.BRL,
		Change24h: btc.Change24h.Round(2),
		UpdatedAt: c.now().UTC(),
	}, nil
}
