package rates

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const bitcoinKey = "bitcoin"

type entry struct {
	rate    decimal.Decimal
	fetched time.Time
}

// Cache keeps rates and the bitcoin quote for a fixed time. Concurrent
// requests for the same missing value share one upstream request.
type Cache struct {
	provider Provider
	bitcoin  BitcoinSource
	ttl      time.Duration
	now      func() time.Time

	mu    sync.RWMutex
	rates map[Pair]entry
	quote *Quote
	group singleflight.Group
}

func NewCache(provider Provider, bitcoin BitcoinSource, ttl time.Duration) *Cache {
	return &Cache{
		provider: provider,
		bitcoin:  bitcoin,
		ttl:      ttl,
		now:      time.Now,
		rates:    make(map[Pair]entry),
	}
}

func (c *Cache) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	pair := Pair{From: from, To: to}

	c.mu.RLock()
	e, ok := c.rates[pair]
	c.mu.RUnlock()

	if ok && c.now().Sub(e.fetched) < c.ttl {
		return e.rate, nil
	}

	rate, err, _ := c.group.Do(pair.String(), func() (any, error) {
		return c.fetch(ctx, pair)
	})
	if err != nil {
		// A stale rate is better than none
		if ok {
			log.Warn().Err(err).Str("pair", pair.String()).Msg("serving stale rate")
			return e.rate, nil
		}
		return decimal.Zero, err
	}

	return rate.(decimal.Decimal), nil
}

func (c *Cache) fetch(ctx context.Context, pair Pair) (decimal.Decimal, error) {
	rate, err := c.provider.Rate(ctx, pair.From, pair.To)
	if err != nil {
		return decimal.Zero, err
	}

	c.mu.Lock()
	c.rates[pair] = entry{rate: rate, fetched: c.now()}
	c.mu.Unlock()

	return rate, nil
}

func (c *Cache) Bitcoin(ctx context.Context) (Quote, error) {
	c.mu.RLock()
	q := c.quote
	c.mu.RUnlock()

	if q != nil && c.now().Sub(q.UpdatedAt) < c.ttl {
		return *q, nil
	}

	v, err, _ := c.group.Do(bitcoinKey, func() (any, error) {
		return c.fetchBitcoin(ctx)
	})
	if err != nil {
		if q != nil {
			log.Warn().Err(err).Msg("serving stale bitcoin quote")
			return *q, nil
		}
		return Quote{}, err
	}

	return v.(Quote), nil
}

func (c *Cache) fetchBitcoin(ctx context.Context) (Quote, error) {
	q, err := c.bitcoin.Bitcoin(ctx)
	if err != nil {
		return Quote{}, err
	}

	q.UpdatedAt = c.now()
	c.mu.Lock()
	c.quote = &q
	c.mu.Unlock()

	return q, nil
}

// Refresh fetches all pairs and the bitcoin quote concurrently. Failed
// fetches are logged and keep their previous value.
func (c *Cache) Refresh(ctx context.Context, pairs []Pair) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, pair := range pairs {
		g.Go(func() error {
			if _, err := c.fetch(ctx, pair); err != nil {
				log.Error().Err(err).Str("pair", pair.String()).Msg("refreshing rate failed")
			}
			return nil
		})
	}

	if c.bitcoin != nil {
		g.Go(func() error {
			if _, err := c.fetchBitcoin(ctx); err != nil {
				log.Error().Err(err).Msg("refreshing bitcoin quote failed")
			}
			return nil
		})
	}

	_ = g.Wait()
}
