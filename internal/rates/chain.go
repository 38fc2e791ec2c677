package rates

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Chain asks its providers in order and returns the first rate found.
type Chain []Provider

func (c Chain) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if len(c) == 0 {
		return decimal.Zero, ErrUnavailable
	}

	var errs []error
	for _, p := range c {
		rate, err := p.Rate(ctx, from, to)
		if err == nil {
			return rate, nil
		}

		log.Warn().Err(err).Str("from", from).Str("to", to).Msg("rate provider failed")
		errs = append(errs, err)
	}

	return decimal.Zero, errors.Join(errs...)
}
