package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Refresher refreshes a cache on a cron schedule.
type Refresher struct {
	cron  *cron.Cron
	cache *Cache
	pairs []Pair
}

// NewRefresher schedules the refresh, e.g. with "@every 1m".
func NewRefresher(cache *Cache, pairs []Pair, schedule string) (*Refresher, error) {
	r := &Refresher{
		cron:  cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		cache: cache,
		pairs: pairs,
	}

	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule '%s': %w", schedule, err)
	}

	return r, nil
}

func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	r.cache.Refresh(ctx, r.pairs)
	log.Debug().Int("pairs", len(r.pairs)).Dur("duration", time.Since(start)).Msg("rates refreshed")
}

// Start refreshes once and then runs the schedule in the background.
func (r *Refresher) Start() {
	go r.run()
	r.cron.Start()
}

// Stop stops the schedule and waits for a running refresh.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}
