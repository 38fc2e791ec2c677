// Package session keeps the in-memory state of a signed in user and
// runs the gamification engine after every change to it.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cashfy/backend/internal/gamification"
	"github.com/cashfy/backend/internal/learning"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/notify"
	"github.com/cashfy/backend/internal/shopping"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	ErrGoalAllocation          = errors.New("the transaction was recorded, but the investment could not be added to the first goal")
	ErrContributionNotPositive = errors.New("contributions to a goal must be larger than zero")
)

// XP sources used as metric labels.
const (
	sourceBadge    = "badge"
	sourceManual   = "manual"
	sourceLearning = "learning"
	sourcePurchase = "purchase"
)

// Store persists the resources of a session.
//
// It is implemented by models.Store.
type Store interface {
	Transactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	Goals(ctx context.Context, userID uuid.UUID) ([]models.Goal, error)
	IncomeSources(ctx context.Context, userID uuid.UUID) ([]models.IncomeSource, error)
	Projects(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
	Create(ctx context.Context, value any) error
	Update(ctx context.Context, value any) error
	Delete(ctx context.Context, value any) error
	Profile(ctx context.Context, userID uuid.UUID) (models.Profile, error)
	SaveProfile(ctx context.Context, profile *models.Profile) error
	Metadata(ctx context.Context, userID uuid.UUID) (models.Metadata, error)
	SetMetadata(ctx context.Context, userID uuid.UUID, key string, value any) error
}

// Session is the state of one user.
//
// All methods are safe for concurrent use. A mutation and the evaluation
// that follows it complete before the next mutation starts.
type Session struct {
	mu      sync.Mutex
	userID  uuid.UUID
	store   Store
	sink    notify.Sink
	lessons learning.Catalog
	now     func() time.Time

	transactions  []models.Transaction
	goals         []models.Goal
	incomeSources []models.IncomeSource
	projects      []models.Project

	profile      models.Profile
	state        gamification.State
	feed         notify.Feed
	celebrations []gamification.Badge
	progress     *learning.Progress
	shopping     shopping.List
}

type Option func(*Session)

// WithSink forwards all gamification events to the sink.
func WithSink(sink notify.Sink) Option {
	return func(s *Session) {
		s.sink = sink
	}
}

// WithClock sets the function used to get the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New returns an empty session. Call Load before using it.
func New(userID uuid.UUID, store Store, lessons learning.Catalog, opts ...Option) *Session {
	s := &Session{
		userID:   userID,
		store:    store,
		lessons:  lessons,
		now:      time.Now,
		state:    gamification.NewState(),
		progress: learning.NewProgress(nil),
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// UserID returns the id of the user the session belongs to.
func (s *Session) UserID() uuid.UUID {
	return s.userID
}

// Load reads the resources and the progress of the user and runs the
// first evaluation. Badges unlocked by it are not announced.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		transactions  []models.Transaction
		goals         []models.Goal
		incomeSources []models.IncomeSource
		projects      []models.Project
		profile       models.Profile
		metadata      models.Metadata
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		transactions, err = s.store.Transactions(gctx, s.userID)
		return
	})
	g.Go(func() (err error) {
		goals, err = s.store.Goals(gctx, s.userID)
		return
	})
	g.Go(func() (err error) {
		incomeSources, err = s.store.IncomeSources(gctx, s.userID)
		return
	})
	g.Go(func() (err error) {
		projects, err = s.store.Projects(gctx, s.userID)
		return
	})
	g.Go(func() (err error) {
		profile, err = s.store.Profile(gctx, s.userID)
		return
	})
	g.Go(func() (err error) {
		metadata, err = s.store.Metadata(gctx, s.userID)
		return
	})

	if err := g.Wait(); err != nil {
		return err
	}

	var (
		learningXP int
		completed  []string
	)

	if err := metadata.Get(models.MetadataLearningXP, &learningXP); err != nil {
		log.Warn().Err(err).Str("user", s.userID.String()).Msg("ignoring invalid learning XP")
	}

	if err := metadata.Get(models.MetadataCompletedLessons, &completed); err != nil {
		log.Warn().Err(err).Str("user", s.userID.String()).Msg("ignoring invalid completed lessons")
	}

	s.transactions = transactions
	s.goals = goals
	s.incomeSources = incomeSources
	s.projects = projects
	s.profile = profile
	s.state = gamification.Restore(profile.UnlockedBadges, profile.TotalXP, learningXP)
	s.progress = learning.NewProgress(completed)

	s.refresh(ctx, s.state, true)

	log.Debug().Str("user", s.userID.String()).Int("transactions", len(transactions)).Int("goals", len(goals)).Int("xp", s.state.TotalXP).Msg("session loaded")
	return nil
}

func (s *Session) snapshot() gamification.Snapshot {
	return gamification.Snapshot{
		Transactions: s.transactions,
		Goals:        s.goals,
		LearningXP:   s.state.LearningXP,
	}
}

// refresh evaluates the current snapshot, updates the goal alerts if
// goals changed and persists the profile if it differs from before.
func (s *Session) refresh(ctx context.Context, before gamification.State, goalsChanged bool) {
	next, events := gamification.Evaluate(s.snapshot(), s.state, s.now())
	s.state = next
	s.apply(ctx, events, sourceBadge)

	if goalsChanged {
		s.feed.MergeAlerts(notify.GoalAlerts(s.goals))
	}

	s.persist(ctx, before)
}

// apply executes the effects of gamification events.
func (s *Session) apply(ctx context.Context, events []gamification.Event, source string) {
	for _, e := range events {
		switch e.Kind {
		case gamification.EventXP:
			if e.XP > 0 {
				xpAwarded.WithLabelValues(source).Add(float64(e.XP))
			}
		case gamification.EventCelebration:
			s.celebrations = append(s.celebrations, *e.Badge)
			badgesUnlocked.WithLabelValues(string(e.Badge.ID)).Inc()
			log.Info().Str("user", s.userID.String()).Str("badge", string(e.Badge.ID)).Msg("badge unlocked")
		case gamification.EventNotification:
			s.feed.Add(e.Message)
		}

		if s.sink == nil {
			continue
		}

		err := s.sink.Publish(ctx, notify.NewMessage(s.userID, e, s.now()))
		if err != nil {
			log.Error().Err(err).Str("user", s.userID.String()).Str("kind", string(e.Kind)).Msg("publishing event failed")
		}
	}
}

// persist saves the profile if badges or XP changed since before.
//
// A failed save is logged. The in-memory state stays as it is and
// is saved with the next change.
func (s *Session) persist(ctx context.Context, before gamification.State) {
	if before.TotalXP == s.state.TotalXP &&
		gamification.BadgesEqual(before.Badges, s.state.Badges) &&
		s.profile.ID != uuid.Nil {
		return
	}

	profile := s.profile
	profile.UserID = s.userID
	profile.TotalXP = s.state.TotalXP
	profile.UnlockedBadges = s.state.Unlocked()

	err := s.store.SaveProfile(ctx, &profile)
	if err != nil {
		log.Error().Err(err).Str("user", s.userID.String()).Msg("saving gamification profile failed")
		return
	}

	s.profile = profile
}

// setMetadata stores a metadata value, failures are logged.
func (s *Session) setMetadata(ctx context.Context, key string, value any) {
	err := s.store.SetMetadata(ctx, s.userID, key, value)
	if err != nil {
		log.Error().Err(err).Str("user", s.userID.String()).Str("key", key).Msg("saving user metadata failed")
	}
}
