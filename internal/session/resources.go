package session

import (
	"context"
	"fmt"

	"github.com/cashfy/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type entity interface {
	GetID() uuid.UUID
}

func notFound(resource string) error {
	return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, resource)
}

func find[T entity](list []T, id uuid.UUID, resource string) (T, error) {
	i := slices.IndexFunc(list, func(e T) bool { return e.GetID() == id })
	if i < 0 {
		var zero T
		return zero, notFound(resource)
	}

	return list[i], nil
}

// create inserts value at index i of a copy of list and persists it. The
// copy with the persisted value is returned. If the store fails, list
// is returned unchanged.
func create[T any](ctx context.Context, store Store, list []T, i int, value T) ([]T, T, error) {
	next := slices.Insert(slices.Clone(list), i, value)
	if err := store.Create(ctx, &next[i]); err != nil {
		return list, value, err
	}

	return next, next[i], nil
}

// update replaces the element with the id of value and persists it.
func update[T entity](ctx context.Context, store Store, list []T, value T, resource string) ([]T, T, error) {
	i := slices.IndexFunc(list, func(e T) bool { return e.GetID() == value.GetID() })
	if i < 0 {
		return list, value, notFound(resource)
	}

	next := slices.Clone(list)
	next[i] = value
	if err := store.Update(ctx, &next[i]); err != nil {
		return list, value, err
	}

	return next, next[i], nil
}

// remove deletes the element with the id.
func remove[T entity](ctx context.Context, store Store, list []T, id uuid.UUID, resource string) ([]T, error) {
	i := slices.IndexFunc(list, func(e T) bool { return e.GetID() == id })
	if i < 0 {
		return list, notFound(resource)
	}

	value := list[i]
	if err := store.Delete(ctx, &value); err != nil {
		return list, err
	}

	return slices.Delete(slices.Clone(list), i, i+1), nil
}

// Transactions returns the transactions, newest first.
func (s *Session) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.transactions)
}

// Transaction returns a single transaction.
func (s *Session) Transaction(id uuid.UUID) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return find(s.transactions, id, "transaction")
}

// AddTransaction records a transaction.
//
// The amount of an investment is added to the first goal. If there is
// no goal, it is not allocated. If updating the goal fails, the goal
// keeps its amount and the recorded transaction is returned together
// with ErrGoalAllocation.
func (s *Session) AddTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.state
	t, goalsChanged, err := s.addTransaction(ctx, t)
	if t.ID == uuid.Nil {
		return t, err
	}

	s.refresh(ctx, before, goalsChanged)
	return t, err
}

func (s *Session) addTransaction(ctx context.Context, t models.Transaction) (models.Transaction, bool, error) {
	t.UserID = s.userID
	t.Normalize()
	if err := t.Validate(); err != nil {
		return models.Transaction{}, false, err
	}

	// Keep the list ordered by date, newest first
	i := slices.IndexFunc(s.transactions, func(e models.Transaction) bool { return !e.Date.After(t.Date) })
	if i < 0 {
		i = len(s.transactions)
	}

	transactions, t, err := create(ctx, s.store, s.transactions, i, t)
	if err != nil {
		return models.Transaction{}, false, err
	}
	s.transactions = transactions

	if t.Type != models.TransactionTypeInvestment || len(s.goals) == 0 {
		return t, false, nil
	}

	goal := s.goals[0]
	goal.CurrentAmount = goal.CurrentAmount.Add(t.Amount)
	goals, _, err := update(ctx, s.store, s.goals, goal, "goal")
	if err != nil {
		return t, false, fmt.Errorf("%w: %w", ErrGoalAllocation, err)
	}
	s.goals = goals

	return t, true, nil
}

// UpdateTransaction replaces an existing transaction.
func (s *Session) UpdateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := find(s.transactions, t.ID, "transaction")
	if err != nil {
		return models.Transaction{}, err
	}

	t.UserID = s.userID
	t.CreatedAt = existing.CreatedAt
	t.Normalize()
	if err := t.Validate(); err != nil {
		return models.Transaction{}, err
	}

	before := s.state
	transactions, t, err := update(ctx, s.store, s.transactions, t, "transaction")
	if err != nil {
		return models.Transaction{}, err
	}
	s.transactions = transactions

	// The date may have changed
	slices.SortStableFunc(s.transactions, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	s.refresh(ctx, before, false)
	return t, nil
}

// RemoveTransaction deletes a transaction.
func (s *Session) RemoveTransaction(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.state
	transactions, err := remove(ctx, s.store, s.transactions, id, "transaction")
	if err != nil {
		return err
	}
	s.transactions = transactions

	s.refresh(ctx, before, false)
	return nil
}

// Goals returns the goals in creation order.
func (s *Session) Goals() []models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.goals)
}

// Goal returns a single goal.
func (s *Session) Goal(id uuid.UUID) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return find(s.goals, id, "goal")
}

// AddGoal creates a goal. It is appended to the goals.
func (s *Session) AddGoal(ctx context.Context, g models.Goal) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g.UserID = s.userID
	g.Normalize()
	if err := g.Validate(); err != nil {
		return models.Goal{}, err
	}

	before := s.state
	goals, g, err := create(ctx, s.store, s.goals, len(s.goals), g)
	if err != nil {
		return models.Goal{}, err
	}
	s.goals = goals

	s.refresh(ctx, before, true)
	return g, nil
}

// UpdateGoal replaces an existing goal.
func (s *Session) UpdateGoal(ctx context.Context, g models.Goal) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := find(s.goals, g.ID, "goal")
	if err != nil {
		return models.Goal{}, err
	}

	g.UserID = s.userID
	g.CreatedAt = existing.CreatedAt
	g.Normalize()
	if err := g.Validate(); err != nil {
		return models.Goal{}, err
	}

	return s.updateGoal(ctx, g)
}

func (s *Session) updateGoal(ctx context.Context, g models.Goal) (models.Goal, error) {
	before := s.state
	goals, g, err := update(ctx, s.store, s.goals, g, "goal")
	if err != nil {
		return models.Goal{}, err
	}
	s.goals = goals

	s.refresh(ctx, before, true)
	return g, nil
}

// ContributeToGoal adds the amount to the current amount of a goal.
func (s *Session) ContributeToGoal(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !amount.IsPositive() {
		return models.Goal{}, ErrContributionNotPositive
	}

	g, err := find(s.goals, id, "goal")
	if err != nil {
		return models.Goal{}, err
	}

	g.CurrentAmount = g.CurrentAmount.Add(amount)
	return s.updateGoal(ctx, g)
}

// RemoveGoal deletes a goal.
func (s *Session) RemoveGoal(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.state
	goals, err := remove(ctx, s.store, s.goals, id, "goal")
	if err != nil {
		return err
	}
	s.goals = goals

	s.refresh(ctx, before, true)
	return nil
}

// IncomeSources returns the income sources in creation order.
func (s *Session) IncomeSources() []models.IncomeSource {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.incomeSources)
}

// IncomeSource returns a single income source.
func (s *Session) IncomeSource(id uuid.UUID) (models.IncomeSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return find(s.incomeSources, id, "income source")
}

// AddIncomeSource creates an income source.
func (s *Session) AddIncomeSource(ctx context.Context, i models.IncomeSource) (models.IncomeSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i.UserID = s.userID
	i.Normalize()
	if err := i.Validate(); err != nil {
		return models.IncomeSource{}, err
	}

	sources, i, err := create(ctx, s.store, s.incomeSources, len(s.incomeSources), i)
	if err != nil {
		return models.IncomeSource{}, err
	}
	s.incomeSources = sources

	return i, nil
}

// UpdateIncomeSource replaces an existing income source.
func (s *Session) UpdateIncomeSource(ctx context.Context, i models.IncomeSource) (models.IncomeSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := find(s.incomeSources, i.ID, "income source")
	if err != nil {
		return models.IncomeSource{}, err
	}

	i.UserID = s.userID
	i.CreatedAt = existing.CreatedAt
	i.Normalize()
	if err := i.Validate(); err != nil {
		return models.IncomeSource{}, err
	}

	sources, i, err := update(ctx, s.store, s.incomeSources, i, "income source")
	if err != nil {
		return models.IncomeSource{}, err
	}
	s.incomeSources = sources

	return i, nil
}

// RemoveIncomeSource deletes an income source.
func (s *Session) RemoveIncomeSource(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sources, err := remove(ctx, s.store, s.incomeSources, id, "income source")
	if err != nil {
		return err
	}
	s.incomeSources = sources

	return nil
}

// Projects returns the projects in creation order.
func (s *Session) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.projects)
}

// AddProject creates a project.
func (s *Session) AddProject(ctx context.Context, p models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.UserID = s.userID
	p.Normalize()
	if err := p.Validate(); err != nil {
		return models.Project{}, err
	}

	projects, p, err := create(ctx, s.store, s.projects, len(s.projects), p)
	if err != nil {
		return models.Project{}, err
	}
	s.projects = projects

	return p, nil
}
