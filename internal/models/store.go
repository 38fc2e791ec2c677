package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store implements the persistence of a user session on top of DB.
type Store struct{}

func (Store) db(ctx context.Context) *gorm.DB {
	return DB.WithContext(ctx)
}

// Transactions returns the transactions of the user, newest first.
func (s Store) Transactions(ctx context.Context, userID uuid.UUID) ([]Transaction, error) {
	var transactions []Transaction
	err := s.db(ctx).
		Where(&Transaction{UserID: userID}).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error

	return transactions, err
}

// Goals returns the goals of the user in creation order.
func (s Store) Goals(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	var goals []Goal
	err := s.db(ctx).
		Where(&Goal{UserID: userID}).
		Order("created_at ASC").
		Find(&goals).Error

	return goals, err
}

// IncomeSources returns the income sources of the user in creation order.
func (s Store) IncomeSources(ctx context.Context, userID uuid.UUID) ([]IncomeSource, error) {
	var sources []IncomeSource
	err := s.db(ctx).
		Where(&IncomeSource{UserID: userID}).
		Order("created_at ASC").
		Find(&sources).Error

	return sources, err
}

// Projects returns the projects of the user in creation order.
func (s Store) Projects(ctx context.Context, userID uuid.UUID) ([]Project, error) {
	var projects []Project
	err := s.db(ctx).
		Where(&Project{UserID: userID}).
		Order("created_at ASC").
		Find(&projects).Error

	return projects, err
}

// Create persists a new resource. The resource is updated
// with the values assigned by the database.
func (s Store) Create(ctx context.Context, value any) error {
	return s.db(ctx).Create(value).Error
}

// Update writes all fields of an existing resource.
func (s Store) Update(ctx context.Context, value any) error {
	res := s.db(ctx).Model(value).Select("*").Omit("CreatedAt").Updates(value)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w %s matching your query", ErrResourceNotFound, res.Statement.Table)
	}

	return nil
}

// Delete removes an existing resource.
func (s Store) Delete(ctx context.Context, value any) error {
	res := s.db(ctx).Delete(value)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w %s matching your query", ErrResourceNotFound, res.Statement.Table)
	}

	return nil
}

// Profile returns the gamification profile of the user.
//
// If the user has no profile yet, an empty one is returned.
func (s Store) Profile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	var profile Profile
	err := s.db(ctx).Where(&Profile{UserID: userID}).First(&profile).Error
	if errors.Is(err, ErrResourceNotFound) {
		return Profile{UserID: userID, UnlockedBadges: map[string]time.Time{}}, nil
	}

	return profile, err
}

// SaveProfile creates or updates the profile of the user.
func (s Store) SaveProfile(ctx context.Context, profile *Profile) error {
	if profile.ID == uuid.Nil {
		return s.Create(ctx, profile)
	}

	return s.Update(ctx, profile)
}

// Metadata returns the metadata of the user.
func (s Store) Metadata(ctx context.Context, userID uuid.UUID) (Metadata, error) {
	var user User
	err := s.db(ctx).First(&user, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}

	if user.Metadata == nil {
		return Metadata{}, nil
	}

	return user.Metadata, nil
}

// SetMetadata stores a value in the metadata of the user.
func (s Store) SetMetadata(ctx context.Context, userID uuid.UUID, key string, value any) error {
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		var user User
		err := tx.First(&user, "id = ?", userID).Error
		if err != nil {
			return err
		}

		if user.Metadata == nil {
			user.Metadata = Metadata{}
		}

		err = user.Metadata.Set(key, value)
		if err != nil {
			return err
		}

		return tx.Model(&user).Select("Metadata").Updates(&user).Error
	})
}
