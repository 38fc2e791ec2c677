package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Metadata keys stored on the user.
const (
	MetadataLearningXP       = "learningXP"
	MetadataCompletedLessons = "completedLessons"
)

// Metadata is a key value bag persisted with the user.
type Metadata map[string]json.RawMessage

// Get decodes the value for key into target. If the key does not
// exist, target is left untouched.
func (m Metadata) Get(key string, target any) error {
	raw, ok := m[key]
	if !ok {
		return nil
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("metadata key %s: %w", key, err)
	}

	return nil
}

// Set encodes value and stores it for key.
func (m Metadata) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("metadata key %s: %w", key, err)
	}

	m[key] = raw
	return nil
}

// User is an account of the application.
type User struct {
	DefaultModel
	Email        string   `json:"email" gorm:"uniqueIndex"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"-"`
	Metadata     Metadata `json:"metadata" gorm:"serializer:json"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)

	if u.Email == "" {
		return ErrUserEmailEmpty
	}

	if u.Metadata == nil {
		u.Metadata = Metadata{}
	}

	return nil
}
