package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	DefaultModel
	UserID uuid.UUID `json:"-" gorm:"index"`
	Name   string    `json:"name"`
}

func (p *Project) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
}

func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrProjectNameEmpty
	}

	return nil
}

func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Normalize()
	return p.Validate()
}
