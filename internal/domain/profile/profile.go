package profile

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Profile is a local person the journal is kept for. Exactly one
// profile is active per browser session at a time.
type Profile struct {
	ID          uint
	Name        string
	DisplayName string
	Timezone    string
	Expecting   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProfile(name, displayName, timezone string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if displayName == "" {
		displayName = name
	}
	if timezone == "" {
		timezone = "UTC"
	}

	now := time.Now()
	return &Profile{
		Name:        name,
		DisplayName: displayName,
		Timezone:    timezone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (p *Profile) Update(displayName, timezone string, expecting bool) {
	if displayName != "" {
		p.DisplayName = displayName
	}
	if timezone != "" {
		p.Timezone = timezone
	}
	p.Expecting = expecting
	p.UpdatedAt = time.Now()
}

// Repository persists profiles.
type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id uint) (*Profile, error)
	GetByName(ctx context.Context, name string) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id uint) error
}
