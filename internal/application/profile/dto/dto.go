package dto

import (
	"time"

	"vita/internal/domain/profile"
	"vita/internal/shared/mapper"
)

type ProfileDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Timezone    string    `json:"timezone"`
	Expecting   bool      `json:"expecting"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProfileRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=64"`
	DisplayName string `json:"display_name" binding:"max=128"`
	Timezone    string `json:"timezone" binding:"max=64"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"max=128"`
	Timezone    string `json:"timezone" binding:"max=64"`
	Expecting   bool   `json:"expecting"`
}

type ActivateResult struct {
	Profile   *ProfileDTO `json:"profile"`
	Token     string      `json:"-"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func ToProfileDTO(p *profile.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		ID:          p.ID,
		Name:        p.Name,
		DisplayName: p.DisplayName,
		Timezone:    p.Timezone,
		Expecting:   p.Expecting,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProfileDTOs(profiles []*profile.Profile) []*ProfileDTO {
	return mapper.MapSlice(profiles, ToProfileDTO)
}
