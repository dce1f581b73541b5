package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vita/internal/domain/profile"
	"vita/internal/infrastructure/persistence/mappers"
	"vita/internal/infrastructure/persistence/models"
	"vita/internal/shared/errors"
)

// ProfileRepository implements the profile.Repository interface.
type ProfileRepository struct {
	db     *gorm.DB
	mapper *mappers.ProfileMapper
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *gorm.DB) profile.Repository {
	return &ProfileRepository{
		db:     db,
		mapper: mappers.NewProfileMapper(),
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	model := r.mapper.ToModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	p.ID = model.ID
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uint) (*profile.Profile, error) {
	var model models.ProfileModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to get profile by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *ProfileRepository) GetByName(ctx context.Context, name string) (*profile.Profile, error) {
	var model models.ProfileModel
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile by name: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]*profile.Profile, error) {
	var profileModels []*models.ProfileModel
	err := r.db.WithContext(ctx).Order("name ASC").Find(&profileModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return r.mapper.ToDomainList(profileModels), nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	model := r.mapper.ToModel(p)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("profile not found")
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ProfileModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("profile not found")
	}
	return nil
}
