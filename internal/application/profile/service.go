package profile

import (
	"context"
	"fmt"
	"time"

	"vita/internal/application/profile/dto"
	domainProfile "vita/internal/domain/profile"
	"vita/internal/shared/errors"
	"vita/internal/shared/logger"
)

// TokenIssuer signs the active-profile token set on the session cookie.
type TokenIssuer interface {
	Generate(userID uint, userName string) (string, time.Time, error)
}

// Service covers profile CRUD and activation. Activation is what binds
// a browser session to one profile; everything downstream reads the
// user from that token.
type Service struct {
	repo   domainProfile.Repository
	tokens TokenIssuer
	logger logger.Interface
}

func NewService(repo domainProfile.Repository, tokens TokenIssuer, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

func (s *Service) Create(ctx context.Context, req dto.CreateProfileRequest) (*dto.ProfileDTO, error) {
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("profile with this name already exists", req.Name)
	}

	p, err := domainProfile.NewProfile(req.Name, req.DisplayName, req.Timezone)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Errorw("failed to create profile", "name", req.Name, "error", err)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Infow("profile created", "profile_id", p.ID, "name", p.Name)
	return dto.ToProfileDTO(p), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*dto.ProfileDTO, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToProfileDTO(p), nil
}

func (s *Service) List(ctx context.Context) ([]*dto.ProfileDTO, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return dto.ToProfileDTOs(profiles), nil
}

func (s *Service) Update(ctx context.Context, id uint, req dto.UpdateProfileRequest) (*dto.ProfileDTO, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Update(req.DisplayName, req.Timezone, req.Expecting)
	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Errorw("failed to update profile", "profile_id", id, "error", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return dto.ToProfileDTO(p), nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete profile", "profile_id", id, "error", err)
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	s.logger.Infow("profile deleted", "profile_id", id)
	return nil
}

// Activate issues a signed token naming the profile. The handler sets
// it as the session cookie.
func (s *Service) Activate(ctx context.Context, id uint) (*dto.ActivateResult, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Generate(p.ID, p.DisplayName)
	if err != nil {
		s.logger.Errorw("failed to issue profile token", "profile_id", id, "error", err)
		return nil, fmt.Errorf("failed to issue profile token: %w", err)
	}

	s.logger.Infow("profile activated", "profile_id", p.ID, "name", p.Name)
	return &dto.ActivateResult{
		Profile:   dto.ToProfileDTO(p),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Service) get(ctx context.Context, id uint) (*domainProfile.Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("profile %d not found", id))
	}
	return p, nil
}
