package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/i-nap/lekhsewa/internal/apperrors"
	"github.com/i-nap/lekhsewa/internal/auth"
	"github.com/i-nap/lekhsewa/internal/model"
	"github.com/i-nap/lekhsewa/internal/repository"
)

// freeQuotaCeiling is the quota gate threshold for free users. The gate allows
// while quota <= freeQuotaCeiling and increments afterwards, so a free user
// records 6 uses before the 7th attempt is denied. This matches the deployed
// behavior; the counter has no reset path.
const freeQuotaCeiling = 5

// UserService exposes account, plan and quota operations.
type UserService interface {
	// SyncUser upserts the caller identity from validated token claims.
	// Existing rows keep their plan and quota.
	SyncUser(ctx context.Context, claims auth.Claims) (*model.User, error)
	LookupPlan(ctx context.Context, sub string) (string, error)
	LookupQuota(ctx context.Context, sub string) (int, error)
	UpgradeToPro(ctx context.Context, sub string) error
	// CanProcessMoreImages is the quota gate: paid users always pass, free
	// users pass while under the ceiling and consume one use when they do.
	// The read-check-increment runs in one transaction under a row lock.
	CanProcessMoreImages(ctx context.Context, sub string) (bool, error)
}

type userService struct {
	repo repository.UserRepository
	log  zerolog.Logger
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, log zerolog.Logger) UserService {
	return &userService{repo: repo, log: log}
}

func (s *userService) SyncUser(ctx context.Context, claims auth.Claims) (*model.User, error) {
	user := &model.User{
		Auth0Sub:      claims.Sub,
		Email:         claims.Email,
		FullName:      claims.FullName,
		EmailVerified: claims.EmailVerified,
		Plan:          model.PlanFree,
	}
	synced, err := s.repo.Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("sync user: %w", err)
	}
	return synced, nil
}

func (s *userService) LookupPlan(ctx context.Context, sub string) (string, error) {
	user, err := s.findBySub(ctx, sub)
	if err != nil {
		return "", err
	}
	return user.Plan, nil
}

func (s *userService) LookupQuota(ctx context.Context, sub string) (int, error) {
	user, err := s.findBySub(ctx, sub)
	if err != nil {
		return 0, err
	}
	return user.Quota, nil
}

func (s *userService) UpgradeToPro(ctx context.Context, sub string) error {
	user, err := s.findBySub(ctx, sub)
	if err != nil {
		return err
	}
	user.Plan = model.PlanPaid
	if err := s.repo.Save(ctx, user); err != nil {
		return fmt.Errorf("upgrade plan: %w", err)
	}
	s.log.Info().Str("sub", sub).Msg("plan upgraded to paid")
	return nil
}

func (s *userService) CanProcessMoreImages(ctx context.Context, sub string) (bool, error) {
	var allowed bool
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		user, err := repo.FindBySubForUpdate(ctx, sub)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}

		switch {
		case user.Plan == model.PlanPaid:
			allowed = true
		case user.Plan == model.PlanFree && user.Quota <= freeQuotaCeiling:
			user.Quota++
			if err := repo.Save(ctx, user); err != nil {
				return fmt.Errorf("increment quota: %w", err)
			}
			allowed = true
		default:
			allowed = false
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if !allowed {
		s.log.Debug().Str("sub", sub).Msg("quota gate denied request")
	}
	return allowed, nil
}

func (s *userService) findBySub(ctx context.Context, sub string) (*model.User, error) {
	user, err := s.repo.FindBySub(ctx, sub)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
