package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/i-nap/lekhsewa/internal/apperrors"
	"github.com/i-nap/lekhsewa/internal/auth"
	"github.com/i-nap/lekhsewa/internal/model"
	"github.com/i-nap/lekhsewa/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindBySub(ctx context.Context, sub string) (*model.User, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindBySubForUpdate(ctx context.Context, sub string) (*model.User, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.UserRepository) error) error {
	return fn(ctx, m)
}

func TestUserService_CanProcessMoreImages(t *testing.T) {
	tests := []struct {
		name        string
		plan        string
		quota       int
		wantAllowed bool
		wantQuota   int
		wantSave    bool
	}{
		{name: "free user with empty quota", plan: model.PlanFree, quota: 0, wantAllowed: true, wantQuota: 1, wantSave: true},
		{name: "free user at ceiling", plan: model.PlanFree, quota: 5, wantAllowed: true, wantQuota: 6, wantSave: true},
		{name: "free user past ceiling", plan: model.PlanFree, quota: 6, wantAllowed: false, wantQuota: 6, wantSave: false},
		{name: "paid user is never gated", plan: model.PlanPaid, quota: 100, wantAllowed: true, wantQuota: 100, wantSave: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			user := &model.User{Auth0Sub: "auth0|abc", Plan: tt.plan, Quota: tt.quota}
			repo.On("FindBySubForUpdate", mock.Anything, "auth0|abc").Return(user, nil)
			if tt.wantSave {
				repo.On("Save", mock.Anything, user).Return(nil)
			}

			svc := NewUserService(repo, zerolog.Nop())
			allowed, err := svc.CanProcessMoreImages(context.Background(), "auth0|abc")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, allowed)
			assert.Equal(t, tt.wantQuota, user.Quota)
			if !tt.wantSave {
				repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_CanProcessMoreImages_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindBySubForUpdate", mock.Anything, "auth0|ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(repo, zerolog.Nop())
	allowed, err := svc.CanProcessMoreImages(context.Background(), "auth0|ghost")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.False(t, allowed)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_LookupPlanAndQuota(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindBySub", mock.Anything, "auth0|abc").
		Return(&model.User{Auth0Sub: "auth0|abc", Plan: model.PlanFree, Quota: 3}, nil)
	repo.On("FindBySub", mock.Anything, "auth0|ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(repo, zerolog.Nop())

	plan, err := svc.LookupPlan(context.Background(), "auth0|abc")
	assert.NoError(t, err)
	assert.Equal(t, model.PlanFree, plan)

	quota, err := svc.LookupQuota(context.Background(), "auth0|abc")
	assert.NoError(t, err)
	assert.Equal(t, 3, quota)

	_, err = svc.LookupPlan(context.Background(), "auth0|ghost")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_UpgradeToPro(t *testing.T) {
	repo := new(MockUserRepository)
	user := &model.User{Auth0Sub: "auth0|abc", Plan: model.PlanFree}
	repo.On("FindBySub", mock.Anything, "auth0|abc").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	svc := NewUserService(repo, zerolog.Nop())
	err := svc.UpgradeToPro(context.Background(), "auth0|abc")

	assert.NoError(t, err)
	assert.Equal(t, model.PlanPaid, user.Plan)
	repo.AssertExpectations(t)
}

func TestUserService_SyncUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Auth0Sub == "auth0|abc" &&
			u.Email == "a@example.com" &&
			u.FullName == "Asha" &&
			u.EmailVerified &&
			u.Plan == model.PlanFree
	})).Return(&model.User{Auth0Sub: "auth0|abc", Email: "a@example.com", Plan: model.PlanPaid, Quota: 4}, nil)

	svc := NewUserService(repo, zerolog.Nop())
	user, err := svc.SyncUser(context.Background(), auth.Claims{
		Sub:           "auth0|abc",
		Email:         "a@example.com",
		FullName:      "Asha",
		EmailVerified: true,
	})

	assert.NoError(t, err)
	// the stored plan and quota survive a sync untouched
	assert.Equal(t, model.PlanPaid, user.Plan)
	assert.Equal(t, 4, user.Quota)
	repo.AssertExpectations(t)
}
