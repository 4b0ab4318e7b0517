package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/i-nap/lekhsewa/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	FindBySub(ctx context.Context, sub string) (*model.User, error)
	// FindBySubForUpdate takes a row-level lock; only valid inside WithTransaction.
	FindBySubForUpdate(ctx context.Context, sub string) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
	// Upsert inserts the user or, when auth0_sub exists, updates only
	// email, full_name and email_verified. Plan and quota are never touched.
	Upsert(ctx context.Context, user *model.User) (*model.User, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindBySub(ctx context.Context, sub string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("auth0_sub = ?", sub).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindBySubForUpdate(ctx context.Context, sub string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("auth0_sub = ?", sub).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Upsert(ctx context.Context, user *model.User) (*model.User, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "auth0_sub"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "full_name", "email_verified"}),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}
	return r.FindBySub(ctx, user.Auth0Sub)
}

// WithTransaction executes fn within a database transaction.
func (r *userRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &userRepository{db: tx})
	})
}
