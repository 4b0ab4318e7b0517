package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/i-nap/lekhsewa/internal/model"
)

// MessageRepository defines contact message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a GORM-backed repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}
