package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/i-nap/lekhsewa/internal/apperrors"
	"github.com/i-nap/lekhsewa/internal/model"
	"github.com/i-nap/lekhsewa/internal/repository"
)

// MessageService persists contact messages.
type MessageService interface {
	CreateMessage(ctx context.Context, fullName, email, body string) (*model.Message, error)
}

type messageService struct {
	repo repository.MessageRepository
}

// NewMessageService builds a MessageService.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

func (s *messageService) CreateMessage(ctx context.Context, fullName, email, body string) (*model.Message, error) {
	if strings.TrimSpace(fullName) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(body) == "" {
		return nil, apperrors.ErrBlankMessageFields
	}

	message := &model.Message{
		FullName: fullName,
		Email:    email,
		Message:  body,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}
