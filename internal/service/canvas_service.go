package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/i-nap/lekhsewa/internal/apperrors"
	"github.com/i-nap/lekhsewa/internal/model"
	"github.com/i-nap/lekhsewa/internal/recognizer"
	"github.com/i-nap/lekhsewa/internal/repository"
)

const pngContentType = "image/png"

// ProcessResult is the outcome of a processed canvas upload.
type ProcessResult struct {
	CanvasID string `json:"canvas_id"`
	Word     string `json:"word"`
}

// CanvasService handles the quota-gated canvas image workflow.
type CanvasService interface {
	// ProcessCanvas runs the full flow: quota gate, intake, transcription.
	ProcessCanvas(ctx context.Context, sub string, data []byte, contentType string) (*ProcessResult, error)
	// Intake validates and persists an upload and returns its token.
	Intake(ctx context.Context, data []byte, contentType string) (string, error)
	// Transcribe sends a stored image to the recognizer and returns its text.
	Transcribe(ctx context.Context, canvasID string) (string, error)
}

type canvasService struct {
	images     repository.CanvasImageRepository
	users      UserService
	recognizer recognizer.Client
	log        zerolog.Logger
}

// NewCanvasService builds a CanvasService.
func NewCanvasService(
	images repository.CanvasImageRepository,
	users UserService,
	rec recognizer.Client,
	log zerolog.Logger,
) CanvasService {
	return &canvasService{images: images, users: users, recognizer: rec, log: log}
}

func (s *canvasService) ProcessCanvas(ctx context.Context, sub string, data []byte, contentType string) (*ProcessResult, error) {
	allowed, err := s.users.CanProcessMoreImages(ctx, sub)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrQuotaExceeded
	}

	canvasID, err := s.Intake(ctx, data, contentType)
	if err != nil {
		return nil, err
	}

	word, err := s.Transcribe(ctx, canvasID)
	if err != nil {
		s.log.Warn().Err(err).Str("canvas_id", canvasID).Msg("transcription failed")
		return nil, err
	}

	return &ProcessResult{CanvasID: canvasID, Word: word}, nil
}

func (s *canvasService) Intake(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", apperrors.ErrEmptyImage
	}
	if !strings.EqualFold(contentType, pngContentType) {
		return "", apperrors.ErrUnsupportedImageType
	}

	image := &model.CanvasImage{
		FileName:    uuid.NewString(),
		ContentType: contentType,
		ImageData:   data,
	}
	if err := s.images.Create(ctx, image); err != nil {
		return "", fmt.Errorf("store canvas image: %w", err)
	}
	return image.FileName, nil
}

func (s *canvasService) Transcribe(ctx context.Context, canvasID string) (string, error) {
	image, err := s.images.FindByFileName(ctx, canvasID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrImageNotFound
		}
		return "", err
	}
	if len(image.ImageData) == 0 {
		return "", apperrors.ErrEmptyImage
	}

	return s.recognizer.Recognize(ctx, image.ImageData, image.ContentType)
}
