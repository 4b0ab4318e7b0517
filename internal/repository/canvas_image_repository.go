package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/i-nap/lekhsewa/internal/model"
)

// CanvasImageRepository defines canvas image persistence operations.
type CanvasImageRepository interface {
	Create(ctx context.Context, image *model.CanvasImage) error
	FindByFileName(ctx context.Context, fileName string) (*model.CanvasImage, error)
}

type canvasImageRepository struct {
	db *gorm.DB
}

// NewCanvasImageRepository builds a GORM-backed repository.
func NewCanvasImageRepository(db *gorm.DB) CanvasImageRepository {
	return &canvasImageRepository{db: db}
}

func (r *canvasImageRepository) Create(ctx context.Context, image *model.CanvasImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *canvasImageRepository) FindByFileName(ctx context.Context, fileName string) (*model.CanvasImage, error) {
	var image model.CanvasImage
	if err := r.db.WithContext(ctx).Where("file_name = ?", fileName).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}
