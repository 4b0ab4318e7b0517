package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/i-nap/lekhsewa/internal/model"
)

// FormRepository defines form schema persistence operations.
type FormRepository interface {
	// SearchByName matches forms whose name contains q case-insensitively,
	// ordered by name then id, and returns one page plus the total match count.
	SearchByName(ctx context.Context, q string, page, size int) ([]model.Form, int64, error)
	// SuggestByPrefix matches forms whose name starts with q case-insensitively.
	SuggestByPrefix(ctx context.Context, q string, limit int) ([]model.Form, int64, error)
	// FindGraphByID loads a form with its fields and options, each in ascending id order.
	FindGraphByID(ctx context.Context, id uint) (*model.Form, error)
	// Create persists a form with its fields and options in one transaction.
	Create(ctx context.Context, form *model.Form) error
	// Delete removes a form, explicitly deleting options then fields first.
	Delete(ctx context.Context, id uint) error
}

type formRepository struct {
	db *gorm.DB
}

// NewFormRepository builds a GORM-backed repository.
func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

// escapeLike escapes LIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *formRepository) searchPage(ctx context.Context, pattern string, offset, limit int) ([]model.Form, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.Form{}).
		Where("LOWER(name) LIKE LOWER(?)", pattern)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var forms []model.Form
	if err := base.Session(&gorm.Session{}).
		Order("name ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&forms).Error; err != nil {
		return nil, 0, err
	}
	return forms, total, nil
}

func (r *formRepository) SearchByName(ctx context.Context, q string, page, size int) ([]model.Form, int64, error) {
	return r.searchPage(ctx, "%"+escapeLike(q)+"%", page*size, size)
}

func (r *formRepository) SuggestByPrefix(ctx context.Context, q string, limit int) ([]model.Form, int64, error) {
	return r.searchPage(ctx, escapeLike(q)+"%", 0, limit)
}

func (r *formRepository) FindGraphByID(ctx context.Context, id uint) (*model.Form, error) {
	var form model.Form
	err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("form_fields.id ASC")
		}).
		Preload("Fields.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_options.id ASC")
		}).
		First(&form, id).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) Create(ctx context.Context, form *model.Form) error {
	// GORM persists the nested fields/options along with the form.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(form).Error
	})
}

func (r *formRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fieldIDs := tx.Model(&model.FormField{}).Select("id").Where("form_id = ?", id)
		if err := tx.Where("field_id IN (?)", fieldIDs).Delete(&model.FieldOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).Delete(&model.FormField{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Form{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
