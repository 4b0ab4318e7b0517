package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/i-nap/lekhsewa/internal/apperrors"
	"github.com/i-nap/lekhsewa/internal/cache"
	"github.com/i-nap/lekhsewa/internal/model"
	"github.com/i-nap/lekhsewa/internal/repository"
)

const formCacheTTL = 5 * time.Minute

// FormSummary is a search result row.
type FormSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FormSummaryPage is one page of search results.
type FormSummaryPage struct {
	Content       []FormSummary `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int64         `json:"total_elements"`
	TotalPages    int           `json:"total_pages"`
}

// FieldData is a form field with its ordered options.
type FieldData struct {
	ID         uint         `json:"id"`
	Label      string       `json:"label"`
	FieldName  string       `json:"field_name"`
	Type       string       `json:"type"`
	Required   bool         `json:"required"`
	NepaliText bool         `json:"nepali_text"`
	Options    []OptionData `json:"options"`
}

// OptionData is a single field option.
type OptionData struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormData is a full form graph: the form plus its ordered fields and options.
type FormData struct {
	Form   FormSummary `json:"form"`
	Fields []FieldData `json:"fields"`
}

// FormService exposes form schema operations.
type FormService interface {
	Search(ctx context.Context, q string, page, size int) (*FormSummaryPage, error)
	Suggest(ctx context.Context, q string, limit int) (*FormSummaryPage, error)
	GetForm(ctx context.Context, id uint) (*FormData, error)
	CreateForm(ctx context.Context, form *model.Form) (*model.Form, error)
	DeleteForm(ctx context.Context, id uint) error
}

type formService struct {
	repo  repository.FormRepository
	cache *cache.Client
}

// NewFormService builds a FormService with repository and cache.
func NewFormService(repo repository.FormRepository, cache *cache.Client) FormService {
	return &formService{repo: repo, cache: cache}
}

func (s *formService) cacheKey(id uint) string {
	return fmt.Sprintf("form:%d", id)
}

func (s *formService) Search(ctx context.Context, q string, page, size int) (*FormSummaryPage, error) {
	q = strings.TrimSpace(q)
	page = max(page, 0)
	size = clamp(size, 1, 100)

	forms, total, err := s.repo.SearchByName(ctx, q, page, size)
	if err != nil {
		return nil, fmt.Errorf("search forms: %w", err)
	}
	return newPage(forms, page, size, total), nil
}

func (s *formService) Suggest(ctx context.Context, q string, limit int) (*FormSummaryPage, error) {
	q = strings.TrimSpace(q)
	limit = clamp(limit, 1, 20)

	forms, total, err := s.repo.SuggestByPrefix(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("suggest forms: %w", err)
	}
	return newPage(forms, 0, limit, total), nil
}

func (s *formService) GetForm(ctx context.Context, id uint) (*FormData, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached FormData
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	form, err := s.repo.FindGraphByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFormNotFound
		}
		return nil, fmt.Errorf("load form graph: %w", err)
	}

	data := buildFormData(form)
	if payload, err := json.Marshal(data); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, formCacheTTL)
	}
	return data, nil
}

func (s *formService) CreateForm(ctx context.Context, form *model.Form) (*model.Form, error) {
	if strings.TrimSpace(form.Name) == "" {
		return nil, apperrors.ErrBlankFormName
	}
	seen := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		if _, dup := seen[field.FieldName]; dup {
			return nil, apperrors.ErrDuplicateFieldName
		}
		seen[field.FieldName] = struct{}{}
	}

	if err := s.repo.Create(ctx, form); err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}
	return form, nil
}

func (s *formService) DeleteForm(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFormNotFound
		}
		return fmt.Errorf("delete form: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func newPage(forms []model.Form, page, size int, total int64) *FormSummaryPage {
	content := make([]FormSummary, 0, len(forms))
	for _, f := range forms {
		content = append(content, FormSummary{ID: f.ID, Name: f.Name, Description: f.Description})
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	return &FormSummaryPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

func buildFormData(form *model.Form) *FormData {
	fields := make([]FieldData, 0, len(form.Fields))
	for _, field := range form.Fields {
		options := make([]OptionData, 0, len(field.Options))
		for _, opt := range field.Options {
			options = append(options, OptionData{Value: opt.Value, Label: opt.Label})
		}
		fields = append(fields, FieldData{
			ID:         field.ID,
			Label:      field.Label,
			FieldName:  field.FieldName,
			Type:       field.Type,
			Required:   field.Required,
			NepaliText: field.NepaliText,
			Options:    options,
		})
	}
	return &FormData{
		Form:   FormSummary{ID: form.ID, Name: form.Name, Description: form.Description},
		Fields: fields,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
