package model

import "time"

// CanvasImage is an uploaded drawing canvas. FileName is a random token unique
// per upload; rows are written once and never mutated or deleted.
type CanvasImage struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FileName    string    `json:"file_name" gorm:"column:file_name;uniqueIndex;size:64;not null"`
	ContentType string    `json:"content_type" gorm:"column:content_type;size:64;not null"`
	ImageData   []byte    `json:"-" gorm:"column:image_data;type:longblob;not null"`
	UploadedAt  time.Time `json:"uploaded_at" gorm:"column:uploaded_at;not null;autoCreateTime"`
}

// TableName keeps the table name used by the existing schema.
func (CanvasImage) TableName() string { return "canvas_image" }
