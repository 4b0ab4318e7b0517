package model

import "time"

// Message is a contact form submission.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name" gorm:"column:full_name;size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name used by the existing schema.
func (Message) TableName() string { return "message" }
