package model

import "time"

// Plan tiers governing the image processing quota.
const (
	PlanFree = "free"
	PlanPaid = "paid"
)

// User represents an authenticated end user synced from the identity provider.
// Auth0Sub is unique and immutable after creation; Quota is mutated only by the
// quota gate and Plan only by the upgrade paths.
type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Auth0Sub      string    `json:"sub" gorm:"column:auth0_sub;uniqueIndex;size:255;not null"`
	Email         string    `json:"email" gorm:"size:255"`
	FullName      string    `json:"full_name" gorm:"column:full_name;size:255"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	Plan          string    `json:"plan" gorm:"size:20;not null;default:'free'"`
	Quota         int       `json:"quota" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName keeps the table name used by the existing schema.
func (User) TableName() string { return "app_user" }
