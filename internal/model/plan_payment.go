package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus represents the status of a plan upgrade payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// PlanPayment records an eSewa transaction initiated to upgrade a user's plan.
type PlanPayment struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	TransactionUUID string          `json:"transaction_uuid" gorm:"column:transaction_uuid;uniqueIndex;size:64;not null"`
	Auth0Sub        string          `json:"sub" gorm:"column:auth0_sub;size:255;not null;index"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	ProductCode     string          `json:"product_code" gorm:"size:64;not null"`
	Status          PaymentStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName keeps the table name used by the existing schema.
func (PlanPayment) TableName() string { return "plan_payments" }

// BeforeCreate sets UUID before creating the record.
func (p *PlanPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
