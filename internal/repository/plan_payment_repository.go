package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/i-nap/lekhsewa/internal/model"
)

// PlanPaymentRepository defines plan payment persistence operations.
type PlanPaymentRepository interface {
	Create(ctx context.Context, payment *model.PlanPayment) error
	FindByTransactionUUID(ctx context.Context, transactionUUID string) (*model.PlanPayment, error)
	Update(ctx context.Context, payment *model.PlanPayment) error
}

type planPaymentRepository struct {
	db *gorm.DB
}

// NewPlanPaymentRepository builds a GORM-backed repository.
func NewPlanPaymentRepository(db *gorm.DB) PlanPaymentRepository {
	return &planPaymentRepository{db: db}
}

func (r *planPaymentRepository) Create(ctx context.Context, payment *model.PlanPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *planPaymentRepository) FindByTransactionUUID(ctx context.Context, transactionUUID string) (*model.PlanPayment, error) {
	var payment model.PlanPayment
	if err := r.db.WithContext(ctx).Where("transaction_uuid = ?", transactionUUID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *planPaymentRepository) Update(ctx context.Context, payment *model.PlanPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}
