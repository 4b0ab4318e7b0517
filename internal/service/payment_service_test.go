package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/i-nap/lekhsewa/internal/apperrors"
	"github.com/i-nap/lekhsewa/internal/model"
)

// MockPlanPaymentRepository is a mock implementation of PlanPaymentRepository.
type MockPlanPaymentRepository struct {
	mock.Mock
}

func (m *MockPlanPaymentRepository) Create(ctx context.Context, payment *model.PlanPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPlanPaymentRepository) FindByTransactionUUID(ctx context.Context, transactionUUID string) (*model.PlanPayment, error) {
	args := m.Called(ctx, transactionUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlanPayment), args.Error(1)
}

func (m *MockPlanPaymentRepository) Update(ctx context.Context, payment *model.PlanPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

var testEsewaConfig = EsewaConfig{
	MerchantCode: "EPAYTEST",
	SecretKey:    "8gBm/:&EnhH.1/q",
	SuccessURL:   "https://lekhsewa.example.com/payment/success",
	FailureURL:   "https://lekhsewa.example.com/payment/failure",
}

// redirectData builds the base64 query payload eSewa appends to its
// success redirect, signed with the given signer.
func redirectData(t *testing.T, signer *EsewaSigner, status, totalAmount, transactionUUID, productCode string) string {
	t.Helper()
	payload := map[string]string{
		"status":             status,
		"total_amount":       totalAmount,
		"transaction_uuid":   transactionUUID,
		"product_code":       productCode,
		"signed_field_names": "total_amount,transaction_uuid,product_code",
		"signature":          signer.Sign(totalAmount, transactionUUID, productCode),
	}
	raw, err := json.Marshal(payload)
	assert.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func TestPaymentService_Initiate(t *testing.T) {
	t.Run("rejects non-positive amounts", func(t *testing.T) {
		svc := NewPaymentService(new(MockPlanPaymentRepository), new(MockUserService), testEsewaConfig, zerolog.Nop())

		_, err := svc.Initiate(context.Background(), "auth0|abc", decimal.Zero)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

		_, err = svc.Initiate(context.Background(), "auth0|abc", decimal.NewFromInt(-100))
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})

	t.Run("unknown payer", func(t *testing.T) {
		users := new(MockUserService)
		users.On("LookupPlan", mock.Anything, "auth0|ghost").Return("", apperrors.ErrUserNotFound)

		svc := NewPaymentService(new(MockPlanPaymentRepository), users, testEsewaConfig, zerolog.Nop())
		_, err := svc.Initiate(context.Background(), "auth0|ghost", decimal.NewFromInt(100))
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("records a pending payment and signs the payload", func(t *testing.T) {
		users := new(MockUserService)
		users.On("LookupPlan", mock.Anything, "auth0|abc").Return(model.PlanFree, nil)

		payments := new(MockPlanPaymentRepository)
		payments.On("Create", mock.Anything, mock.MatchedBy(func(p *model.PlanPayment) bool {
			return p.Auth0Sub == "auth0|abc" &&
				p.Status == model.PaymentStatusPending &&
				p.ProductCode == "EPAYTEST" &&
				p.TransactionUUID != ""
		})).Return(nil)

		svc := NewPaymentService(payments, users, testEsewaConfig, zerolog.Nop())
		result, err := svc.Initiate(context.Background(), "auth0|abc", decimal.NewFromInt(100))

		assert.NoError(t, err)
		assert.Equal(t, "100", result.Payload.TotalAmount)
		assert.Equal(t, "EPAYTEST", result.Payload.ProductCode)
		assert.Equal(t, "total_amount,transaction_uuid,product_code", result.Payload.SignedFieldNames)
		assert.Contains(t, result.Payload.SuccessURL, result.Payload.TransactionUUID)

		signer := NewEsewaSigner(testEsewaConfig.SecretKey)
		want := signer.Sign(result.Payload.TotalAmount, result.Payload.TransactionUUID, result.Payload.ProductCode)
		assert.Equal(t, want, result.Signature)
		payments.AssertExpectations(t)
	})
}

func TestPaymentService_Verify(t *testing.T) {
	signer := NewEsewaSigner(testEsewaConfig.SecretKey)

	t.Run("garbage data", func(t *testing.T) {
		svc := NewPaymentService(new(MockPlanPaymentRepository), new(MockUserService), testEsewaConfig, zerolog.Nop())

		_, err := svc.Verify(context.Background(), "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentData)

		_, err = svc.Verify(context.Background(), "not base64 at all!!!")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentData)
	})

	t.Run("tampered signature", func(t *testing.T) {
		wrongSigner := NewEsewaSigner("someone-elses-secret")
		data := redirectData(t, wrongSigner, "COMPLETE", "100", "txn-1", "EPAYTEST")

		svc := NewPaymentService(new(MockPlanPaymentRepository), new(MockUserService), testEsewaConfig, zerolog.Nop())
		_, err := svc.Verify(context.Background(), data)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSignature)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		payments := new(MockPlanPaymentRepository)
		payments.On("FindByTransactionUUID", mock.Anything, "txn-1").Return(nil, gorm.ErrRecordNotFound)

		data := redirectData(t, signer, "COMPLETE", "100", "txn-1", "EPAYTEST")
		svc := NewPaymentService(payments, new(MockUserService), testEsewaConfig, zerolog.Nop())

		_, err := svc.Verify(context.Background(), data)
		assert.ErrorIs(t, err, apperrors.ErrPaymentNotFound)
	})

	t.Run("incomplete status marks the payment failed", func(t *testing.T) {
		payment := &model.PlanPayment{TransactionUUID: "txn-1", Auth0Sub: "auth0|abc", Status: model.PaymentStatusPending}
		payments := new(MockPlanPaymentRepository)
		payments.On("FindByTransactionUUID", mock.Anything, "txn-1").Return(payment, nil)
		payments.On("Update", mock.Anything, payment).Return(nil)

		users := new(MockUserService)
		data := redirectData(t, signer, "PENDING", "100", "txn-1", "EPAYTEST")
		svc := NewPaymentService(payments, users, testEsewaConfig, zerolog.Nop())

		result, err := svc.Verify(context.Background(), data)
		assert.NoError(t, err)
		assert.False(t, result.Verified)
		assert.Equal(t, model.PaymentStatusFailed, payment.Status)
		users.AssertNotCalled(t, "UpgradeToPro", mock.Anything, mock.Anything)
	})

	t.Run("complete status upgrades the payer", func(t *testing.T) {
		payment := &model.PlanPayment{TransactionUUID: "txn-1", Auth0Sub: "auth0|abc", Status: model.PaymentStatusPending}
		payments := new(MockPlanPaymentRepository)
		payments.On("FindByTransactionUUID", mock.Anything, "txn-1").Return(payment, nil)
		payments.On("Update", mock.Anything, payment).Return(nil)

		users := new(MockUserService)
		users.On("UpgradeToPro", mock.Anything, "auth0|abc").Return(nil)

		data := redirectData(t, signer, "COMPLETE", "100", "txn-1", "EPAYTEST")
		svc := NewPaymentService(payments, users, testEsewaConfig, zerolog.Nop())

		result, err := svc.Verify(context.Background(), data)
		assert.NoError(t, err)
		assert.True(t, result.Verified)
		assert.Equal(t, "txn-1", result.TransactionUUID)
		assert.Equal(t, model.PaymentStatusVerified, payment.Status)
		users.AssertExpectations(t)
		payments.AssertExpectations(t)
	})

	t.Run("replayed redirect does not upgrade twice", func(t *testing.T) {
		payment := &model.PlanPayment{TransactionUUID: "txn-1", Auth0Sub: "auth0|abc", Status: model.PaymentStatusVerified}
		payments := new(MockPlanPaymentRepository)
		payments.On("FindByTransactionUUID", mock.Anything, "txn-1").Return(payment, nil)

		users := new(MockUserService)
		data := redirectData(t, signer, "COMPLETE", "100", "txn-1", "EPAYTEST")
		svc := NewPaymentService(payments, users, testEsewaConfig, zerolog.Nop())

		result, err := svc.Verify(context.Background(), data)
		assert.NoError(t, err)
		assert.True(t, result.Verified)
		users.AssertNotCalled(t, "UpgradeToPro", mock.Anything, mock.Anything)
		payments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("accepts url-safe base64 without padding", func(t *testing.T) {
		payment := &model.PlanPayment{TransactionUUID: "txn-1", Auth0Sub: "auth0|abc", Status: model.PaymentStatusVerified}
		payments := new(MockPlanPaymentRepository)
		payments.On("FindByTransactionUUID", mock.Anything, "txn-1").Return(payment, nil)

		data := redirectData(t, signer, "COMPLETE", "100", "txn-1", "EPAYTEST")
		urlSafe := base64.RawURLEncoding.EncodeToString(mustStdDecode(t, data))

		svc := NewPaymentService(payments, new(MockUserService), testEsewaConfig, zerolog.Nop())
		result, err := svc.Verify(context.Background(), urlSafe)
		assert.NoError(t, err)
		assert.True(t, result.Verified)
	})
}

func mustStdDecode(t *testing.T, s string) []byte {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(s)
	assert.NoError(t, err)
	return raw
}

func TestEsewaSigner_SignAndVerify(t *testing.T) {
	signer := NewEsewaSigner("8gBm/:&EnhH.1/q")

	sig := signer.Sign("100", "txn-1", "EPAYTEST")
	assert.NotEmpty(t, sig)

	fields := map[string]string{
		"total_amount":     "100",
		"transaction_uuid": "txn-1",
		"product_code":     "EPAYTEST",
	}
	assert.True(t, signer.VerifyFields(fields, "total_amount,transaction_uuid,product_code", sig))

	fields["total_amount"] = "999"
	assert.False(t, signer.VerifyFields(fields, "total_amount,transaction_uuid,product_code", sig))
}
