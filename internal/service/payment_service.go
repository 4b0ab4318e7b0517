package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/i-nap/lekhsewa/internal/apperrors"
	"github.com/i-nap/lekhsewa/internal/model"
	"github.com/i-nap/lekhsewa/internal/repository"
)

// EsewaConfig carries the merchant-side eSewa settings.
type EsewaConfig struct {
	MerchantCode string
	SecretKey    string
	SuccessURL   string
	FailureURL   string
}

// EsewaPayload is the signed form payload the frontend posts to eSewa.
type EsewaPayload struct {
	Amount                string `json:"amount"`
	TaxAmount             string `json:"tax_amount"`
	ProductDeliveryCharge string `json:"product_delivery_charge"`
	ProductServiceCharge  string `json:"product_service_charge"`
	TotalAmount           string `json:"total_amount"`
	TransactionUUID       string `json:"transaction_uuid"`
	ProductCode           string `json:"product_code"`
	SuccessURL            string `json:"success_url"`
	FailureURL            string `json:"failure_url"`
	SignedFieldNames      string `json:"signed_field_names"`
}

// InitiateResult is the response for a payment initiation.
type InitiateResult struct {
	Payload   EsewaPayload `json:"payload"`
	Signature string       `json:"signature"`
}

// VerifyResult is the response for a verified payment redirect.
type VerifyResult struct {
	Verified        bool   `json:"verified"`
	TransactionUUID string `json:"transaction_uuid"`
	Status          string `json:"status"`
}

// PaymentService handles eSewa plan upgrade payments.
type PaymentService interface {
	// Initiate records a pending payment and returns the signed eSewa payload.
	Initiate(ctx context.Context, sub string, amount decimal.Decimal) (*InitiateResult, error)
	// Verify checks a redirect payload's signature and, on a completed
	// transaction, marks the payment verified and upgrades the payer's plan.
	Verify(ctx context.Context, data string) (*VerifyResult, error)
}

type paymentService struct {
	payments repository.PlanPaymentRepository
	users    UserService
	signer   *EsewaSigner
	cfg      EsewaConfig
	log      zerolog.Logger
}

// NewPaymentService builds a PaymentService.
func NewPaymentService(
	payments repository.PlanPaymentRepository,
	users UserService,
	cfg EsewaConfig,
	log zerolog.Logger,
) PaymentService {
	return &paymentService{
		payments: payments,
		users:    users,
		signer:   NewEsewaSigner(cfg.SecretKey),
		cfg:      cfg,
		log:      log,
	}
}

func (s *paymentService) Initiate(ctx context.Context, sub string, amount decimal.Decimal) (*InitiateResult, error) {
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if _, err := s.users.LookupPlan(ctx, sub); err != nil {
		return nil, err
	}

	transactionUUID := uuid.NewString()
	payment := &model.PlanPayment{
		TransactionUUID: transactionUUID,
		Auth0Sub:        sub,
		Amount:          amount,
		ProductCode:     s.cfg.MerchantCode,
		Status:          model.PaymentStatusPending,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	total := amount.StringFixed(0)
	payload := EsewaPayload{
		Amount:                total,
		TaxAmount:             "0",
		ProductDeliveryCharge: "0",
		ProductServiceCharge:  "0",
		TotalAmount:           total,
		TransactionUUID:       transactionUUID,
		ProductCode:           s.cfg.MerchantCode,
		SuccessURL:            fmt.Sprintf("%s?transaction_uuid=%s", s.cfg.SuccessURL, transactionUUID),
		FailureURL:            s.cfg.FailureURL,
		SignedFieldNames:      "total_amount,transaction_uuid,product_code",
	}

	return &InitiateResult{
		Payload:   payload,
		Signature: s.signer.Sign(payload.TotalAmount, payload.TransactionUUID, payload.ProductCode),
	}, nil
}

func (s *paymentService) Verify(ctx context.Context, data string) (*VerifyResult, error) {
	fields, err := decodeRedirectData(data)
	if err != nil {
		return nil, err
	}

	signedFieldNames := fields["signed_field_names"]
	signature := fields["signature"]
	if signedFieldNames == "" || signature == "" {
		return nil, apperrors.ErrInvalidPaymentData
	}
	if !s.signer.VerifyFields(fields, signedFieldNames, signature) {
		return nil, apperrors.ErrInvalidSignature
	}

	transactionUUID := fields["transaction_uuid"]
	payment, err := s.payments.FindByTransactionUUID(ctx, transactionUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	status := fields["status"]
	if !strings.EqualFold(status, "COMPLETE") {
		payment.Status = model.PaymentStatusFailed
		_ = s.payments.Update(ctx, payment)
		return &VerifyResult{Verified: false, TransactionUUID: transactionUUID, Status: status}, nil
	}

	if payment.Status != model.PaymentStatusVerified {
		payment.Status = model.PaymentStatusVerified
		if err := s.payments.Update(ctx, payment); err != nil {
			return nil, fmt.Errorf("mark payment verified: %w", err)
		}
		if err := s.users.UpgradeToPro(ctx, payment.Auth0Sub); err != nil {
			return nil, err
		}
		s.log.Info().Str("transaction_uuid", transactionUUID).Str("sub", payment.Auth0Sub).
			Msg("plan payment verified")
	}

	return &VerifyResult{Verified: true, TransactionUUID: transactionUUID, Status: status}, nil
}

// decodeRedirectData decodes the base64 payload of an eSewa success redirect.
// eSewa sends url-safe base64 without padding in some flows.
func decodeRedirectData(data string) (map[string]string, error) {
	if data == "" {
		return nil, apperrors.ErrInvalidPaymentData
	}
	normalized := strings.NewReplacer("-", "+", "_", "/").Replace(data)
	if pad := len(normalized) % 4; pad != 0 {
		normalized += strings.Repeat("=", 4-pad)
	}

	raw, err := base64.StdEncoding.DecodeString(normalized)
	if err != nil {
		return nil, apperrors.ErrInvalidPaymentData
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, apperrors.ErrInvalidPaymentData
	}

	fields := make(map[string]string, len(decoded))
	for k, v := range decoded {
		if s, ok := v.(string); ok {
			fields[k] = s
		} else {
			fields[k] = fmt.Sprint(v)
		}
	}
	return fields, nil
}
