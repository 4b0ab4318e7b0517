package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// EsewaSigner signs and verifies eSewa ePay-v2 payloads.
type EsewaSigner struct {
	secret []byte
}

// NewEsewaSigner creates a signer with the merchant secret key.
func NewEsewaSigner(secret string) *EsewaSigner {
	return &EsewaSigner{secret: []byte(secret)}
}

// Sign computes the base64 HMAC-SHA256 signature over the fixed
// total_amount,transaction_uuid,product_code signing string.
func (s *EsewaSigner) Sign(totalAmount, transactionUUID, productCode string) string {
	msg := fmt.Sprintf("total_amount=%s,transaction_uuid=%s,product_code=%s",
		totalAmount, transactionUUID, productCode)
	return s.signString(msg)
}

// VerifyFields recomputes the signature over the signed_field_names order of a
// redirect payload and compares it with the received one.
func (s *EsewaSigner) VerifyFields(fields map[string]string, signedFieldNames, receivedSignature string) bool {
	names := strings.Split(signedFieldNames, ",")
	parts := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		parts = append(parts, name+"="+fields[name])
	}
	expected := s.signString(strings.Join(parts, ","))
	return hmac.Equal([]byte(expected), []byte(receivedSignature))
}

func (s *EsewaSigner) signString(msg string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(msg))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
