package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// BillingType selects how a member pays for a membership charge.
//
// The values mirror the gateway's billing type strings:
//   - CREDIT_CARD settles synchronously when the card is approved.
//   - PIX is an instant transfer paid through a QR code.
//   - BOLETO is a deferred bank slip with a multi-day settlement window.

type BillingType string

const (
	BillingTypeCreditCard BillingType = "CREDIT_CARD"
	BillingTypePix        BillingType = "PIX"
	BillingTypeBoleto     BillingType = "BOLETO"
)

func (b BillingType) Valid() bool {
	switch b {
	case BillingTypeCreditCard, BillingTypePix, BillingTypeBoleto:
		return true
	}
	return false
}

// PaymentStatus carries the gateway's settlement state verbatim.
//
// Settlement is gateway-driven; this service only reads it. The settled
// family (CONFIRMED, RECEIVED, RECEIVED_IN_CASH) is the sole precondition
// for credential issuance.

type PaymentStatus string

const (
	PaymentStatusPending        PaymentStatus = "PENDING"
	PaymentStatusConfirmed      PaymentStatus = "CONFIRMED"
	PaymentStatusReceived       PaymentStatus = "RECEIVED"
	PaymentStatusReceivedInCash PaymentStatus = "RECEIVED_IN_CASH"
	PaymentStatusOverdue        PaymentStatus = "OVERDUE"
	PaymentStatusRefunded       PaymentStatus = "REFUNDED"
	PaymentStatusFailed         PaymentStatus = "FAILED"
)

// Settled reports whether the gateway considers the payment received.
func (s PaymentStatus) Settled() bool {
	switch s {
	case PaymentStatusConfirmed, PaymentStatusReceived, PaymentStatusReceivedInCash:
		return true
	}
	return false
}

// Terminal reports whether a poll loop can stop watching this payment.
// PENDING (and OVERDUE, which the gateway may still settle) keep polling.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusOverdue:
		return false
	}
	return true
}

// CardDetails is the CARD-only variant payload of a payment request.
//
// Token is optional and carries a provider-issued card token for gateways
// that refuse raw card numbers (e.g. Mercado Pago).
type CardDetails struct {
	HolderName  string `json:"holderName"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CCV         string `json:"ccv"`
	Token       string `json:"token,omitempty"`
}

// CardHolderInfo identifies the card holder for anti-fraud checks.
type CardHolderInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	CpfCnpj       string `json:"cpfCnpj"`
	PostalCode    string `json:"postalCode"`
	AddressNumber string `json:"addressNumber"`
	Phone         string `json:"phone"`
}

// Payment is the gateway-assigned payment record persisted for history.
//
// Storage model (DynamoDB):
//   - PK: id (gateway-assigned opaque string)
//   - GSI1 (customer_id-index): customer_id
//
// Gateway payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability.
//   - ProviderPayload is an optional parsed representation.
//
// PixQrCode and BankSlipURL are display-only artifacts returned for the
// PIX and BOLETO billing types respectively.

type Payment struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customer_id"`
	Value             decimal.Decimal `json:"value"`
	NetValue          decimal.Decimal `json:"net_value"`
	BillingType       BillingType     `json:"billing_type"`
	Status            PaymentStatus   `json:"status"`
	DueDate           time.Time       `json:"due_date"`
	Description       string          `json:"description"`
	ExternalReference string          `json:"external_reference,omitempty"`
	PixQrCode         string          `json:"pix_qr_code,omitempty"`
	BankSlipURL       string          `json:"bank_slip_url,omitempty"`
	Date              time.Time       `json:"date"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
