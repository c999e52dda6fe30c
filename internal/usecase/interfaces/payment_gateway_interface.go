package interfaces

import (
	"context"
	"errors"
	"time"

	"associacao_pro/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrGatewayPaymentNotFound is returned by GetPayment when the provider has
// no record of the id.
var ErrGatewayPaymentNotFound = errors.New("payment not found at gateway")

// ChargeRequest is the provider-agnostic payment submission.
//
// DueDate carries a date component only. Card and CardHolderInfo are set
// only for the CREDIT_CARD billing type.
type ChargeRequest struct {
	CustomerID        string
	Value             decimal.Decimal
	BillingType       entities.BillingType
	Description       string
	ExternalReference string
	DueDate           time.Time
	Card              *entities.CardDetails
	CardHolderInfo    *entities.CardHolderInfo
}

// IPaymentGateway abstracts external payment providers.
//
// The billing-service uses it to register payers, create charges and read
// settlement status. Implementations: the in-memory mock provider (default)
// and Mercado Pago.
type IPaymentGateway interface {
	CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error)
	CreatePayment(ctx context.Context, req ChargeRequest) (entities.Payment, error)
	GetPayment(ctx context.Context, paymentID string) (entities.Payment, error)
}
