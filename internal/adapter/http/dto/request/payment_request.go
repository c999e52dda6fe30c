package request

import (
	"errors"
	"strings"
	"time"

	"associacao_pro/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDueDate = errors.New("invalid due date")
)

const dueDateFormat = "2006-01-02"

type CardRequest struct {
	HolderName  string `json:"holderName"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CCV         string `json:"ccv"`
	Token       string `json:"token"`
}

type CardHolderInfoRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	CpfCnpj       string `json:"cpfCnpj"`
	PostalCode    string `json:"postalCode"`
	AddressNumber string `json:"addressNumber"`
	Phone         string `json:"phone"`
}

// PaymentCreateRequest is one checkout attempt. DueDate is optional
// (yyyy-mm-dd); when absent, the billing type default applies. CreditCard
// is required for CREDIT_CARD and must be absent for the other types.
type PaymentCreateRequest struct {
	CustomerID           string                 `json:"customerId" binding:"required"`
	Value                decimal.Decimal        `json:"value" binding:"required"`
	BillingType          string                 `json:"billingType" binding:"required"`
	Description          string                 `json:"description"`
	ExternalReference    string                 `json:"externalReference"`
	DueDate              string                 `json:"dueDate"`
	CreditCard           *CardRequest           `json:"creditCard"`
	CreditCardHolderInfo *CardHolderInfoRequest `json:"creditCardHolderInfo"`
}

// ResolveDueDate parses the optional due date. A zero time means "use the
// billing type default".
func (r PaymentCreateRequest) ResolveDueDate() (time.Time, error) {
	raw := strings.TrimSpace(r.DueDate)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dueDateFormat, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDueDate
	}
	return t, nil
}

func (r PaymentCreateRequest) ResolveCard() *entities.CardDetails {
	if r.CreditCard == nil {
		return nil
	}
	return &entities.CardDetails{
		HolderName:  r.CreditCard.HolderName,
		Number:      r.CreditCard.Number,
		ExpiryMonth: r.CreditCard.ExpiryMonth,
		ExpiryYear:  r.CreditCard.ExpiryYear,
		CCV:         r.CreditCard.CCV,
		Token:       r.CreditCard.Token,
	}
}

func (r PaymentCreateRequest) ResolveCardHolderInfo() *entities.CardHolderInfo {
	if r.CreditCardHolderInfo == nil {
		return nil
	}
	return &entities.CardHolderInfo{
		Name:          r.CreditCardHolderInfo.Name,
		Email:         r.CreditCardHolderInfo.Email,
		CpfCnpj:       r.CreditCardHolderInfo.CpfCnpj,
		PostalCode:    r.CreditCardHolderInfo.PostalCode,
		AddressNumber: r.CreditCardHolderInfo.AddressNumber,
		Phone:         r.CreditCardHolderInfo.Phone,
	}
}
