package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"associacao_pro/internal/domain/entities"
	"associacao_pro/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCustomerInput = errors.New("invalid customer input")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidBillingType   = errors.New("invalid billing type")
	ErrInvalidPaymentValue  = errors.New("invalid payment value")
	ErrMissingCardDetails   = errors.New("missing card details")
	ErrUnexpectedCardData   = errors.New("card details not allowed for billing type")
	ErrPaymentNotFound      = errors.New("payment not found")
)

const defaultPollInterval = 30 * time.Second

// Due date defaults when the checkout does not pick one: PIX charges expire
// the next day, boleto slips give the payer three days.
const (
	pixDueDays    = 1
	boletoDueDays = 3
)

// CustomerInput is the payer profile forwarded to the gateway. Only
// required-field presence is checked locally; any further rejection comes
// back as a gateway error.
type CustomerInput struct {
	Name          string
	Email         string
	CpfCnpj       string
	Phone         string
	PostalCode    string
	AddressNumber string
}

// PaymentInput is one checkout attempt. A zero DueDate picks the billing
// type's default. Card is required for CREDIT_CARD and rejected otherwise.
type PaymentInput struct {
	CustomerID        string
	Value             decimal.Decimal
	BillingType       entities.BillingType
	Description       string
	ExternalReference string
	DueDate           time.Time
	Card              *entities.CardDetails
	CardHolderInfo    *entities.CardHolderInfo
}

// IPaymentUseCase translates checkout submissions into gateway payments and
// tracks their settlement.
//
//   - CreateCustomer / CreatePayment submit to the gateway; failures
//     propagate unmodified, no retry, no partial state to clean up.
//   - CheckStatus is idempotent and safe to poll.
//   - AwaitSettlement drives the waiting-screen poll loop server-side.

type IPaymentUseCase interface {
	CreateCustomer(ctx context.Context, input CustomerInput) (entities.Customer, error)
	CreatePayment(ctx context.Context, input PaymentInput) (entities.Payment, error)
	CheckStatus(ctx context.Context, paymentID string) (entities.Payment, error)
	AwaitSettlement(ctx context.Context, paymentID string) (entities.Payment, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	gateway      interfaces.IPaymentGateway
	pollInterval time.Duration
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway, pollInterval time.Duration) *PaymentUseCase {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &PaymentUseCase{repo: repo, gateway: gateway, pollInterval: pollInterval}
}

func (u *PaymentUseCase) CreateCustomer(ctx context.Context, input CustomerInput) (entities.Customer, error) {
	if u.gateway == nil {
		return entities.Customer{}, errors.New("payment gateway not configured")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.CpfCnpj = strings.TrimSpace(input.CpfCnpj)
	if input.Name == "" || input.Email == "" || input.CpfCnpj == "" {
		log.Printf("[payment][usecase] invalid customer input name_set=%t email_set=%t cpf_set=%t",
			input.Name != "", input.Email != "", input.CpfCnpj != "")
		return entities.Customer{}, ErrInvalidCustomerInput
	}

	customer, err := u.gateway.CreateCustomer(ctx, entities.Customer{
		Name:          input.Name,
		Email:         input.Email,
		CpfCnpj:       input.CpfCnpj,
		Phone:         strings.TrimSpace(input.Phone),
		PostalCode:    strings.TrimSpace(input.PostalCode),
		AddressNumber: strings.TrimSpace(input.AddressNumber),
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway create-customer failed err=%v", err)
		return entities.Customer{}, err
	}
	log.Printf("[payment][usecase] customer created customer_id=%s", customer.ID)
	return customer, nil
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, input PaymentInput) (entities.Payment, error) {
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}
	if u.repo == nil {
		return entities.Payment{}, errors.New("payment repository not configured")
	}

	input.CustomerID = strings.TrimSpace(input.CustomerID)
	if input.CustomerID == "" {
		return entities.Payment{}, ErrInvalidCustomerID
	}
	if !input.BillingType.Valid() {
		return entities.Payment{}, ErrInvalidBillingType
	}
	if input.Value.LessThanOrEqual(decimal.Zero) {
		return entities.Payment{}, ErrInvalidPaymentValue
	}
	if input.BillingType == entities.BillingTypeCreditCard && input.Card == nil {
		return entities.Payment{}, ErrMissingCardDetails
	}
	if input.BillingType != entities.BillingTypeCreditCard && input.Card != nil {
		return entities.Payment{}, ErrUnexpectedCardData
	}

	dueDate := DueDateFor(input.BillingType, input.DueDate, time.Now().UTC())

	log.Printf("[payment][usecase] create start customer_id=%s billing_type=%s value=%s due_date=%s",
		input.CustomerID, input.BillingType, input.Value, dueDate.Format("2006-01-02"))

	payment, err := u.gateway.CreatePayment(ctx, interfaces.ChargeRequest{
		CustomerID:        input.CustomerID,
		Value:             input.Value,
		BillingType:       input.BillingType,
		Description:       input.Description,
		ExternalReference: input.ExternalReference,
		DueDate:           dueDate,
		Card:              input.Card,
		CardHolderInfo:    input.CardHolderInfo,
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway create failed customer_id=%s err=%v", input.CustomerID, err)
		return entities.Payment{}, err
	}

	created, err := u.repo.Create(ctx, payment)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed payment_id=%s err=%v", payment.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create success payment_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) CheckStatus(ctx context.Context, paymentID string) (entities.Payment, error) {
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	payment, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][usecase] gateway get failed payment_id=%s err=%v", paymentID, err)
		if errors.Is(err, interfaces.ErrGatewayPaymentNotFound) {
			return entities.Payment{}, ErrPaymentNotFound
		}
		return entities.Payment{}, err
	}

	// Best-effort refresh of the history copy; the gateway remains the
	// source of truth for settlement.
	if u.repo != nil {
		if _, err := u.repo.UpdateStatus(ctx, paymentID, payment.Status); err != nil {
			log.Printf("[payment][usecase] status refresh failed payment_id=%s err=%v", paymentID, err)
		}
	}
	return payment, nil
}

// AwaitSettlement polls CheckStatus at the configured interval until the
// payment reaches a terminal status or ctx is cancelled. Cancellation is
// purely client-directed; the gateway record is unaffected by it.
func (u *PaymentUseCase) AwaitSettlement(ctx context.Context, paymentID string) (entities.Payment, error) {
	payment, err := u.CheckStatus(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if payment.Status.Terminal() {
		return payment, nil
	}

	ticker := time.NewTicker(u.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[payment][usecase] await cancelled payment_id=%s err=%v", paymentID, ctx.Err())
			return entities.Payment{}, ctx.Err()
		case <-ticker.C:
			payment, err = u.CheckStatus(ctx, paymentID)
			if err != nil {
				return entities.Payment{}, err
			}
			if payment.Status.Terminal() {
				log.Printf("[payment][usecase] await done payment_id=%s status=%s", paymentID, payment.Status)
				return payment, nil
			}
		}
	}
}

func (u *PaymentUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Payment, error) {
	if u.repo == nil {
		return nil, errors.New("payment repository not configured")
	}
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

// DueDateFor resolves the effective due date of a charge: the caller's
// explicit choice when given, otherwise the billing type default. The
// result carries a date component only.
func DueDateFor(billingType entities.BillingType, requested, now time.Time) time.Time {
	if !requested.IsZero() {
		return truncateToDate(requested)
	}
	switch billingType {
	case entities.BillingTypePix:
		return truncateToDate(now.AddDate(0, 0, pixDueDays))
	case entities.BillingTypeBoleto:
		return truncateToDate(now.AddDate(0, 0, boletoDueDays))
	default:
		return truncateToDate(now)
	}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
