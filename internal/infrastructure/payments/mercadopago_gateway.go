package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"associacao_pro/internal/domain/entities"
	"associacao_pro/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/customer"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway implements IPaymentGateway on top of the Mercado Pago
// SDK. Billing types map to Mercado Pago payment methods: PIX => pix,
// BOLETO => bolbradesco, CREDIT_CARD => a pre-tokenized card (the SDK does
// not accept raw card numbers, so CardDetails.Token must be set).
type MercadoPagoGateway struct {
	payments  payment.Client
	customers customer.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments:  payment.NewClient(cfg),
		customers: customer.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	first, last := splitName(c.Name)
	req := customer.Request{
		Email:     c.Email,
		FirstName: first,
		LastName:  last,
	}
	if c.CpfCnpj != "" {
		req.Identification = &customer.IdentificationRequest{Type: identificationType(c.CpfCnpj), Number: c.CpfCnpj}
	}

	resp, err := g.customers.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk customer create failed err=%v", err)
		return entities.Customer{}, err
	}
	log.Printf("[payment][gateway] customer create success customer_id=%s", resp.ID)

	c.ID = resp.ID
	return c, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req interfaces.ChargeRequest) (entities.Payment, error) {
	mpReq := payment.Request{
		TransactionAmount: req.Value.InexactFloat64(),
		Description:       req.Description,
		ExternalReference: req.ExternalReference,
		Payer: &payment.PayerRequest{
			Type: "customer",
			ID:   req.CustomerID,
		},
	}

	switch req.BillingType {
	case entities.BillingTypePix:
		mpReq.PaymentMethodID = "pix"
	case entities.BillingTypeBoleto:
		mpReq.PaymentMethodID = "bolbradesco"
	case entities.BillingTypeCreditCard:
		if req.Card == nil || req.Card.Token == "" {
			return entities.Payment{}, errors.New("mercado pago requires a pre-tokenized card")
		}
		mpReq.Token = req.Card.Token
		mpReq.Installments = 1
	}

	log.Printf("[payment][gateway] create start customer_id=%s billing_type=%s", req.CustomerID, req.BillingType)
	resp, err := g.payments.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return toPayment(resp, req), nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.Payment, error) {
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		// Mercado Pago ids are numeric; anything else cannot exist there.
		return entities.Payment{}, fmt.Errorf("mercado pago: non-numeric id %q: %w", paymentID, interfaces.ErrGatewayPaymentNotFound)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed payment_id=%s err=%v", paymentID, err)
		if strings.Contains(err.Error(), "404") {
			return entities.Payment{}, fmt.Errorf("mercado pago: payment %s: %w", paymentID, interfaces.ErrGatewayPaymentNotFound)
		}
		return entities.Payment{}, err
	}
	return toPayment(resp, interfaces.ChargeRequest{}), nil
}

func toPayment(resp *payment.Response, req interfaces.ChargeRequest) entities.Payment {
	p := entities.Payment{
		ID:                fmt.Sprintf("%d", resp.ID),
		CustomerID:        req.CustomerID,
		Value:             decimal.NewFromFloat(resp.TransactionAmount),
		NetValue:          decimal.NewFromFloat(resp.TransactionDetails.NetReceivedAmount),
		BillingType:       req.BillingType,
		Status:            mapStatus(resp.Status),
		DueDate:           req.DueDate,
		Description:       resp.Description,
		ExternalReference: resp.ExternalReference,
		Date:              resp.DateCreated,
		PixQrCode:         resp.PointOfInteraction.TransactionData.QRCode,
		BankSlipURL:       resp.TransactionDetails.ExternalResourceURL,
	}

	if raw, err := json.Marshal(resp); err == nil {
		p.ProviderPayloadRaw = raw
		var parsed map[string]interface{}
		if err := json.Unmarshal(raw, &parsed); err == nil {
			p.ProviderPayload = parsed
		}
	}
	return p
}

// mapStatus folds Mercado Pago statuses into the gateway-facing set the
// rest of the service understands.
func mapStatus(s string) entities.PaymentStatus {
	switch strings.ToLower(s) {
	case "approved":
		return entities.PaymentStatusConfirmed
	case "refunded", "charged_back":
		return entities.PaymentStatusRefunded
	case "rejected", "cancelled":
		return entities.PaymentStatusFailed
	default:
		return entities.PaymentStatusPending
	}
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// CPF has 11 digits, CNPJ 14.
func identificationType(cpfCnpj string) string {
	digits := 0
	for _, r := range cpfCnpj {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits > 11 {
		return "CNPJ"
	}
	return "CPF"
}
