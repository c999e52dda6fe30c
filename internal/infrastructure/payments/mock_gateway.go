package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"associacao_pro/internal/domain/entities"
	"associacao_pro/internal/usecase/interfaces"
)

// MockGateway is the in-memory stand-in for the payment provider used in
// development and tests.
//
// Behavior mirrors the provider stub the portal was built against:
//   - card charges are approved synchronously;
//   - PIX and boleto charges start PENDING and settle on the next status
//     read (AutoSettle), so waiting screens observe the PENDING→CONFIRMED
//     transition without a real provider. Set AutoSettle to false to keep
//     payments pending until Settle is called.
type MockGateway struct {
	mu         sync.Mutex
	customers  map[string]entities.Customer
	payments   map[string]entities.Payment
	AutoSettle bool
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	return &MockGateway{
		customers:  make(map[string]entities.Customer),
		payments:   make(map[string]entities.Payment),
		AutoSettle: true,
	}
}

func (g *MockGateway) CreateCustomer(_ context.Context, c entities.Customer) (entities.Customer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c.ID = mockID("cus")
	g.customers[c.ID] = c
	log.Printf("[payment][gateway] mock customer created customer_id=%s", c.ID)
	return c, nil
}

func (g *MockGateway) CreatePayment(_ context.Context, req interfaces.ChargeRequest) (entities.Payment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.customers[req.CustomerID]; !ok {
		return entities.Payment{}, fmt.Errorf("mock gateway: customer %s not found", req.CustomerID)
	}

	id := mockID("pay")
	status := entities.PaymentStatusPending
	if req.BillingType == entities.BillingTypeCreditCard {
		status = entities.PaymentStatusConfirmed
	}

	p := entities.Payment{
		ID:                id,
		CustomerID:        req.CustomerID,
		Value:             req.Value,
		NetValue:          req.Value,
		BillingType:       req.BillingType,
		Status:            status,
		DueDate:           req.DueDate,
		Description:       req.Description,
		ExternalReference: req.ExternalReference,
		Date:              time.Now().UTC(),
	}
	switch req.BillingType {
	case entities.BillingTypePix:
		p.PixQrCode = fmt.Sprintf("https://example.com/pix/%s", id)
	case entities.BillingTypeBoleto:
		p.BankSlipURL = fmt.Sprintf("https://example.com/boleto/%s", id)
	}
	attachMockPayload(&p)

	g.payments[id] = p
	log.Printf("[payment][gateway] mock create success payment_id=%s billing_type=%s status=%s", id, p.BillingType, p.Status)
	return p, nil
}

func (g *MockGateway) GetPayment(_ context.Context, paymentID string) (entities.Payment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.payments[paymentID]
	if !ok {
		return entities.Payment{}, fmt.Errorf("mock gateway: payment %s: %w", paymentID, interfaces.ErrGatewayPaymentNotFound)
	}

	if g.AutoSettle && p.Status == entities.PaymentStatusPending {
		p.Status = entities.PaymentStatusConfirmed
		attachMockPayload(&p)
		g.payments[paymentID] = p
	}
	return p, nil
}

// Settle marks a pending payment as confirmed, for tests that drive the
// transition manually.
func (g *MockGateway) Settle(paymentID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if p, ok := g.payments[paymentID]; ok && !p.Status.Terminal() {
		p.Status = entities.PaymentStatusConfirmed
		attachMockPayload(&p)
		g.payments[paymentID] = p
	}
}

func attachMockPayload(p *entities.Payment) {
	payload := map[string]interface{}{
		"id":       p.ID,
		"status":   string(p.Status),
		"value":    p.Value.InexactFloat64(),
		"netValue": p.NetValue.InexactFloat64(),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	p.ProviderPayload = payload
	p.ProviderPayloadRaw = raw
}

func mockID(prefix string) string {
	return fmt.Sprintf("%s_%s%s", prefix,
		strconv.FormatInt(time.Now().UTC().UnixNano(), 36),
		strconv.FormatInt(rand.Int63n(36*36*36), 36))
}
