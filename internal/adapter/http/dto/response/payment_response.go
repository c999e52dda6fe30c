package response

import (
	"time"

	"associacao_pro/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customer_id"`
	Value             decimal.Decimal `json:"value"`
	NetValue          decimal.Decimal `json:"net_value"`
	BillingType       string          `json:"billing_type"`
	Status            string          `json:"status"`
	DueDate           string          `json:"due_date"`
	Description       string          `json:"description,omitempty"`
	ExternalReference string          `json:"external_reference,omitempty"`
	PixQrCode         string          `json:"pix_qr_code,omitempty"`
	BankSlipURL       string          `json:"bank_slip_url,omitempty"`
	Date              time.Time       `json:"date"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		CustomerID:        p.CustomerID,
		Value:             p.Value,
		NetValue:          p.NetValue,
		BillingType:       string(p.BillingType),
		Status:            string(p.Status),
		DueDate:           p.DueDate.Format("2006-01-02"),
		Description:       p.Description,
		ExternalReference: p.ExternalReference,
		PixQrCode:         p.PixQrCode,
		BankSlipURL:       p.BankSlipURL,
		Date:              p.Date,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
