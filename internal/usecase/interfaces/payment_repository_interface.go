package interfaces

import (
	"context"

	"associacao_pro/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// The gateway stays the source of truth for settlement; the local table is
// an audit/history copy backing the member's payment history listing.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Payment, error)
}
