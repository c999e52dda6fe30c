package interfaces

import (
	"context"
	"errors"

	"associacao_pro/internal/domain/entities"
)

// ErrCredentialConflict is returned by Create when a credential already
// exists for the same payment id. Implementations map their storage-level
// uniqueness violation (e.g. a DynamoDB conditional check failure) to it.
var ErrCredentialConflict = errors.New("credential already exists for payment")

// ICredentialRepository abstracts DynamoDB persistence for Credential.
//
// The payment id is the partition key, so Create doubles as the
// at-most-once issuance guard.
type ICredentialRepository interface {
	Create(ctx context.Context, c entities.Credential) (entities.Credential, error)
	GetByID(ctx context.Context, id string) (entities.Credential, error)
	GetByPaymentID(ctx context.Context, paymentID string) (entities.Credential, error)
}
