package entities

import "time"

// CredentialStatus is the lifecycle state of an issued credential.
//
// Credentials are logically immutable after issuance; there is no
// revocation flow in the billing service, so ACTIVE is the only state
// written today. Expiry is derived from ExpiresAt, not from status.

type CredentialStatus string

const (
	CredentialStatusActive CredentialStatus = "active"
)

// Credential is the digitally issued membership proof.
//
// Storage model (DynamoDB):
//   - PK: payment_id (enforces at most one credential per settled payment)
//   - GSI1 (id-index): id (validation lookups arrive with the credential id)
//
// QRCode holds the validation URL encoded into the member's QR badge;
// VerificationToken is the opaque secret embedded in that URL.

type Credential struct {
	ID                string           `json:"id"`
	PaymentID         string           `json:"payment_id"`
	SubjectName       string           `json:"subject_name"`
	SubjectRole       string           `json:"subject_role"`
	SubjectEmail      string           `json:"subject_email"`
	PhotoRef          string           `json:"photo_ref,omitempty"`
	QRCode            string           `json:"qr_code"`
	IssuedAt          time.Time        `json:"issued_at"`
	ExpiresAt         time.Time        `json:"expires_at"`
	VerificationToken string           `json:"verification_token"`
	Status            CredentialStatus `json:"status"`
}

// Expired reports whether the credential's validity window has closed at
// the given instant.
func (c Credential) Expired(at time.Time) bool {
	return !at.Before(c.ExpiresAt)
}
