package response

import (
	"time"

	"associacao_pro/internal/domain/entities"
	"associacao_pro/internal/usecase"
)

// CredentialResponse is returned to the credential's owner. QRCode embeds
// the verification token, so this shape is only for the issue/get flows.
type CredentialResponse struct {
	ID           string    `json:"id"`
	PaymentID    string    `json:"payment_id"`
	SubjectName  string    `json:"subject_name"`
	SubjectRole  string    `json:"subject_role,omitempty"`
	SubjectEmail string    `json:"subject_email"`
	PhotoRef     string    `json:"photo_ref,omitempty"`
	QRCode       string    `json:"qr_code"`
	IssuedAt     time.Time `json:"issued_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	Status       string    `json:"status"`
}

func FromCredential(c entities.Credential) CredentialResponse {
	return CredentialResponse{
		ID:           c.ID,
		PaymentID:    c.PaymentID,
		SubjectName:  c.SubjectName,
		SubjectRole:  c.SubjectRole,
		SubjectEmail: c.SubjectEmail,
		PhotoRef:     c.PhotoRef,
		QRCode:       c.QRCode,
		IssuedAt:     c.IssuedAt,
		ExpiresAt:    c.ExpiresAt,
		Status:       string(c.Status),
	}
}

// IssuanceResponse reports a verify-and-issue outcome. Credential is only
// set when Issued is true; otherwise PaymentStatus tells the caller why.
type IssuanceResponse struct {
	Issued        bool                `json:"issued"`
	PaymentStatus string              `json:"payment_status,omitempty"`
	Credential    *CredentialResponse `json:"credential,omitempty"`
}

func FromIssuance(r usecase.IssuanceResult) IssuanceResponse {
	out := IssuanceResponse{Issued: r.Issued, PaymentStatus: string(r.Status)}
	if r.Issued {
		c := FromCredential(r.Credential)
		out.Credential = &c
	}
	return out
}

// ValidationSubject is the public subset shown to whoever scans a badge.
type ValidationSubject struct {
	SubjectName string    `json:"subject_name"`
	SubjectRole string    `json:"subject_role,omitempty"`
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ValidationResponse deliberately omits the verification token and QR
// payload: validators only learn whether the badge is genuine.
type ValidationResponse struct {
	Valid      bool               `json:"valid"`
	Message    string             `json:"message"`
	Credential *ValidationSubject `json:"credential,omitempty"`
}

func FromValidation(r usecase.ValidationResult) ValidationResponse {
	out := ValidationResponse{Valid: r.Valid, Message: r.Message}
	if r.Valid {
		out.Credential = &ValidationSubject{
			SubjectName: r.Credential.SubjectName,
			SubjectRole: r.Credential.SubjectRole,
			IssuedAt:    r.Credential.IssuedAt,
			ExpiresAt:   r.Credential.ExpiresAt,
		}
	}
	return out
}
