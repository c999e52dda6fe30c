package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"associacao_pro/internal/domain/entities"
	"associacao_pro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSubject      = errors.New("invalid credential subject")
	ErrInvalidCredentialID = errors.New("invalid credential id")
	ErrCredentialNotFound  = errors.New("credential not found")
)

const (
	// Membership credentials are valid for one year from issuance.
	credentialValidityYears = 1

	verificationTokenBytes = 16
)

// Subject identifies the member a credential is issued to.
type Subject struct {
	Name     string
	Role     string
	Email    string
	PhotoRef string
}

// IssuanceResult is the outcome of VerifyAndIssue. A pending payment is a
// valid outcome, not an error: Issued is false and Status carries the
// gateway's current state so the caller can keep polling.
type IssuanceResult struct {
	Issued     bool
	Status     entities.PaymentStatus
	Credential entities.Credential
}

// ValidationResult is the outcome of a QR credential check.
type ValidationResult struct {
	Valid      bool
	Message    string
	Credential entities.Credential
}

// ICredentialUseCase gates credential creation on payment settlement and
// answers QR validation lookups.
//
// Invariant: a credential is never created for a payment the gateway does
// not report as settled, and each payment yields at most one credential.

type ICredentialUseCase interface {
	VerifyAndIssue(ctx context.Context, paymentID string, subject Subject) (IssuanceResult, error)
	Validate(ctx context.Context, id, token string) (ValidationResult, error)
	GetByID(ctx context.Context, id string) (entities.Credential, error)
}

type CredentialUseCase struct {
	repo              interfaces.ICredentialRepository
	gateway           interfaces.IPaymentGateway
	validationBaseURL string
}

var _ ICredentialUseCase = (*CredentialUseCase)(nil)

func NewCredentialUseCase(repo interfaces.ICredentialRepository, gateway interfaces.IPaymentGateway, validationBaseURL string) *CredentialUseCase {
	return &CredentialUseCase{repo: repo, gateway: gateway, validationBaseURL: strings.TrimRight(validationBaseURL, "/")}
}

func (u *CredentialUseCase) VerifyAndIssue(ctx context.Context, paymentID string, subject Subject) (IssuanceResult, error) {
	if u.gateway == nil {
		return IssuanceResult{}, errors.New("payment gateway not configured")
	}
	if u.repo == nil {
		return IssuanceResult{}, errors.New("credential repository not configured")
	}

	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return IssuanceResult{}, ErrInvalidPaymentID
	}
	subject.Name = strings.TrimSpace(subject.Name)
	subject.Email = strings.TrimSpace(subject.Email)
	if subject.Name == "" || subject.Email == "" {
		return IssuanceResult{}, ErrInvalidSubject
	}

	// A credential can only exist if the payment already settled, so a hit
	// here short-circuits the gateway round trip.
	if existing, err := u.repo.GetByPaymentID(ctx, paymentID); err != nil {
		return IssuanceResult{}, err
	} else if existing.ID != "" {
		log.Printf("[credential][usecase] already issued payment_id=%s credential_id=%s", paymentID, existing.ID)
		return IssuanceResult{Issued: true, Credential: existing}, nil
	}

	payment, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[credential][usecase] gateway get failed payment_id=%s err=%v", paymentID, err)
		if errors.Is(err, interfaces.ErrGatewayPaymentNotFound) {
			return IssuanceResult{}, ErrPaymentNotFound
		}
		return IssuanceResult{}, err
	}

	if !payment.Status.Settled() {
		log.Printf("[credential][usecase] payment not settled payment_id=%s status=%s", paymentID, payment.Status)
		return IssuanceResult{Issued: false, Status: payment.Status}, nil
	}

	credential, err := u.issue(subject, paymentID)
	if err != nil {
		return IssuanceResult{}, err
	}

	created, err := u.repo.Create(ctx, credential)
	if errors.Is(err, interfaces.ErrCredentialConflict) {
		// Lost the race against a concurrent issuance; the stored one wins.
		existing, getErr := u.repo.GetByPaymentID(ctx, paymentID)
		if getErr != nil {
			return IssuanceResult{}, getErr
		}
		log.Printf("[credential][usecase] issuance conflict resolved payment_id=%s credential_id=%s", paymentID, existing.ID)
		return IssuanceResult{Issued: true, Status: payment.Status, Credential: existing}, nil
	}
	if err != nil {
		log.Printf("[credential][usecase] repository create failed payment_id=%s err=%v", paymentID, err)
		return IssuanceResult{}, err
	}

	log.Printf("[credential][usecase] issued payment_id=%s credential_id=%s expires_at=%s",
		paymentID, created.ID, created.ExpiresAt.Format(time.RFC3339))
	return IssuanceResult{Issued: true, Status: payment.Status, Credential: created}, nil
}

// issue assembles a new credential: issuedAt = now, expiresAt = issuedAt
// plus one year, a UUIDv4 id and a random verification token embedded in
// the QR validation URL.
func (u *CredentialUseCase) issue(subject Subject, paymentID string) (entities.Credential, error) {
	issuedAt := time.Now().UTC()

	token, err := newVerificationToken()
	if err != nil {
		return entities.Credential{}, err
	}
	id := uuid.NewString()

	return entities.Credential{
		ID:                id,
		PaymentID:         paymentID,
		SubjectName:       subject.Name,
		SubjectRole:       subject.Role,
		SubjectEmail:      subject.Email,
		PhotoRef:          subject.PhotoRef,
		QRCode:            u.validationURL(id, token),
		IssuedAt:          issuedAt,
		ExpiresAt:         issuedAt.AddDate(credentialValidityYears, 0, 0),
		VerificationToken: token,
		Status:            entities.CredentialStatusActive,
	}, nil
}

func (u *CredentialUseCase) Validate(ctx context.Context, id, token string) (ValidationResult, error) {
	if u.repo == nil {
		return ValidationResult{}, errors.New("credential repository not configured")
	}

	id = strings.TrimSpace(id)
	token = strings.TrimSpace(token)
	if id == "" || token == "" {
		return ValidationResult{Valid: false, Message: "Credential id and token are required"}, nil
	}

	credential, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[credential][usecase] validate lookup failed credential_id=%s err=%v", id, err)
		return ValidationResult{}, err
	}
	if credential.ID == "" {
		return ValidationResult{Valid: false, Message: "Credential not found"}, nil
	}

	if subtle.ConstantTimeCompare([]byte(credential.VerificationToken), []byte(token)) != 1 {
		return ValidationResult{Valid: false, Message: "Verification token does not match"}, nil
	}
	if credential.Status != entities.CredentialStatusActive || credential.Expired(time.Now().UTC()) {
		return ValidationResult{Valid: false, Message: "Credential inactive or expired"}, nil
	}

	return ValidationResult{Valid: true, Message: "Credential is valid", Credential: credential}, nil
}

func (u *CredentialUseCase) GetByID(ctx context.Context, id string) (entities.Credential, error) {
	if u.repo == nil {
		return entities.Credential{}, errors.New("credential repository not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Credential{}, ErrInvalidCredentialID
	}

	credential, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Credential{}, err
	}
	if credential.ID == "" {
		return entities.Credential{}, ErrCredentialNotFound
	}
	return credential, nil
}

func (u *CredentialUseCase) validationURL(id, token string) string {
	q := url.Values{}
	q.Set("id", id)
	q.Set("token", token)
	return fmt.Sprintf("%s?%s", u.validationBaseURL, q.Encode())
}

func newVerificationToken() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
