package handlers

import (
	"errors"
	"log"
	"net/http"

	request "associacao_pro/internal/adapter/http/dto/request"
	response "associacao_pro/internal/adapter/http/dto/response"
	"associacao_pro/internal/usecase"
	"associacao_pro/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCredentialPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// CredentialHandler handles HTTP requests for membership credentials.

type CredentialHandler struct {
	usecase usecase.ICredentialUseCase
}

func NewCredentialHandler(uc usecase.ICredentialUseCase) *CredentialHandler {
	return &CredentialHandler{usecase: uc}
}

// Issue checks the payment with the gateway and, if it settled, issues the
// membership credential. Calling it again for the same payment returns the
// already-issued credential.
//
// @Summary  Issue a credential for a settled payment
// @Tags     credentials
// @Accept   json
// @Produce  json
// @Param    payment_id path string true "payment id"
// @Param    subject body request.CredentialIssueRequest true "member the credential is made out to"
// @Success  200 {object} response.IssuanceResponse "credential issued (or already issued)"
// @Success  202 {object} response.IssuanceResponse "payment not settled yet"
// @Failure  400 {object} pkg.HTTPError
// @Router   /credentials/{payment_id} [post]
func (h *CredentialHandler) Issue(c *gin.Context) {
	paymentID := c.Param("payment_id")

	var payload request.CredentialIssueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCredentialPayload.HTTPStatus, errInvalidCredentialPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.VerifyAndIssue(c.Request.Context(), paymentID, usecase.Subject{
		Name:     payload.Name,
		Role:     payload.Profession,
		Email:    payload.Email,
		PhotoRef: payload.Photo,
	})
	if err != nil {
		log.Printf("[credential][handler] issue failed payment_id=%s err=%v", paymentID, err)
		appErr := mapCredentialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !result.Issued {
		log.Printf("[credential][handler] issue deferred payment_id=%s status=%s", paymentID, result.Status)
		c.JSON(http.StatusAccepted, response.FromIssuance(result))
		return
	}

	log.Printf("[credential][handler] issue success payment_id=%s credential_id=%s", paymentID, result.Credential.ID)
	c.JSON(http.StatusOK, response.FromIssuance(result))
}

// Validate answers the QR-code check. An unknown id or a bad token is a
// valid=false response, not an error status.
//
// @Summary  Validate a credential by id and verification token
// @Tags     credentials
// @Produce  json
// @Param    id query string true "credential id"
// @Param    token query string true "verification token"
// @Success  200 {object} response.ValidationResponse
// @Router   /credentials/validation [get]
func (h *CredentialHandler) Validate(c *gin.Context) {
	id := c.Query("id")
	token := c.Query("token")

	result, err := h.usecase.Validate(c.Request.Context(), id, token)
	if err != nil {
		log.Printf("[credential][handler] validate failed credential_id=%s err=%v", id, err)
		appErr := mapCredentialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromValidation(result))
}

// Get returns a credential to its owner, including the QR payload.
//
// @Summary  Get a credential by id
// @Tags     credentials
// @Produce  json
// @Param    id path string true "credential id"
// @Success  200 {object} response.CredentialResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /credentials/{id} [get]
func (h *CredentialHandler) Get(c *gin.Context) {
	id := c.Param("id")

	credential, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapCredentialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCredential(credential))
}

func mapCredentialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubject),
		errors.Is(err, usecase.ErrInvalidCredentialID),
		errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCredentialNotFound):
		return pkg.NewDomainErrorSimple("CREDENTIAL_NOT_FOUND", "Credential not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
