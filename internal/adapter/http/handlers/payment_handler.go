package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	request "associacao_pro/internal/adapter/http/dto/request"
	response "associacao_pro/internal/adapter/http/dto/response"
	"associacao_pro/internal/domain/entities"
	"associacao_pro/internal/usecase"
	"associacao_pro/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

const (
	defaultSettlementWait = 90 * time.Second
	maxSettlementWait     = 5 * time.Minute
)

// PaymentHandler handles HTTP requests for customers and payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateCustomer registers a payer at the payment gateway.
//
// @Summary  Create a gateway customer
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    customer body request.CustomerCreateRequest true "payer profile"
// @Success  201 {object} response.CustomerResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /customers [post]
func (h *PaymentHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.CreateCustomer(c.Request.Context(), usecase.CustomerInput{
		Name:          payload.Name,
		Email:         payload.Email,
		CpfCnpj:       payload.CpfCnpj,
		Phone:         payload.Phone,
		PostalCode:    payload.PostalCode,
		AddressNumber: payload.AddressNumber,
	})
	if err != nil {
		log.Printf("[payment][handler] create-customer failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

// CreatePayment submits one checkout attempt to the gateway.
//
// @Summary  Create a payment
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    payment body request.PaymentCreateRequest true "checkout attempt"
// @Success  201 {object} response.PaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	dueDate, err := payload.ResolveDueDate()
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create start customer_id=%s billing_type=%s", payload.CustomerID, payload.BillingType)
	created, err := h.usecase.CreatePayment(c.Request.Context(), usecase.PaymentInput{
		CustomerID:        payload.CustomerID,
		Value:             payload.Value,
		BillingType:       entities.BillingType(payload.BillingType),
		Description:       payload.Description,
		ExternalReference: payload.ExternalReference,
		DueDate:           dueDate,
		Card:              payload.ResolveCard(),
		CardHolderInfo:    payload.ResolveCardHolderInfo(),
	})
	if err != nil {
		log.Printf("[payment][handler] create failed customer_id=%s err=%v", payload.CustomerID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success payment_id=%s status=%s", created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// GetPayment returns the gateway's current view of a payment. Safe to poll.
//
// @Summary  Check payment status
// @Tags     payments
// @Produce  json
// @Param    payment_id path string true "payment id"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	payment, err := h.usecase.CheckStatus(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] check-status failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// AwaitSettlement long-polls the gateway until the payment reaches a
// terminal status or the wait window closes. Navigating away from the
// waiting screen cancels the request and with it the poll loop.
//
// @Summary  Wait for settlement
// @Tags     payments
// @Produce  json
// @Param    payment_id path string true "payment id"
// @Param    timeout query string false "wait window (e.g. 60s), capped at 5m"
// @Success  200 {object} response.PaymentResponse
// @Success  202 {object} response.PaymentResponse "still pending when the window closed"
// @Router   /payments/{payment_id}/settlement [get]
func (h *PaymentHandler) AwaitSettlement(c *gin.Context) {
	paymentID := c.Param("payment_id")

	wait := defaultSettlementWait
	if raw := c.Query("timeout"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
			return
		}
		if parsed > maxSettlementWait {
			parsed = maxSettlementWait
		}
		wait = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), wait)
	defer cancel()

	payment, err := h.usecase.AwaitSettlement(ctx, paymentID)
	if errors.Is(err, context.DeadlineExceeded) {
		// The window closed with the payment still pending; the caller can
		// come back.
		current, checkErr := h.usecase.CheckStatus(c.Request.Context(), paymentID)
		if checkErr != nil {
			appErr := mapPaymentError(checkErr)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusAccepted, response.FromPayment(current))
		return
	}
	if err != nil {
		log.Printf("[payment][handler] await-settlement failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// ListPayments returns the payment history of a customer.
//
// @Summary  List payments by customer
// @Tags     payments
// @Produce  json
// @Param    customer_id query string true "gateway customer id"
// @Success  200 {array} response.PaymentResponse
// @Router   /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	customerID := c.Query("customer_id")

	payments, err := h.usecase.ListByCustomerID(c.Request.Context(), customerID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerInput),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidBillingType),
		errors.Is(err, usecase.ErrInvalidPaymentValue),
		errors.Is(err, usecase.ErrMissingCardDetails),
		errors.Is(err, usecase.ErrUnexpectedCardData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
