package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"associacao_pro/internal/adapter/http/handlers/mocks"
	"associacao_pro/internal/domain/entities"
	"associacao_pro/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreateCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"João Silva"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		uc.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(entities.Customer{}, usecase.ErrInvalidCustomerInput)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"  ","email":"a@b.c","cpfCnpj":"24971563792"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		uc.EXPECT().CreateCustomer(gomock.Any(), usecase.CustomerInput{
			Name:    "João Silva",
			Email:   "joao@example.com",
			CpfCnpj: "24971563792",
		}).Return(entities.Customer{ID: "cus_1", Name: "João Silva", Email: "joao@example.com", CpfCnpj: "24971563792"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"João Silva","email":"joao@example.com","cpfCnpj":"24971563792"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "cus_1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.CreatePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.CreatePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"customerId":"cus_1","value":49.9,"billingType":"PIX","dueDate":"31/12/2026"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.CreatePayment)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrMissingCardDetails)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"customerId":"cus_1","value":49.9,"billingType":"CREDIT_CARD"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.CreatePayment)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("gateway offline"))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"customerId":"cus_1","value":49.9,"billingType":"PIX"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.CreatePayment)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, input usecase.PaymentInput) (entities.Payment, error) {
			if input.CustomerID != "cus_1" || input.BillingType != entities.BillingTypePix {
				t.Fatalf("unexpected input: %+v", input)
			}
			if !input.Value.Equal(decimal.NewFromFloat(399.90)) {
				t.Fatalf("unexpected value: %s", input.Value)
			}
			return entities.Payment{
				ID:          "pay_1",
				CustomerID:  input.CustomerID,
				Value:       input.Value,
				BillingType: input.BillingType,
				Status:      entities.PaymentStatusPending,
				DueDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				PixQrCode:   "https://example.com/pix/pay_1",
			}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"customerId":"cus_1","value":399.90,"billingType":"PIX"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay_1" || body["status"] != "PENDING" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["pix_qr_code"] != "https://example.com/pix/pay_1" {
			t.Fatalf("expected pix qr code in response, got: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:payment_id", h.GetPayment)

		uc.EXPECT().CheckStatus(gomock.Any(), "missing").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:payment_id", h.GetPayment)

		uc.EXPECT().CheckStatus(gomock.Any(), "pay_1").Return(entities.Payment{ID: "pay_1", Status: entities.PaymentStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "CONFIRMED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_AwaitSettlement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:payment_id/settlement", h.AwaitSettlement)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay_1/settlement?timeout=soon", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("settled within the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:payment_id/settlement", h.AwaitSettlement)

		uc.EXPECT().AwaitSettlement(gomock.Any(), "pay_1").Return(entities.Payment{ID: "pay_1", Status: entities.PaymentStatusReceived}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay_1/settlement?timeout=2s", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("window closes while pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:payment_id/settlement", h.AwaitSettlement)

		uc.EXPECT().AwaitSettlement(gomock.Any(), "pay_1").DoAndReturn(func(ctx context.Context, _ string) (entities.Payment, error) {
			<-ctx.Done()
			return entities.Payment{}, ctx.Err()
		})
		uc.EXPECT().CheckStatus(gomock.Any(), "pay_1").Return(entities.Payment{ID: "pay_1", Status: entities.PaymentStatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay_1/settlement?timeout=10ms", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "PENDING" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing customer id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments", h.ListPayments)

		uc.EXPECT().ListByCustomerID(gomock.Any(), "").Return(nil, usecase.ErrInvalidCustomerID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments", h.ListPayments)

		uc.EXPECT().ListByCustomerID(gomock.Any(), "cus_1").Return([]entities.Payment{
			{ID: "pay_1", CustomerID: "cus_1", Status: entities.PaymentStatusConfirmed},
			{ID: "pay_2", CustomerID: "cus_1", Status: entities.PaymentStatusPending},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments?customer_id=cus_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["id"] != "pay_1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	if got := mapPaymentError(usecase.ErrInvalidBillingType); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrInvalidPaymentValue); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrUnexpectedCardData); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrPaymentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPaymentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
