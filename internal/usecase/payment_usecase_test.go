package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"associacao_pro/internal/domain/entities"
	"associacao_pro/internal/usecase/interfaces"
	mock_interfaces "associacao_pro/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreateCustomer(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway, 0)

		for _, input := range []CustomerInput{
			{Email: "joao@x.com", CpfCnpj: "123.456.789-00"},
			{Name: "João Silva", CpfCnpj: "123.456.789-00"},
			{Name: "João Silva", Email: "joao@x.com"},
			{Name: "  ", Email: " ", CpfCnpj: ""},
		} {
			if _, err := uc.CreateCustomer(context.Background(), input); !errors.Is(err, ErrInvalidCustomerInput) {
				t.Fatalf("expected ErrInvalidCustomerInput for %+v, got %v", input, err)
			}
		}
	})

	t.Run("gateway error propagates unmodified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway, 0)

		boom := errors.New("gateway down")
		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(entities.Customer{}, boom)

		_, err := uc.CreateCustomer(context.Background(), CustomerInput{Name: "João Silva", Email: "joao@x.com", CpfCnpj: "123.456.789-00"})
		if !errors.Is(err, boom) {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("success forwards trimmed profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway, 0)

		gateway.EXPECT().CreateCustomer(gomock.Any(), entities.Customer{
			Name:    "João Silva",
			Email:   "joao@x.com",
			CpfCnpj: "123.456.789-00",
			Phone:   "11999990000",
		}).Return(entities.Customer{ID: "cus_1", Name: "João Silva"}, nil)

		customer, err := uc.CreateCustomer(context.Background(), CustomerInput{
			Name:    "  João Silva ",
			Email:   " joao@x.com",
			CpfCnpj: "123.456.789-00 ",
			Phone:   " 11999990000 ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.ID != "cus_1" {
			t.Fatalf("unexpected customer: %+v", customer)
		}
	})
}

func TestPaymentUseCase_CreatePayment_Validations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(repo, gateway, 0)

	base := PaymentInput{
		CustomerID:  "cus_1",
		Value:       decimal.NewFromFloat(399.90),
		BillingType: entities.BillingTypePix,
	}

	t.Run("empty customer id", func(t *testing.T) {
		input := base
		input.CustomerID = " "
		if _, err := uc.CreatePayment(context.Background(), input); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("invalid billing type", func(t *testing.T) {
		input := base
		input.BillingType = "WIRE"
		if _, err := uc.CreatePayment(context.Background(), input); !errors.Is(err, ErrInvalidBillingType) {
			t.Fatalf("expected ErrInvalidBillingType, got %v", err)
		}
	})

	t.Run("non-positive value", func(t *testing.T) {
		input := base
		input.Value = decimal.Zero
		if _, err := uc.CreatePayment(context.Background(), input); !errors.Is(err, ErrInvalidPaymentValue) {
			t.Fatalf("expected ErrInvalidPaymentValue, got %v", err)
		}
	})

	t.Run("card required for credit card", func(t *testing.T) {
		input := base
		input.BillingType = entities.BillingTypeCreditCard
		if _, err := uc.CreatePayment(context.Background(), input); !errors.Is(err, ErrMissingCardDetails) {
			t.Fatalf("expected ErrMissingCardDetails, got %v", err)
		}
	})

	t.Run("card rejected for pix", func(t *testing.T) {
		input := base
		input.Card = &entities.CardDetails{Number: "4111111111111111"}
		if _, err := uc.CreatePayment(context.Background(), input); !errors.Is(err, ErrUnexpectedCardData) {
			t.Fatalf("expected ErrUnexpectedCardData, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreatePayment(t *testing.T) {
	t.Run("boleto defaults due date to three days out, date only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, 0)

		var got interfaces.ChargeRequest
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.ChargeRequest) (entities.Payment, error) {
				got = req
				return entities.Payment{ID: "pay_1", Status: entities.PaymentStatusPending, BillingType: req.BillingType, DueDate: req.DueDate}, nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

		_, err := uc.CreatePayment(context.Background(), PaymentInput{
			CustomerID:  "cus_1",
			Value:       decimal.NewFromFloat(120.50),
			BillingType: entities.BillingTypeBoleto,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		y, m, d := time.Now().UTC().AddDate(0, 0, 3).Date()
		want := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if !got.DueDate.Equal(want) {
			t.Fatalf("expected due date %s, got %s", want, got.DueDate)
		}
	})

	t.Run("pix defaults due date to tomorrow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, 0)

		var got interfaces.ChargeRequest
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.ChargeRequest) (entities.Payment, error) {
				got = req
				return entities.Payment{ID: "pay_2", Status: entities.PaymentStatusPending}, nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

		_, err := uc.CreatePayment(context.Background(), PaymentInput{
			CustomerID:  "cus_1",
			Value:       decimal.NewFromFloat(50),
			BillingType: entities.BillingTypePix,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		y, m, d := time.Now().UTC().AddDate(0, 0, 1).Date()
		want := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if !got.DueDate.Equal(want) {
			t.Fatalf("expected due date %s, got %s", want, got.DueDate)
		}
	})

	t.Run("gateway error propagates and nothing is persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, 0)

		declined := errors.New("card declined")
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, declined)

		_, err := uc.CreatePayment(context.Background(), PaymentInput{
			CustomerID:  "cus_1",
			Value:       decimal.NewFromFloat(399.90),
			BillingType: entities.BillingTypeCreditCard,
			Card:        &entities.CardDetails{Number: "4111111111111111", ExpiryMonth: "12", ExpiryYear: "2025", CCV: "123"},
		})
		if !errors.Is(err, declined) {
			t.Fatalf("expected declined error, got %v", err)
		}
	})

	t.Run("card payment success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, 0)

		value := decimal.NewFromFloat(399.90)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.Payment{
			ID:          "pay_abc",
			CustomerID:  "cus_1",
			Value:       value,
			Status:      entities.PaymentStatusConfirmed,
			BillingType: entities.BillingTypeCreditCard,
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

		payment, err := uc.CreatePayment(context.Background(), PaymentInput{
			CustomerID:  "cus_1",
			Value:       value,
			BillingType: entities.BillingTypeCreditCard,
			Card:        &entities.CardDetails{HolderName: "João Silva", Number: "4111111111111111", ExpiryMonth: "12", ExpiryYear: "2025", CCV: "123"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.ID == "" || !payment.Value.Equal(value) {
			t.Fatalf("unexpected payment: %+v", payment)
		}
	})
}

func TestPaymentUseCase_CheckStatus(t *testing.T) {
	t.Run("empty payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway, 0)

		if _, err := uc.CheckStatus(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("idempotent across consecutive calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, 0)

		stored := entities.Payment{ID: "pay_1", Status: entities.PaymentStatusPending, Value: decimal.NewFromFloat(399.90)}
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(stored, nil).Times(2)
		repo.EXPECT().UpdateStatus(gomock.Any(), "pay_1", entities.PaymentStatusPending).Return(stored, nil).Times(2)

		first, err := uc.CheckStatus(context.Background(), "pay_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.CheckStatus(context.Background(), "pay_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID != second.ID || first.Status != second.Status || !first.Value.Equal(second.Value) {
			t.Fatalf("expected identical records, got %+v vs %+v", first, second)
		}
	})

	t.Run("unknown gateway payment maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway, 0)

		gateway.EXPECT().GetPayment(gomock.Any(), "ghost").Return(entities.Payment{}, fmt.Errorf("provider: %w", interfaces.ErrGatewayPaymentNotFound))

		if _, err := uc.CheckStatus(context.Background(), "ghost"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("status refresh failure is best-effort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, 0)

		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.Payment{ID: "pay_1", Status: entities.PaymentStatusConfirmed}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "pay_1", entities.PaymentStatusConfirmed).Return(entities.Payment{}, errors.New("db"))

		payment, err := uc.CheckStatus(context.Background(), "pay_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.Status != entities.PaymentStatusConfirmed {
			t.Fatalf("unexpected status: %s", payment.Status)
		}
	})
}

func TestPaymentUseCase_AwaitSettlement(t *testing.T) {
	t.Run("returns immediately on terminal status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway, time.Hour)

		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.Payment{ID: "pay_1", Status: entities.PaymentStatusConfirmed}, nil)

		payment, err := uc.AwaitSettlement(context.Background(), "pay_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.Status != entities.PaymentStatusConfirmed {
			t.Fatalf("unexpected status: %s", payment.Status)
		}
	})

	t.Run("polls until the gateway settles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway, 5*time.Millisecond)

		calls := 0
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").DoAndReturn(
			func(context.Context, string) (entities.Payment, error) {
				calls++
				if calls < 3 {
					return entities.Payment{ID: "pay_1", Status: entities.PaymentStatusPending}, nil
				}
				return entities.Payment{ID: "pay_1", Status: entities.PaymentStatusReceived}, nil
			}).Times(3)

		payment, err := uc.AwaitSettlement(context.Background(), "pay_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !payment.Status.Settled() {
			t.Fatalf("expected settled payment, got %s", payment.Status)
		}
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway, time.Hour)

		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.Payment{ID: "pay_1", Status: entities.PaymentStatusPending}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		_, err := uc.AwaitSettlement(ctx, "pay_1")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("gateway error aborts the wait", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway, time.Hour)

		boom := errors.New("gateway down")
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.Payment{}, boom)

		if _, err := uc.AwaitSettlement(context.Background(), "pay_1"); !errors.Is(err, boom) {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})
}

func TestPaymentUseCase_ListByCustomerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewPaymentUseCase(repo, nil, 0)

	t.Run("empty customer id", func(t *testing.T) {
		if _, err := uc.ListByCustomerID(context.Background(), " "); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("passthrough", func(t *testing.T) {
		repo.EXPECT().ListByCustomerID(gomock.Any(), "cus_1").Return([]entities.Payment{{ID: "pay_1"}}, nil)
		payments, err := uc.ListByCustomerID(context.Background(), "cus_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 1 || payments[0].ID != "pay_1" {
			t.Fatalf("unexpected payments: %+v", payments)
		}
	})
}

func TestDueDateFor(t *testing.T) {
	now := time.Date(2026, 3, 30, 17, 45, 12, 0, time.UTC)

	t.Run("explicit date is truncated", func(t *testing.T) {
		requested := time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)
		got := DueDateFor(entities.BillingTypeBoleto, requested, now)
		want := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("boleto default crosses month boundary", func(t *testing.T) {
		got := DueDateFor(entities.BillingTypeBoleto, time.Time{}, now)
		want := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("pix default is tomorrow", func(t *testing.T) {
		got := DueDateFor(entities.BillingTypePix, time.Time{}, now)
		want := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("card default is today", func(t *testing.T) {
		got := DueDateFor(entities.BillingTypeCreditCard, time.Time{}, now)
		want := time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})
}
