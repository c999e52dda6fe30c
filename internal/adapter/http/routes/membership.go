package routes

import (
	"associacao_pro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers   = "/customers"
	PathPayments    = "/payments"
	PathCredentials = "/credentials"
)

func addMembershipRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, credentialHandler *handlers.CredentialHandler) {
	rg.POST(PathCustomers, paymentHandler.CreateCustomer)

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
		payments.GET("/:payment_id/settlement", paymentHandler.AwaitSettlement)
	}

	credentials := rg.Group(PathCredentials)
	{
		// The static /validation segment must be registered alongside the
		// :id parameter; gin resolves it before the wildcard.
		credentials.GET("/validation", credentialHandler.Validate)
		credentials.POST("/:payment_id", credentialHandler.Issue)
		credentials.GET("/:id", credentialHandler.Get)
	}
}
