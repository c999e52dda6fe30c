package routes

import (
	"log"

	_ "associacao_pro/docs" // This will be auto-generated
	"associacao_pro/internal/adapter/http/handlers"
	"associacao_pro/internal/adapter/http/middleware"
	repository2 "associacao_pro/internal/adapter/persistence/repository"
	"associacao_pro/internal/infrastructure/config"
	"associacao_pro/internal/infrastructure/database"
	"associacao_pro/internal/infrastructure/payments"
	"associacao_pro/internal/usecase"
	"associacao_pro/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.HTTP.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	credentialRepo := repository2.NewCredentialDynamoRepository(ddb)

	gateway := selectGateway(cfg.Gateway)

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, gateway, cfg.Poll.Interval)
	credentialUseCase := usecase.NewCredentialUseCase(credentialRepo, gateway, cfg.Credential.ValidationBaseURL)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	credentialHandler := handlers.NewCredentialHandler(credentialUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMembershipRoutes(v1, paymentHandler, credentialHandler)
}

// selectGateway picks the payment provider. The mock provider keeps local
// development and the checkout demo flow working without any credentials;
// Mercado Pago is opted into via PAYMENT_GATEWAY_PROVIDER=mercadopago.
func selectGateway(cfg config.Gateway) interfaces.IPaymentGateway {
	if cfg.Provider == "mercadopago" {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Fatalf("Mercado Pago gateway not configured: %v", err)
		}
		log.Printf("[routes] payment gateway: mercadopago")
		return mpGateway
	}
	log.Printf("[routes] payment gateway: mock")
	return payments.NewMockGateway()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
