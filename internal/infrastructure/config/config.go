package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config is the service configuration, loaded once at startup from the
// environment (a .env file is autoloaded by cmd/api).
type Config struct {
	HTTP       HTTPServer
	Gateway    Gateway
	Credential Credential
	Poll       Poll
}

type HTTPServer struct {
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

// Gateway selects the payment provider. The mock provider is the default:
// the portal runs against it in development and in tests; Mercado Pago is
// opted into explicitly.
type Gateway struct {
	Provider               string `env:"PAYMENT_GATEWAY_PROVIDER" envDefault:"mock"`
	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
}

type Credential struct {
	// Base URL encoded into credential QR codes; the validation page reads
	// id and token query params from it.
	ValidationBaseURL string `env:"CREDENTIAL_VALIDATION_BASE_URL" envDefault:"https://associacaopro.com.br/validar-credencial"`
}

type Poll struct {
	// Interval between settlement checks while a payment is pending.
	Interval time.Duration `env:"PAYMENT_POLL_INTERVAL" envDefault:"30s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
