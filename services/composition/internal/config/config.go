package config

import (
	"fmt"

	pkgconfig "github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/config"
)

// Config holds all configuration for the composition service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"COMPOSITION_HTTP_PORT" envDefault:"8080"`

	// Shared API key, sent on outbound calls and expected inbound
	APIKey string `env:"SOA_API_KEY" envDefault:"dev"`

	// Downstream service endpoints
	CustomerServiceURL string `env:"CUSTOMER_SERVICE_URL" envDefault:"http://localhost:8081/soap"`
	CatalogServiceURL  string `env:"CATALOG_SERVICE_URL" envDefault:"http://localhost:8082/soap"`
	SalesServiceURL    string `env:"SALES_SERVICE_URL" envDefault:"http://localhost:8083/soap"`

	// Payment simulation seed; 0 means seed from the clock
	PaymentSeed int64 `env:"PAYMENT_SEED" envDefault:"0"`

	// Kafka
	KafkaEnabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load composition config: %w", err)
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid HTTP port: %d", cfg.HTTPPort)
	}
	return cfg, nil
}
