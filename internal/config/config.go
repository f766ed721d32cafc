package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	LogMode string
	LogFile string

	AdminAddr string

	RegistryInitialCapacity int
	RegistryMaxRecords      int
	SignalBuffer            int

	RabbitMQURL         string
	RabbitExchange      string
	RabbitRoutingPrefix string

	OTELServiceName string
	OTLPEndpoint    string
	OTLPInsecure    bool
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		LogMode:                 "development",
		LogFile:                 "logs/accessor.log",
		RegistryInitialCapacity: 10,
		SignalBuffer:            8,
		RabbitExchange:          "instances",
		RabbitRoutingPrefix:     "instance",
		OTELServiceName:         "multi-accessor",
		OTLPInsecure:            true,
	}

	if v := os.Getenv("LOG_MODE"); v != "" {
		cfg.LogMode = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	cfg.AdminAddr = os.Getenv("ADMIN_ADDR")

	if v := os.Getenv("REGISTRY_INITIAL_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RegistryInitialCapacity = n
		}
	}
	if v := os.Getenv("REGISTRY_MAX_RECORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RegistryMaxRecords = n
		}
	}
	if v := os.Getenv("SIGNAL_BUFFER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SignalBuffer = n
		}
	}

	cfg.RabbitMQURL = os.Getenv("RABBITMQ_URL")
	if v := os.Getenv("RABBITMQ_EXCHANGE"); v != "" {
		cfg.RabbitExchange = v
	}
	if v := os.Getenv("RABBITMQ_ROUTING_PREFIX"); v != "" {
		cfg.RabbitRoutingPrefix = v
	}

	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.OTELServiceName = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_INSECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.OTLPInsecure = b
		}
	}

	return cfg
}
