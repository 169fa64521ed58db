// Package config содержит чтение конфигурации CRM из переменных окружения.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры всех процессов CRM.
type Config struct {
	RunAddress    string `env:"CRM_ADDRESS" envDefault:":8080"`
	MongoURI      string `env:"CRM_MONGO"`
	MongoDatabase string `env:"CRM_MONGO_DB" envDefault:"crmDB"`

	CacheAddr     string `env:"CRM_CACHE_URL"`
	CacheUser     string `env:"CRM_CACHE_USER"`
	CachePassword string `env:"CRM_CACHE_PWD"`

	KafkaBrokers []string `env:"CRM_KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"CRM_KAFKA_TOPIC" envDefault:"purchases"`
	KafkaGroup   string   `env:"CRM_KAFKA_GROUP" envDefault:"crm_loyalty"`

	RabbitURL string `env:"CRM_RABBIT_URL"`

	PurchaseWorkers int `env:"CRM_PURCHASE_WORKERS" envDefault:"5"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Parse считывает конфигурацию из окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("env CRM_MONGO is not set")
	}
	if cfg.PurchaseWorkers <= 0 {
		cfg.PurchaseWorkers = 1
	}

	return cfg, nil
}
