package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	ProcessorBaseURL           string        `env:"PROCESSOR_BASE_URL" required:"true"`
	HTTPProcessorClientTimeout time.Duration `env:"HTTP_PROCESSOR_CLIENT_TIMEOUT" envDefault:"20s"`

	CommerceBaseURL           string        `env:"COMMERCE_BASE_URL" required:"true"`
	HTTPCommerceClientTimeout time.Duration `env:"HTTP_COMMERCE_CLIENT_TIMEOUT" envDefault:"20s"`

	// Per-site processor credentials, JSON object keyed by site ID.
	SitesJSON string `env:"SITES_JSON" required:"true"`

	// Webhook processing mode: "sync" (direct dispatch) or "kafka" (async via Kafka)
	WebhookMode string `env:"WEBHOOK_MODE" envDefault:"sync"`

	// Kafka configuration
	KafkaBrokers                    []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaNotificationsTopic         string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"webhooks.notifications"`
	KafkaNotificationsConsumerGroup string   `env:"KAFKA_NOTIFICATIONS_CONSUMER_GROUP" envDefault:"storefront-payments-notifications"`

	// OpenSearch secondary notification sink; disabled when no URLs are set.
	OpensearchUrls               []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexNotifications string   `env:"OPENSEARCH_INDEX_NOTIFICATIONS" envDefault:"payment-notifications"`

	sites map[string]SiteConfig
}

// SiteConfig holds the per-site processor and webhook credentials.
type SiteConfig struct {
	MerchantAccount string `json:"merchant_account"`
	APIKey          string `json:"api_key"`
	// HMACKey is hex-encoded; empty means signature verification is disabled
	// for the site (explicit opt-out, not a failure).
	HMACKey         string `json:"hmac_key"`
	WebhookUser     string `json:"webhook_user"`
	WebhookPassword string `json:"webhook_password"`
	Environment     string `json:"environment"` // test or live
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if err := json.Unmarshal([]byte(c.SitesJSON), &c.sites); err != nil {
		return Config{}, fmt.Errorf("parse SITES_JSON: %w", err)
	}
	if len(c.sites) == 0 {
		return Config{}, fmt.Errorf("SITES_JSON defines no sites")
	}

	return c, nil
}

// Site resolves the configuration for the given site ID.
func (c Config) Site(siteID string) (SiteConfig, error) {
	site, ok := c.sites[siteID]
	if !ok {
		return SiteConfig{}, fmt.Errorf("unknown site %q", siteID)
	}
	return site, nil
}
