package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config carries every tunable of the platform. Values come from
// ACP_-prefixed environment variables (dots and dashes become underscores,
// e.g. ACP_OUTBOX_BATCH_SIZE), falling back to the defaults set in Load.
type Config struct {
	HTTPAddr    string
	DatabaseURL string
	BusURL      string

	// InstanceID marks outbox lock ownership for this process. Defaults to
	// a fresh UUID per boot so two replicas never share a lock identity.
	InstanceID string

	DefaultDecision string
	DefaultTimezone string

	OutboxDispatchEvery    time.Duration
	OutboxMaintenanceEvery time.Duration
	OutboxLockTTL          time.Duration
	OutboxBatchSize        int
	OutboxMaxAttempts      int
	OutboxMaxRetryAfter    time.Duration
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ACP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("database.url", "")
	v.SetDefault("bus.bootstrap", "nats://localhost:4222")
	v.SetDefault("instance-id", "")
	v.SetDefault("engine.default-decision", "ALLOW")
	v.SetDefault("org.default-timezone", "UTC")
	v.SetDefault("outbox.dispatch.every", "2s")
	v.SetDefault("outbox.maintenance.every", "5m")
	v.SetDefault("outbox.lock-ttl", "300s")
	v.SetDefault("outbox.batch-size", 50)
	v.SetDefault("outbox.max-attempts", 5)
	v.SetDefault("outbox.max-retry-after", "10m")

	cfg := &Config{
		HTTPAddr:               v.GetString("http.addr"),
		DatabaseURL:            v.GetString("database.url"),
		BusURL:                 v.GetString("bus.bootstrap"),
		InstanceID:             v.GetString("instance-id"),
		DefaultDecision:        strings.ToUpper(v.GetString("engine.default-decision")),
		DefaultTimezone:        v.GetString("org.default-timezone"),
		OutboxDispatchEvery:    v.GetDuration("outbox.dispatch.every"),
		OutboxMaintenanceEvery: v.GetDuration("outbox.maintenance.every"),
		OutboxLockTTL:          v.GetDuration("outbox.lock-ttl"),
		OutboxBatchSize:        v.GetInt("outbox.batch-size"),
		OutboxMaxAttempts:      v.GetInt("outbox.max-attempts"),
		OutboxMaxRetryAfter:    v.GetDuration("outbox.max-retry-after"),
	}

	if cfg.InstanceID == "" {
		cfg.InstanceID = uuid.NewString()
	}
	if cfg.DefaultDecision != "ALLOW" && cfg.DefaultDecision != "DENY" {
		return nil, fmt.Errorf("engine.default-decision must be ALLOW or DENY, got %q", cfg.DefaultDecision)
	}
	if cfg.OutboxBatchSize < 1 {
		return nil, fmt.Errorf("outbox.batch-size must be positive")
	}
	if cfg.OutboxMaxAttempts < 1 {
		return nil, fmt.Errorf("outbox.max-attempts must be positive")
	}

	return cfg, nil
}

// Validate checks that the connection settings required to boot are present.
// Runs after the optional Vault hydration so either source can supply them.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database.url is required (env ACP_DATABASE_URL or Vault pg_url)")
	}
	if c.BusURL == "" {
		return fmt.Errorf("bus.bootstrap is required (env ACP_BUS_BOOTSTRAP or Vault nats_url)")
	}
	return nil
}
