// Package bootstrap wires rebacd's Config into a running core.Service,
// the way components/ledger/internal/bootstrap/config.go's
// InitServers builds a Service from environment configuration — minus
// the HTTP/gRPC surfaces spec §1 puts out of scope for this module.
package bootstrap

import (
	"time"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/bootstrap/env"
)

const ApplicationName = "rebacd"

// Config is the top-level configuration struct, one field per spec §6
// configuration key plus the connection strings the adapters need.
type Config struct {
	EnvName string `env:"ENV_NAME" envDefault:"development"`
	Version string `env:"VERSION"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	OtelServiceName         string `env:"OTEL_RESOURCE_SERVICE_NAME" envDefault:"rebacd"`
	OtelLibraryName         string `env:"OTEL_LIBRARY_NAME" envDefault:"rebacd"`
	OtelColExporterEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	EnableTelemetry         bool   `env:"ENABLE_TELEMETRY"`

	// Storage
	PrimaryDBPrimaryDSN  string `env:"DB_REBAC_PRIMARY_DSN"`
	PrimaryDBReplicaDSN  string `env:"DB_REBAC_REPLICA_DSN"`
	PrimaryDBName        string `env:"DB_REBAC_NAME" envDefault:"rebac"`
	RedisConnectionString string `env:"REDIS_REBAC_DSN"`
	RabbitMQConnectionString string `env:"RABBITMQ_REBAC_DSN"`
	MongoConnectionString string `env:"MONGO_REBAC_DSN"`
	MongoDatabase        string `env:"MONGO_REBAC_DB" envDefault:"rebac"`

	// NamespaceDir holds one or more *.yaml documents declaring object
	// types, relations, and permissions (spec §2); every file in it is
	// loaded into the registry at startup.
	NamespaceDir string `env:"NAMESPACE_DIR" envDefault:"components/rebac/namespaces"`

	// consistency.*
	ConsistencyDefaultMode   string        `env:"CONSISTENCY_DEFAULT_MODE" envDefault:"minimize_latency"`
	ConsistencyWaitDeadline  time.Duration `env:"CONSISTENCY_WAIT_DEADLINE_MS" envDefault:"300ms"`
	ZookieMACKey             string        `env:"ZOOKIE_MAC_KEY"`

	// cache.*
	CacheInProcessSize int           `env:"CACHE_IN_PROCESS_SIZE" envDefault:"10000"`
	CacheDefaultTTL    time.Duration `env:"CACHE_DEFAULT_TTL_MS" envDefault:"5m"`
	CacheSharedEnabled bool          `env:"CACHE_SHARED_ENABLED"`

	// evaluator.*
	EvaluatorMaxDepth int `env:"EVALUATOR_MAX_DEPTH" envDefault:"25"`

	// breaker.*
	BreakerFailureThreshold int           `env:"BREAKER_FAILURE_THRESHOLD" envDefault:"5"`
	BreakerFailureWindow    time.Duration `env:"BREAKER_FAILURE_WINDOW_MS" envDefault:"10s"`
	BreakerResetTimeout     time.Duration `env:"BREAKER_RESET_TIMEOUT_MS" envDefault:"30s"`
	BreakerSuccessThreshold int           `env:"BREAKER_SUCCESS_THRESHOLD" envDefault:"3"`

	// bitmap.*
	BitmapEnabled            bool          `env:"BITMAP_ENABLED"`
	BitmapQueueCapacityPerTenant int       `env:"BITMAP_QUEUE_CAPACITY_PER_TENANT" envDefault:"10000"`
	BitmapWorkerCount        int           `env:"BITMAP_WORKER_COUNT" envDefault:"2"`
	BitmapRetryCap           int           `env:"BITMAP_RETRY_CAP" envDefault:"5"`
	BitmapPollInterval       time.Duration `env:"BITMAP_POLL_INTERVAL_MS" envDefault:"1s"`
	BitmapReapInterval       time.Duration `env:"BITMAP_REAP_INTERVAL_MS" envDefault:"1m"`
	BitmapReapAfter          time.Duration `env:"BITMAP_REAP_AFTER_MS" envDefault:"5m"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Load(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
