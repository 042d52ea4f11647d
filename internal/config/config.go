package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Cache     CacheConfig     `yaml:"cache"`
	Auth      AuthConfig      `yaml:"auth"`
	Chat      ChatConfig      `yaml:"chat"`
	LLM       LLMConfig       `yaml:"llm"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds gRPC and health endpoint settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"50051"`
	HealthPort      int           `yaml:"health_port"      env:"SERVER_HEALTH_PORT"      env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	TLSCertFile     string        `yaml:"tls_cert_file"    env:"SERVER_TLS_CERT_FILE"`
	TLSKeyFile      string        `yaml:"tls_key_file"     env:"SERVER_TLS_KEY_FILE"`
}

// Addr returns the gRPC listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// HealthAddr returns the HTTP health listen address.
func (s ServerConfig) HealthAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.HealthPort)
}

// TLSEnabled reports whether both certificate and key are configured.
func (s ServerConfig) TLSEnabled() bool {
	return s.TLSCertFile != "" && s.TLSKeyFile != ""
}

// DatabaseConfig holds PostgreSQL connection settings. A zero
// SlowQueryThreshold turns slow query logging off.
type DatabaseConfig struct {
	DSN                string        `yaml:"dsn"                  env:"DATABASE_DSN"                  env-required:"true"`
	MaxConns           int32         `yaml:"max_conns"            env:"DATABASE_MAX_CONNS"            env-default:"25"`
	MinConns           int32         `yaml:"min_conns"            env:"DATABASE_MIN_CONNS"            env-default:"5"`
	MaxConnLifetime    time.Duration `yaml:"max_conn_lifetime"    env:"DATABASE_MAX_CONN_LIFETIME"    env-default:"1h"`
	MaxConnIdleTime    time.Duration `yaml:"max_conn_idle_time"   env:"DATABASE_MAX_CONN_IDLE_TIME"   env-default:"30m"`
	AutoMigrate        bool          `yaml:"auto_migrate"         env:"DATABASE_AUTO_MIGRATE"         env-default:"true"`
	SlowQueryThreshold time.Duration `yaml:"slow_query_threshold" env:"DATABASE_SLOW_QUERY_THRESHOLD" env-default:"250ms"`
}

// CacheConfig holds the Redis settings of the membership cache.
type CacheConfig struct {
	URL       string        `yaml:"url"        env:"CACHE_URL"        env-required:"true"`
	KeyPrefix string        `yaml:"key_prefix" env:"CACHE_KEY_PREFIX" env-default:"membership:"`
	PoolSize  int           `yaml:"pool_size"  env:"CACHE_POOL_SIZE"  env-default:"20"`
	Timeout   time.Duration `yaml:"timeout"    env:"CACHE_TIMEOUT"    env-default:"2s"`
}

// AuthConfig holds credential settings.
type AuthConfig struct {
	PasswordHashCost int     `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
	SendRateLimit    float64 `yaml:"send_rate_limit"    env:"AUTH_SEND_RATE_LIMIT"    env-default:"20"`
	SendBurst        int     `yaml:"send_burst"         env:"AUTH_SEND_BURST"         env-default:"40"`
}

// ChatConfig holds fan-out sizing.
type ChatConfig struct {
	BroadcastCapacity  int `yaml:"broadcast_capacity"  env:"CHAT_BROADCAST_CAPACITY"  env-default:"16"`
	SubscriberCapacity int `yaml:"subscriber_capacity" env:"CHAT_SUBSCRIBER_CAPACITY" env-default:"4"`
}

// LLMConfig selects the room analysis backend.
type LLMConfig struct {
	Provider  string        `yaml:"provider"   env:"LLM_PROVIDER"   env-default:"none"`
	Host      string        `yaml:"host"       env:"LLM_HOST"       env-default:"http://localhost:11434"`
	Model     string        `yaml:"model"      env:"LLM_MODEL"      env-default:"llama3"`
	APIKey    string        `yaml:"api_key"    env:"LLM_API_KEY"`
	MaxTokens int64         `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"1024"`
	Timeout   time.Duration `yaml:"timeout"    env:"LLM_TIMEOUT"    env-default:"2m"`
}

// TelemetryConfig holds OpenTelemetry export settings. An empty endpoint
// disables export.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `yaml:"service_name"  env:"OTEL_SERVICE_NAME" env-default:"tcpchat"`
}

// Enabled reports whether telemetry export is configured.
func (t TelemetryConfig) Enabled() bool {
	return t.OTLPEndpoint != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
