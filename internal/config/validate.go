package config

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// LLM providers accepted by LLMConfig.Provider.
const (
	LLMProviderNone      = "none"
	LLMProviderOllama    = "ollama"
	LLMProviderAnthropic = "anthropic"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.HealthPort < 0 || c.Server.HealthPort > 65535 {
		return fmt.Errorf("server.health_port must be in 0..65535 (got %d)", c.Server.HealthPort)
	}
	if (c.Server.TLSCertFile == "") != (c.Server.TLSKeyFile == "") {
		return fmt.Errorf("server.tls_cert_file and server.tls_key_file must be set together")
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Database.SlowQueryThreshold < 0 {
		return fmt.Errorf("database.slow_query_threshold must not be negative (got %v)", c.Database.SlowQueryThreshold)
	}

	if c.Cache.KeyPrefix == "" {
		return fmt.Errorf("cache.key_prefix must not be empty")
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in %d..%d (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.SendRateLimit <= 0 {
		return fmt.Errorf("auth.send_rate_limit must be > 0 (got %v)", c.Auth.SendRateLimit)
	}
	if c.Auth.SendBurst <= 0 {
		return fmt.Errorf("auth.send_burst must be > 0 (got %d)", c.Auth.SendBurst)
	}

	if c.Chat.BroadcastCapacity <= 0 {
		return fmt.Errorf("chat.broadcast_capacity must be > 0 (got %d)", c.Chat.BroadcastCapacity)
	}
	if c.Chat.SubscriberCapacity <= 0 {
		return fmt.Errorf("chat.subscriber_capacity must be > 0 (got %d)", c.Chat.SubscriberCapacity)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))

	providers := []string{LLMProviderNone, LLMProviderOllama, LLMProviderAnthropic}
	if !slices.Contains(providers, l.Provider) {
		return fmt.Errorf("provider must be one of %v (got %q)", providers, l.Provider)
	}

	if l.Provider == LLMProviderAnthropic && l.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %q", l.Provider)
	}
	if l.Provider != LLMProviderNone && l.Model == "" {
		return fmt.Errorf("model is required for provider %q", l.Provider)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}

	return nil
}
