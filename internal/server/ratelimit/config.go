package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	DefaultBurst    int
	CleanupInterval time.Duration
	IdleTimeout     time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewConfig builds a per-minute configuration. Batch scoring gets a fifth of
// the default budget since one request may carry many résumés.
func NewConfig(enabled bool, requestsPerMinute, burst int) *Config {
	return &Config{
		Enabled:         enabled,
		DefaultLimit:    requestsPerMinute,
		DefaultWindow:   time.Minute,
		DefaultBurst:    burst,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
		EndpointConfigs: DefaultEndpointConfigs(requestsPerMinute, burst),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific configurations.
func DefaultEndpointConfigs(requestsPerMinute, burst int) []EndpointConfig {
	batchLimit := max(1, requestsPerMinute/5)
	batchBurst := max(1, burst/5)
	return []EndpointConfig{
		{Path: "/v1/ats/score/batch", Method: "POST", Limit: batchLimit, Window: time.Minute, Burst: batchBurst},
	}
}

// ParseIPList parses a comma-separated list of IP addresses into a set.
func ParseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
