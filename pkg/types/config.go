// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "coach-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the bibliographic search client.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of articles to return (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// MinInterval is the minimum spacing between consecutive outbound
	// calls to the E-utilities service, enforced across all three call
	// types (default 350ms, about 3 requests per second).
	MinInterval time.Duration `json:"min_interval" yaml:"min_interval"`

	// NCBIAPIKey is an optional API key for higher rate limits.
	NCBIAPIKey string `json:"ncbi_api_key,omitempty" yaml:"ncbi_api_key,omitempty"`
}

// CacheConfig holds settings for the answer cache.
type CacheConfig struct {
	// TTL is how long a cached answer may be served (default 30m).
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// Capacity caps the number of cached answers (default 100). Inserts
	// past the cap evict the single oldest entry by insertion time.
	Capacity int `json:"capacity" yaml:"capacity"`
}

// ServerConfig holds settings for the HTTP API server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// AllowOrigins lists CORS origins permitted to call the API.
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
}

// CoachConfig groups all component configurations for the engine.
type CoachConfig struct {
	Search SearchConfig `json:"search" yaml:"search"`
	Cache  CacheConfig  `json:"cache" yaml:"cache"`
	Server ServerConfig `json:"server" yaml:"server"`
}

// Defaults returns a CoachConfig populated with the reference values.
func Defaults() CoachConfig {
	return CoachConfig{
		Search: SearchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   10 * time.Second,
				UserAgent: "coach-engine/0.1",
			},
			MaxResults:  5,
			MinInterval: 350 * time.Millisecond,
		},
		Cache: CacheConfig{
			TTL:      30 * time.Minute,
			Capacity: 100,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			AllowOrigins: []string{"http://localhost:3000"},
		},
	}
}
