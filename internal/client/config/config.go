package config

import "time"

// Config holds runtime settings for the wordsearch CLI.
//
// Fields:
//   - ServerURL: base URL of the HTTP API; the live channel uses the same
//     host with a ws:// or wss:// scheme.
//   - HealthAddr: host:port of the server gRPC health endpoint.
//   - RequestTimeout: upper bound for a single API call.
type Config struct {
	ServerURL      string
	HealthAddr     string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.HealthAddr = "localhost:50051"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
