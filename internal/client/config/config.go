package config

import (
	"fmt"
	"time"
)

const (
	TransportGRPC = "grpc"
	TransportWS   = "ws"
)

// Config holds runtime settings for the award console.
type Config struct {
	ServerEndpointAddr  string
	Transport           string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	DatabasePath        string
	AccessToken         string
	LogLevel            string
	S3                  S3
}

// S3 selects the bucket staged preview files are uploaded to. An empty
// BaseEndpoint means AWS itself.
type S3 struct {
	Region       string
	Bucket       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.Transport = TransportGRPC
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "acp.db"
	c.LogLevel = "info"
	c.S3.Region = "us-east-1"
	c.S3.Bucket = "awards"
}

// Validate reports settings no later stage could work with.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportGRPC, TransportWS:
	default:
		return fmt.Errorf("unknown transport %q (want %s or %s)", c.Transport, TransportGRPC, TransportWS)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive, got %s", c.OnlineCheckInterval)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is empty")
	}
	return nil
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
