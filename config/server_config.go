package config

import (
	"errors"
	"flag"
	"log/slog"
	"time"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
)

const (
	defaultBindAddr        = ":3000"
	defaultOTLPEndpoint    = "localhost:4317"
	defaultServiceName     = "bookstore"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
)

var ErrInvalidLogLevel = errors.New("log-level must be one of debug, info, warn, error")
var ErrInvalidShutdownTimeout = errors.New("shutdown-timeout must be positive")

// ServerConfig holds the runtime configuration of the book server.
type ServerConfig struct {
	BindAddr             string
	StaticDir            string
	RejectDuplicateIDs   bool
	ObservabilityEnabled bool
	OTLPEndpoint         string
	ServiceName          string
	LogLevel             string
	ShutdownTimeout      time.Duration

	slogLevel slog.Level
}

// ParseFlags binds the server flags to fs, parses args and validates the result.
func ParseFlags(fs *flag.FlagSet, args []string) (*ServerConfig, error) {
	cfg := &ServerConfig{}

	fs.StringVar(&cfg.BindAddr, "bind", defaultBindAddr, "Bind address, e.g. 0.0.0.0:3000")
	fs.StringVar(&cfg.StaticDir, "static-dir", "", "Directory served on / and /static/, disabled when empty")
	fs.BoolVar(&cfg.RejectDuplicateIDs, "reject-duplicate-ids", false, "Answer 409 instead of storing a second book with the same id")
	fs.BoolVar(&cfg.ObservabilityEnabled, "observability-enabled", false, "Enable OpenTelemetry observability")
	fs.StringVar(&cfg.OTLPEndpoint, "otlp-endpoint", defaultOTLPEndpoint, "OTLP gRPC endpoint for traces, metrics and logs")
	fs.StringVar(&cfg.ServiceName, "service-name", defaultServiceName, "Service name reported to OpenTelemetry")
	fs.StringVar(&cfg.LogLevel, "log-level", defaultLogLevel, "Log level: debug, info, warn or error")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", defaultShutdownTimeout, "Grace period for in-flight requests on shutdown")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fills empty values with defaults and rejects invalid ones.
func (c *ServerConfig) Validate() error {
	if c.BindAddr == "" {
		c.BindAddr = defaultBindAddr
	}

	if c.OTLPEndpoint == "" {
		c.OTLPEndpoint = defaultOTLPEndpoint
	}

	if c.ServiceName == "" {
		c.ServiceName = defaultServiceName
	}

	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if err := c.slogLevel.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return errors.Join(ErrInvalidLogLevel, err)
	}

	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}

	if c.ShutdownTimeout < 0 {
		return ErrInvalidShutdownTimeout
	}

	return nil
}

// SlogLevel returns the parsed log level. Only meaningful after Validate.
func (c *ServerConfig) SlogLevel() slog.Level {
	return c.slogLevel
}

// DuplicateIDPolicy maps the -reject-duplicate-ids flag to the store policy.
func (c *ServerConfig) DuplicateIDPolicy() bookstore.DuplicateIDPolicy {
	if c.RejectDuplicateIDs {
		return bookstore.RejectDuplicateIDs
	}

	return bookstore.AllowDuplicateIDs
}
