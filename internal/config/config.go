package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	DatabasePath      string        `mapstructure:"database_path" yaml:"database_path"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	// AllowedOrigin is echoed in CORS headers; "*" keeps the permissive
	// default the web client expects.
	AllowedOrigin string `mapstructure:"allowed_origin" yaml:"allowed_origin"`
	// StaticDir, when set, serves the built SPA alongside the relay.
	StaticDir       string `mapstructure:"static_dir" yaml:"static_dir"`
	MaxMessageBytes int64  `mapstructure:"max_message_bytes" yaml:"max_message_bytes"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		DatabasePath:      "mediately.db",
		LogLevel:          "info",
		AllowedOrigin:     "*",
		MaxMessageBytes:   1 << 20,
	}
}
