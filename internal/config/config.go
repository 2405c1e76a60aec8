// Package config provides centralized configuration for the referral
// letter service. Settings come from environment variables with defaults
// suitable for a single-operator deployment, and are validated on
// startup so misconfiguration fails fast.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Roster   RosterConfig
	Registry RegistryConfig
	Letter   LetterConfig
	Rate     RateLimitConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// RosterConfig holds roster file settings.
type RosterConfig struct {
	// Path is the employee roster export to load at startup (required)
	Path string `env:"ROSTER_PATH" required:"true"`

	// Delimiter is the field separator of the export (default: ";")
	Delimiter string `env:"ROSTER_DELIMITER" default:";"`

	// Encoding is the source encoding of the export: windows-1252,
	// latin-1 or utf-8 (default: windows-1252, what the HR tool emits)
	Encoding string `env:"ROSTER_ENCODING" default:"windows-1252"`
}

// DelimiterRune returns the delimiter as a rune.
func (c *RosterConfig) DelimiterRune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ';'
}

// RegistryConfig holds issuance ledger settings.
type RegistryConfig struct {
	// Path is the CSV ledger of issued letters (default: issuances.csv)
	Path string `env:"REGISTRY_PATH" default:"issuances.csv"`
}

// LetterConfig holds the letter head and issuance defaults.
type LetterConfig struct {
	// CompanyName appears on the letter head (default: CF MAIER ITAP)
	CompanyName string `env:"LETTER_COMPANY_NAME" default:"CF MAIER ITAP"`

	// CompanyAddress is the employer's postal address
	CompanyAddress string `env:"LETTER_COMPANY_ADDRESS" default:"Z.I El Mazraa, 8024 Tazarka, Tunisie"`

	// CompanyPhone is the employer's phone line(s)
	CompanyPhone string `env:"LETTER_COMPANY_PHONE" default:"+216 72 225 278 / +216 72 225 279"`

	// CompanyFax is the employer's fax number
	CompanyFax string `env:"LETTER_COMPANY_FAX" default:"+216 72 225 435"`

	// DefaultCareType pre-fills the care type when the form leaves it blank
	DefaultCareType string `env:"LETTER_DEFAULT_CARE_TYPE" default:"Consultation médicale"`

	// HospitalsFile optionally overrides the built-in facility directory
	// with a JSON array of {name, address} objects
	HospitalsFile string `env:"LETTER_HOSPITALS_FILE"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
