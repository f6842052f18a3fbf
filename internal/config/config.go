package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBackendURL is the hosted payments backend used when BACKEND_API_URL is unset
	DefaultBackendURL = "https://itapay-backend.vercel.app"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Security SecurityConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	LogLevel        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type BackendConfig struct {
	BaseURL string
	APIKey  string
	// BreakerMaxFailures consecutive failures open the circuit; zero disables the breaker
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	CSRFEnabled        bool
}

// AuthConfig controls the optional operator token gate in front of the console.
// A nil PublicKey leaves the console open, matching the hosted deployment behind an SSO proxy.
type AuthConfig struct {
	PublicKey *rsa.PublicKey
	Issuer    string
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "3000"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getEnv("BACKEND_API_URL", DefaultBackendURL), "/"),
			APIKey:  os.Getenv("BACKEND_API_KEY"),

			BreakerMaxFailures:  getIntEnv("BACKEND_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("BACKEND_BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
			CSRFEnabled:        getBoolEnv("CSRF_ENABLED", true),
		},
		Auth: AuthConfig{
			Issuer: getEnv("ADMIN_JWT_ISSUER", "itapay-backend"),
		},
	}

	publicKey, err := loadAdminPublicKey(os.Getenv("ADMIN_JWT_PUBLIC_KEY"))
	if err != nil {
		return nil, err
	}
	config.Auth.PublicKey = publicKey

	if config.Auth.PublicKey == nil && config.IsProduction() {
		slog.Warn("ADMIN_JWT_PUBLIC_KEY not set in production, console routes are not token protected")
	}

	return config, nil
}

// Address returns the listen address for the console server
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *ServerConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AuthEnabled reports whether console routes require an operator token
func (c *Config) AuthEnabled() bool {
	return c.Auth.PublicKey != nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadAdminPublicKey decodes a base64-encoded PEM public key.
// An empty value disables the token gate and is not an error.
func loadAdminPublicKey(publicKeyB64 string) (*rsa.PublicKey, error) {
	if publicKeyB64 == "" {
		return nil, nil
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ADMIN_JWT_PUBLIC_KEY: %w", err)
	}

	publicKey, err := ParseRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ADMIN_JWT_PUBLIC_KEY: %w", err)
	}

	return publicKey, nil
}

// ParseRSAPublicKey loads an RSA public key from PEM format
func ParseRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
