package models

import "time"

// Config represents application configuration
type Config struct {
	App            AppConfig
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	NSQ            NSQConfig
	JWT            JWTConfig
	RateLimit      RateLimitConfig
	Booking        BookingConfig
	PaymentGateway PaymentGatewayConfig
	Logger         LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

// IsProduction reports whether error details must be redacted for clients
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	URL            string
	Host           string
	Port           int
	Username       string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       int
	IdleConns      int
	ConnectTimeout time.Duration
	IdleTimeout    time.Duration
	QueryTimeout   time.Duration
	AutoMigrate    bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer and consumer addresses
type NSQConfig struct {
	Address        string
	LookupdAddress string
}

// JWTConfig contains bearer token verification configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// RateLimitConfig contains the fixed-window limiter settings
type RateLimitConfig struct {
	Window      time.Duration
	MaxRequests int
	Backend     string // memory or redis
}

// BookingConfig contains booking pricing settings
type BookingConfig struct {
	CommissionRate float64
}

// PaymentGatewayConfig contains payment gateway client and sandbox settings
type PaymentGatewayConfig struct {
	URL     string
	Secret  string
	Timeout time.Duration
	Port    int
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
}
