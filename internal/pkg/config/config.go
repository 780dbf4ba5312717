package config

import (
	"errors"
	"io/fs"
	"log"
	"time"

	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from an optional env file and the process
// environment. Environment variables always win over the file.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				log.Println("error loading config from file", err)
			}
		}
	}
	v.AutomaticEnv()

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "intercity")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DB_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "intercity")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)
	v.SetDefault("DB_CONNECT_TIMEOUT", "2s")
	v.SetDefault("DB_IDLE_TIMEOUT", "30s")
	v.SetDefault("DB_QUERY_TIMEOUT", "10s")
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ADDRESS", "")
	v.SetDefault("NSQ_LOOKUPD_ADDRESS", "")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("JWT_EXPIRATION", 60)

	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 900)
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_BACKEND", "memory")

	v.SetDefault("BOOKING_COMMISSION_RATE", 0.10)

	v.SetDefault("PAYMENT_GATEWAY_URL", "http://localhost:9090")
	v.SetDefault("PAYMENT_GATEWAY_SECRET", "")
	v.SetDefault("PAYMENT_GATEWAY_TIMEOUT", "10s")
	v.SetDefault("PAYMENT_GATEWAY_PORT", 9090)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.URL = v.GetString("DB_URL")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.ConnectTimeout = v.GetDuration("DB_CONNECT_TIMEOUT")
	configs.Database.IdleTimeout = v.GetDuration("DB_IDLE_TIMEOUT")
	configs.Database.QueryTimeout = v.GetDuration("DB_QUERY_TIMEOUT")
	configs.Database.AutoMigrate = v.GetBool("DB_AUTO_MIGRATE")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.LookupdAddress = v.GetString("NSQ_LOOKUPD_ADDRESS")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")

	// Rate limit config
	configs.RateLimit.Window = time.Duration(v.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second
	configs.RateLimit.MaxRequests = v.GetInt("RATE_LIMIT_MAX_REQUESTS")
	configs.RateLimit.Backend = v.GetString("RATE_LIMIT_BACKEND")

	// Booking config
	configs.Booking.CommissionRate = v.GetFloat64("BOOKING_COMMISSION_RATE")

	// Payment gateway config
	configs.PaymentGateway.URL = v.GetString("PAYMENT_GATEWAY_URL")
	configs.PaymentGateway.Secret = v.GetString("PAYMENT_GATEWAY_SECRET")
	configs.PaymentGateway.Timeout = v.GetDuration("PAYMENT_GATEWAY_TIMEOUT")
	configs.PaymentGateway.Port = v.GetInt("PAYMENT_GATEWAY_PORT")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
