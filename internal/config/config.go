package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the application configuration
type Config struct {
	AppPort    string
	DBDriver   string // postgres, mysql or sqlite
	DBURL      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	LogLevel   logrus.Level
	IsProd     bool
}

// LoadConfig loads configuration from .env (if present) and the environment
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env file not found, relying on system env")
	}

	cfg := &Config{
		AppPort:    getenv("APP_PORT", "3000"),
		DBDriver:   getenv("DB_DRIVER", "postgres"),
		DBURL:      os.Getenv("DATABASE_URL"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		SQLitePath: getenv("SQLITE_PATH", "data/app.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   24 * time.Hour,
		BcryptCost: bcrypt.DefaultCost,
		LogLevel:   logrus.InfoLevel,
		IsProd:     os.Getenv("IS_PROD") == "true",
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TokenTTL = d
		} else {
			logrus.WithField("TOKEN_TTL", v).Warn("Invalid TOKEN_TTL, using default")
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= bcrypt.MinCost && n <= bcrypt.MaxCost {
			cfg.BcryptCost = n
		} else {
			logrus.WithField("BCRYPT_COST", v).Warn("Invalid BCRYPT_COST, using default")
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if lvl, err := logrus.ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "your-super-secret-key-change-in-production"
		if cfg.IsProd {
			logrus.Warn("JWT_SECRET is not set, using the built-in development secret")
		}
	}

	return cfg
}

// SetupLogger configures the standard logrus logger
func (c *Config) SetupLogger() {
	if c.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(c.LogLevel)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
