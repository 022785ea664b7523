// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Remote      RemoteConfig
	Local       LocalConfig
	JWT         JWTConfig
	Redis       RedisConfig
	AWS         AWSConfig
	Robot       RobotConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// RemoteConfig gates the remote record store. Both URL and AnonKey must be
// non-empty for any remote operation to be attempted; otherwise every call
// routes straight to the local record store.
type RemoteConfig struct {
	URL          string // postgres connection string of the hosted store
	AnonKey      string // anonymous access key issued by the hosting service
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

// Configured reports whether the remote store should be used. This is a
// plain field check: the decision is made once at startup, not re-evaluated
// per call.
func (r RemoteConfig) Configured() bool {
	return r.URL != "" && r.AnonKey != ""
}

type LocalConfig struct {
	Path string // SQLite file backing the local record store
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  int // in hours
	RefreshTokenTTL int // in hours
}

type RedisConfig struct {
	URL string // optional; empty disables the cross-process bus bridge
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	CloudFrontURL   string
}

type RobotConfig struct {
	Enabled      bool
	TickInterval int // in seconds
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Remote: RemoteConfig{
			URL:          getEnv("REMOTE_DB_URL", ""),
			AnonKey:      getEnv("REMOTE_DB_KEY", ""),
			MaxOpenConns: getEnvAsInt("REMOTE_DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("REMOTE_DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("REMOTE_DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("REMOTE_DB_LOG_LEVEL", "silent"),
		},
		Local: LocalConfig{
			Path: getEnv("LOCAL_STORE_PATH", "./agrimarket.db"),
		},
		JWT: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenTTL:  getEnvAsInt("JWT_ACCESS_TTL", 24),   // 24 hours
			RefreshTokenTTL: getEnvAsInt("JWT_REFRESH_TTL", 168), // 7 days
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "ap-southeast-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "agrimarket-assets"),
			CloudFrontURL:   getEnv("AWS_CLOUDFRONT_URL", ""),
		},
		Robot: RobotConfig{
			Enabled:      getEnvAsBool("ROBOT_SIMULATOR_ENABLED", true),
			TickInterval: getEnvAsInt("ROBOT_TICK_INTERVAL", 5),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	if c.Local.Path == "" {
		return fmt.Errorf("local store path is required")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
