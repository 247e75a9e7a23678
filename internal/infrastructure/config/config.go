package config

import (
	"fieldservice/internal/infrastructure/payments"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreBackendMemory   = "memory"
	StoreBackendDynamoDB = "dynamodb"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig
	Log      LogConfig
	Store    StoreConfig
	DynamoDB DynamoDBConfig
	JWT      JWTConfig
	Pix      PixConfig
}

type AppConfig struct {
	Env      string
	Port     string
	SeedDemo bool
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

type StoreConfig struct {
	Backend string // memory, dynamodb
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // optional; e.g. http://dynamodb:8000
	TablePrefix     string
	EnsureTables    bool
}

type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// PixConfig fills the merchant fields of the placeholder PIX payload.
type PixConfig struct {
	MerchantName string
	MerchantCity string
}

// Load reads configuration from environment variables (a .env file is loaded
// beforehand by godotenv/autoload) on top of built-in defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Port:     v.GetString("HTTP_PORT"),
			SeedDemo: v.GetBool("SEED_DEMO_DATA"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		Store: StoreConfig{
			Backend: strings.ToLower(v.GetString("STORE_BACKEND")),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			TablePrefix:     v.GetString("DYNAMODB_TABLE_PREFIX"),
			EnsureTables:    v.GetBool("DYNAMODB_ENSURE_TABLES"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Issuer: v.GetString("JWT_ISSUER"),
			TTL:    v.GetDuration("JWT_TTL"),
		},
		Pix: PixConfig{
			MerchantName: v.GetString("PIX_MERCHANT_NAME"),
			MerchantCity: v.GetString("PIX_MERCHANT_CITY"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("STORE_BACKEND", StoreBackendMemory)
	v.SetDefault("AWS_REGION", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_TABLE_PREFIX", "fieldservice_")
	v.SetDefault("DYNAMODB_ENSURE_TABLES", false)
	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("JWT_ISSUER", "fieldservice")
	v.SetDefault("JWT_TTL", 8*time.Hour)
	v.SetDefault("PIX_MERCHANT_NAME", payments.DefaultMerchantName)
	v.SetDefault("PIX_MERCHANT_CITY", payments.DefaultMerchantCity)
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case StoreBackendMemory, StoreBackendDynamoDB:
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q: expected %s or %s", c.Store.Backend, StoreBackendMemory, StoreBackendDynamoDB)
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.IsProduction() && (c.JWT.Secret == "" || c.JWT.Secret == "dev-secret-change-me") {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if len(c.JWT.Secret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	return nil
}
