package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Inference InferenceConfig
	Model     ModelConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Environment string
	Debug       bool
	SeedOnStart bool
	LogPath     string
}

type DatabaseConfig struct {
	URL      string
	MaxConns int32
}

type JWTConfig struct {
	Secret        string
	ExpiryMinutes int
}

// InferenceConfig points the API at the sentiment model service.
type InferenceConfig struct {
	Host    string
	Timeout time.Duration
	Port    string
}

type ModelConfig struct {
	Path   string
	Device string
}

type RateLimitConfig struct {
	LoginPerSecond float64
	LoginBurst     int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-reviews")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("ENVIRONMENT", EnvProd)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DATABASE_URL", "postgres://user:password@db:5432/movies?sslmode=disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("JWT_EXPIRY_MINUTES", 30)
	viper.SetDefault("INFERENCE_HOST", "http://inference_service:8001")
	viper.SetDefault("INFERENCE_TIMEOUT", "5s")
	viper.SetDefault("INFERENCE_PORT", "8001")
	viper.SetDefault("MODEL_PATH", "models/sentiment.json")
	viper.SetDefault("MODEL_DEVICE", "auto")
	viper.SetDefault("LOGIN_RATE_LIMIT", 5)
	viper.SetDefault("LOGIN_RATE_BURST", 10)

	// .env is optional, containers pass plain environment variables
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	env := strings.ToLower(viper.GetString("ENVIRONMENT"))
	if env != EnvDev {
		env = EnvProd
	}

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Port:        viper.GetString("PORT"),
			Environment: env,
			Debug:       env == EnvDev,
			SeedOnStart: env == EnvDev,
			LogPath:     viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URL:      viper.GetString("DATABASE_URL"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			ExpiryMinutes: viper.GetInt("JWT_EXPIRY_MINUTES"),
		},
		Inference: InferenceConfig{
			Host:    strings.TrimRight(viper.GetString("INFERENCE_HOST"), "/"),
			Timeout: viper.GetDuration("INFERENCE_TIMEOUT"),
			Port:    viper.GetString("INFERENCE_PORT"),
		},
		Model: ModelConfig{
			Path:   viper.GetString("MODEL_PATH"),
			Device: strings.ToLower(viper.GetString("MODEL_DEVICE")),
		},
		RateLimit: RateLimitConfig{
			LoginPerSecond: viper.GetFloat64("LOGIN_RATE_LIMIT"),
			LoginBurst:     viper.GetInt("LOGIN_RATE_BURST"),
		},
	}

	return config, nil
}
