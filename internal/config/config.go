package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type WetrackConfig struct {
	Env        string `yaml:"env" env:"WETRACK_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	TrackerDB  `yaml:"tracker_db"`
	Provider   `yaml:"currency_provider"`
	Auth       `yaml:"auth"`
	Kafka      `yaml:"kafka"`
	CORS       `yaml:"cors"`
}

type HTTPServer struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"15s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type TrackerDB struct {
	Dsn            string `yaml:"dsn" env:"TRACKER_DB_DSN" env-required:"true"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
}

type Provider struct {
	BaseURL string        `yaml:"base_url" env:"CURRENCY_API_URL" env-default:"https://api.fastforex.io"`
	APIKey  string        `yaml:"api_key" env:"CURRENCY_API_KEY" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env:"CURRENCY_API_TIMEOUT" env-default:"5s"`
}

type Auth struct {
	SigningSecret string        `yaml:"signing_secret" env:"JWT_SIGNING_SECRET" env-required:"true"`
	AccessTTL     time.Duration `yaml:"access_ttl" env-default:"30m"`
	RefreshTTL    time.Duration `yaml:"refresh_ttl" env-default:"168h"`
}

type Kafka struct {
	Enabled bool   `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"KAFKA_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"KAFKA_PORT" env-default:"9092"`
	Topic   string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"conversion-events"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

// MustLoad reads the YAML config named by WETRACK_CONFIG_PATH, overlays
// environment variables, and exits if any required secret is missing.
// Missing secrets must fail startup, never lazily per-request.
func MustLoad() *WetrackConfig {
	var cfg WetrackConfig

	configPath := os.Getenv("WETRACK_CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			log.Fatalf("failed to find config file: %v\n", err)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("failed to read config file: %v", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config from environment: %v", err)
	}

	return &cfg
}
