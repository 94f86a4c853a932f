package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	Kafka Kafka
	Redis Redis
	Cache Cache

	Frontend Frontend `validate:"required"`

	// Пустые ключи переключают интеграции в деградированный режим
	Stripe   Stripe
	EasyPost EasyPost
	Auth     Auth
	Tracing  Tracing
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	Brokers []string `validate:"omitempty,dive,hostname_port"`
	Topic   string   `validate:"required_with=Brokers"`

	BatchTimeout time.Duration `validate:"gte=0"`
	// Публикация не должна задерживать ответ дольше PublishTimeout
	PublishTimeout time.Duration `validate:"gt=0"`
}

type Redis struct {
	Addr     string `validate:"omitempty,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Frontend struct {
	URL string `validate:"required,url"`
}

type Stripe struct {
	APIKey        string
	WebhookSecret string
	Currency      string        `validate:"required,len=3"`
	Timeout       time.Duration `validate:"gt=0"`
}

type EasyPost struct {
	APIKey  string
	Timeout time.Duration `validate:"gt=0"`
}

type Auth struct {
	JWTSecret   string
	ProviderURL string `validate:"omitempty,url"`

	Timeout    time.Duration `validate:"gt=0"`
	RetryDelay time.Duration `validate:"gte=0"`
}

type Tracing struct {
	Endpoint    string `validate:"omitempty,hostname_port"`
	ServiceName string `validate:"required"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "1337"),
		},

		Cors: CORS{
			AllowedOrigins: envList("ALLOWED_CORS_ORIGINS", "http://localhost:3000,http://localhost:1337"),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "sneakers"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Kafka: Kafka{
			Brokers:        envList("KAFKA_BROKERS", ""),
			Topic:          env("KAFKA_TOPIC", "order-events"),
			BatchTimeout:   envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
			PublishTimeout: envDuration("KAFKA_PUBLISH_TIMEOUT", 2*time.Second),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", ""),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 5*time.Minute),
		},

		Frontend: Frontend{
			URL: strings.TrimRight(env("FRONTEND_URL", "http://localhost:3000"), "/"),
		},

		Stripe: Stripe{
			APIKey:        env("STRIPE_KEY", ""),
			WebhookSecret: env("STRIPE_WEBHOOK_SECRET", ""),
			Currency:      env("STRIPE_CURRENCY", "usd"),
			Timeout:       envDuration("STRIPE_TIMEOUT", 10*time.Second),
		},

		EasyPost: EasyPost{
			APIKey:  env("EASYPOST_API_KEY", ""),
			Timeout: envDuration("EASYPOST_TIMEOUT", 10*time.Second),
		},

		Auth: Auth{
			JWTSecret:   env("JWT_SECRET", ""),
			ProviderURL: strings.TrimRight(env("AUTH_PROVIDER_URL", ""), "/"),
			Timeout:     envDuration("AUTH_TIMEOUT", 10*time.Second),
			RetryDelay:  envDuration("AUTH_RETRY_DELAY", time.Second),
		},

		Tracing: Tracing{
			Endpoint:    env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: env("OTEL_SERVICE_NAME", "sneaker-store"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	validate.RegisterStructValidation(productionSecrets, Config{})
	return validate.Struct(c)
}

// В production вебхуки без подписи не принимаются.
func productionSecrets(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	if c.Env == "production" && c.Stripe.WebhookSecret == "" {
		sl.ReportError(c.Stripe.WebhookSecret, "Stripe.WebhookSecret", "WebhookSecret", "required_in_production", "")
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envList(key string, fallback string) []string {
	value := env(key, fallback)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
