package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultConfigPath = "config/local.yaml"

type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Storage selects the durable key-value backend that holds session tokens and users.
// Driver is one of memory, sqlite, postgres, redis.
type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	Path   string `yaml:"path" env:"STORAGE_PATH" env-default:"storefront.db"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`
}

// CacheConfig drives memoization of catalog queries. Driver is memory or redis.
type CacheConfig struct {
	Driver     string        `yaml:"driver" env:"CACHE_DRIVER" env-default:"memory"`
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

type Security struct {
	JWTKey         string `yaml:"JWT_KEY" env:"JWT_KEY" env-default:"storefront-dev-key"`
	JWTExpiryHours int    `yaml:"JWT_EXPIRY_HOURS" env:"JWT_EXPIRY_HOURS" env-default:"24"`
}

type Auth struct {
	Latency time.Duration `yaml:"latency" env:"AUTH_LATENCY" env-default:"1s"`
	Avatar  string        `yaml:"avatar" env:"AUTH_AVATAR" env-default:"https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=100"`
}

// Checkout.Provider is fake or stripe.
type Checkout struct {
	TaxRate        float64       `yaml:"tax_rate" env:"CHECKOUT_TAX_RATE" env-default:"0.08"`
	Currency       string        `yaml:"currency" env:"CHECKOUT_CURRENCY" env-default:"usd"`
	Provider       string        `yaml:"provider" env:"CHECKOUT_PROVIDER" env-default:"fake"`
	PaymentLatency time.Duration `yaml:"payment_latency" env:"CHECKOUT_PAYMENT_LATENCY" env-default:"2s"`
	DownloadURL    string        `yaml:"download_url" env:"CHECKOUT_DOWNLOAD_URL" env-default:"/downloads"`
}

type Session struct {
	IdleTTL time.Duration `yaml:"idle_ttl" env:"SESSION_IDLE_TTL" env-default:"30m"`
}

type Notifications struct {
	ToastTTL time.Duration `yaml:"toast_ttl" env:"TOAST_TTL" env-default:"3s"`
}

type Stripe struct {
	APIKey        string `yaml:"STRIPE_API_KEY" env:"STRIPE_API_KEY" env-default:""`
	PaymentMethod string `yaml:"STRIPE_PAYMENT_METHOD" env:"STRIPE_PAYMENT_METHOD" env-default:"pm_card_visa"`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY"`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"no-reply@storefront.local"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Digital Storefront"`
}

type RabbitMQ struct {
	URL   string `yaml:"url" env:"RABBITMQ_URL"`
	Queue string `yaml:"queue" env:"RABBITMQ_QUEUE" env-default:"purchases"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"digital-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1"`
}

type Config struct {
	Env           string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer    `yaml:"http_server"`
	Storage       Storage       `yaml:"storage"`
	Database      Database      `yaml:"database"`
	RedisConnect  RedisConnect  `yaml:"redis"`
	RateConfig    RateConfig    `yaml:"rateConfig"`
	Cache         CacheConfig   `yaml:"cache"`
	Security      Security      `yaml:"security"`
	Auth          Auth          `yaml:"auth"`
	Checkout      Checkout      `yaml:"checkout"`
	Session       Session       `yaml:"session"`
	Notifications Notifications `yaml:"notifications"`
	Stripe        Stripe        `yaml:"stripe"`
	SendGrid      SendGrid      `yaml:"sendgrid"`
	RabbitMQ      RabbitMQ      `yaml:"rabbitmq"`
	Otel          Otel          `yaml:"otel"`
}

// ResolvePath picks the config file: explicit flag, then CONFIG_PATH, then DefaultConfigPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}

	return DefaultConfigPath
}

// LoadConfigFromPath reads the YAML file at path with env overrides. A missing file
// falls back to environment variables and defaults.
func LoadConfigFromPath(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("can not read config from env: %w", err)
		}

		return &cfg, cfg.validate()
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file %s: %w", path, err)
	}

	return &cfg, cfg.validate()
}

func MustLoad(flagValue string) *Config {
	cfg, err := LoadConfigFromPath(ResolvePath(flagValue))
	if err != nil {
		log.Fatalf("can not load config: %s", err.Error())
	}

	return cfg
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "memory", "sqlite", "redis":
	case "postgres":
		if c.Database.User == "" || c.Database.Name == "" {
			return fmt.Errorf("storage driver postgres requires PG_USER and PG_DBNAME")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if (c.Storage.Driver == "redis" || c.Cache.Driver == "redis") && !c.RedisConnect.Enabled() {
		return fmt.Errorf("redis is selected but REDIS_HOST is not set")
	}

	switch c.Checkout.Provider {
	case "fake":
	case "stripe":
		if c.Stripe.APIKey == "" {
			return fmt.Errorf("checkout provider stripe requires STRIPE_API_KEY")
		}
	default:
		return fmt.Errorf("unknown checkout provider %q", c.Checkout.Provider)
	}

	if c.Checkout.TaxRate < 0 {
		return fmt.Errorf("tax rate must not be negative")
	}

	return nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) Enabled() bool {
	return r.Host != ""
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}
