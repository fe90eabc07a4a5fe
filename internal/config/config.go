package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"15s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"1m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15m"`
}

type Stripe struct {
	APIKey        string `yaml:"STRIPE_API_KEY" env:"STRIPE_API_KEY" env-default:""`
	WebhookSecret string `yaml:"STRIPE_WEBHOOK_SECRET" env:"STRIPE_WEBHOOK_SECRET" env-default:""`
	Currency      string `yaml:"STRIPE_CURRENCY" env:"STRIPE_CURRENCY" env-default:"inr"`
}

type SendGrid struct {
	APIKey string `yaml:"API_KEY" env:"SENDGRID_API_KEY"`
}

type SMTP struct {
	Host     string `yaml:"host" env:"SMTP_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
}

type SES struct {
	Region string `yaml:"region" env:"SES_REGION" env-default:"ap-south-1"`
}

// Mail selects and configures the transactional email provider.
type Mail struct {
	Provider      string   `yaml:"provider" env:"MAIL_PROVIDER" env-default:"sendgrid"`
	FromEmail     string   `yaml:"from_email" env:"MAIL_FROM_EMAIL" env-default:"orders@coolbreeze.in"`
	FromName      string   `yaml:"from_name" env:"MAIL_FROM_NAME" env-default:"CoolBreeze Air Coolers"`
	RatePerSecond float64  `yaml:"rate_per_second" env:"MAIL_RATE_PER_SECOND" env-default:"5"`
	AdminCopy     []string `yaml:"admin_copy" env:"MAIL_ADMIN_COPY" env-separator:","`
	SendGrid      SendGrid `yaml:"sendgrid"`
	SMTP          SMTP     `yaml:"smtp"`
	SES           SES      `yaml:"ses"`
}

type Security struct {
	JWTKey           string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	JWTExpiryHours   int    `yaml:"JWT_EXPIRY_HOURS" env:"JWT_EXPIRY_HOURS" env-default:"24"`
	MinPasswordScore int    `yaml:"MIN_PASSWORD_SCORE" env:"MIN_PASSWORD_SCORE" env-default:"2"`
}

type Otel struct {
	Enabled          bool    `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:"localhost:4318"`
	Insecure         bool    `yaml:"INSECURE" env:"OTEL_INSECURE" env-default:"true"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
	// Namespace prefixes every key so several environments can share a Redis.
	Namespace string `yaml:"namespace" env:"CACHE_NAMESPACE" env-default:"storefront"`
}

// Site holds the public-facing hosts. AdminHost enables the admin subdomain
// guard when set.
type Site struct {
	Domain    string `yaml:"domain" env:"SITE_DOMAIN" env-default:"localhost"`
	AdminHost string `yaml:"admin_host" env:"SITE_ADMIN_HOST"`
	PublicURL string `yaml:"public_url" env:"SITE_PUBLIC_URL" env-default:"http://localhost:3000"`
}

type Invoice struct {
	SellerName    string  `yaml:"seller_name" env:"INVOICE_SELLER_NAME" env-default:"CoolBreeze Appliances Pvt. Ltd."`
	SellerAddress string  `yaml:"seller_address" env:"INVOICE_SELLER_ADDRESS" env-default:""`
	GSTIN         string  `yaml:"gstin" env:"INVOICE_GSTIN" env-default:""`
	TaxRate       float64 `yaml:"tax_rate" env:"INVOICE_TAX_RATE" env-default:"0.18"`
	SupportEmail  string  `yaml:"support_email" env:"INVOICE_SUPPORT_EMAIL" env-default:"support@coolbreeze.in"`
}

type Storage struct {
	Bucket        string `yaml:"bucket" env:"STORAGE_BUCKET"`
	Region        string `yaml:"region" env:"STORAGE_REGION" env-default:"ap-south-1"`
	PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
	MaxImageBytes int64  `yaml:"max_image_bytes" env:"STORAGE_MAX_IMAGE_BYTES" env-default:"5242880"`
}

type Jobs struct {
	Enabled              bool   `yaml:"enabled" env:"JOBS_ENABLED" env-default:"true"`
	Timezone             string `yaml:"timezone" env:"JOBS_TIMEZONE" env-default:"Asia/Kolkata"`
	WarrantyReminderSpec string `yaml:"warranty_reminder_spec" env:"JOBS_WARRANTY_REMINDER_SPEC" env-default:"0 9 * * *"`
	WarrantyExpirySpec   string `yaml:"warranty_expiry_spec" env:"JOBS_WARRANTY_EXPIRY_SPEC" env-default:"15 0 * * *"`
	EmailRetrySpec       string `yaml:"email_retry_spec" env:"JOBS_EMAIL_RETRY_SPEC" env-default:"*/10 * * * *"`
	EmailMaxAttempts     int    `yaml:"email_max_attempts" env:"JOBS_EMAIL_MAX_ATTEMPTS" env-default:"3"`
	ReminderWindowDays   int    `yaml:"reminder_window_days" env:"JOBS_REMINDER_WINDOW_DAYS" env-default:"30"`
}

type Config struct {
	Env          string       `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Stripe       Stripe       `yaml:"stripe"`
	Mail         Mail         `yaml:"mail"`
	Security     Security     `yaml:"security"`
	Otel         Otel         `yaml:"otel"`
	Cache        CacheConfig  `yaml:"cache"`
	Site         Site         `yaml:"site"`
	Invoice      Invoice      `yaml:"invoice"`
	Storage      Storage      `yaml:"storage"`
	Jobs         Jobs         `yaml:"jobs"`
}

// MustLoad resolves the config path from CONFIG_PATH or -config and exits on
// any failure.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "path to the YAML config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not load config: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}
