package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	CatalogMemory   = "memory"
	CatalogPostgres = "postgres"
)

type Config struct {
	AppEnv          string        `env:"APP_ENV" envDefault:"development"`
	Port            string        `env:"APP_PORT" envDefault:"8082"`
	OriginURL       string        `env:"ORIGIN_URL"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	CatalogSource   string        `env:"CATALOG_SOURCE" envDefault:"memory"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	DBHost          string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort          string        `env:"DB_PORT" envDefault:"5454"`
	DBUser          string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword      string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName          string        `env:"DB_NAME" envDefault:"ice_cream_shop"`
	DBSSLMode       string        `env:"DB_SSLMODE" envDefault:"disable"`
	MigrationsPath  string        `env:"MIGRATIONS_PATH" envDefault:"database/migration"`
	RedisURL        string        `env:"REDIS_URL"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	MenuCacheTTL    time.Duration `env:"MENU_CACHE_TTL" envDefault:"5m"`
	TaxRate         string        `env:"TAX_RATE" envDefault:"0.08"`
	OrderClearDelay time.Duration `env:"ORDER_CLEAR_DELAY" envDefault:"2s"`
	CartIDStrategy  string        `env:"CART_ID_STRATEGY" envDefault:"sequence"`
	SMTPHost        string        `env:"SMTP_HOST"`
	SMTPPort        int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser        string        `env:"SMTP_USER"`
	SMTPPass        string        `env:"SMTP_PASS"`
	SMTPFrom        string        `env:"SMTP_FROM" envDefault:"hello@sweetdreamsicecream.com"`
	ContactInbox    string        `env:"CONTACT_INBOX" envDefault:"hello@sweetdreamsicecream.com"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	return ParseConfig()
}

func ParseConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.CatalogSource != CatalogMemory && c.CatalogSource != CatalogPostgres {
		return fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q", CatalogMemory, CatalogPostgres, c.CatalogSource)
	}
	rate, err := decimal.NewFromString(c.TaxRate)
	if err != nil {
		return fmt.Errorf("TAX_RATE %q: %w", c.TaxRate, err)
	}
	if rate.IsNegative() {
		return fmt.Errorf("TAX_RATE must not be negative, got %s", c.TaxRate)
	}
	if c.OrderClearDelay < 0 {
		return fmt.Errorf("ORDER_CLEAR_DELAY must not be negative, got %s", c.OrderClearDelay)
	}
	return nil
}

// MailEnabled reports whether outgoing mail is configured.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Tax returns TAX_RATE as a decimal. The value is checked by ParseConfig.
func (c *Config) Tax() decimal.Decimal {
	rate, err := decimal.NewFromString(c.TaxRate)
	if err != nil {
		return decimal.Zero
	}
	return rate
}

func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}
