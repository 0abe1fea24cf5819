package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, input paths, etc.)
// - default: Values common across all environments (timezone, payment policy, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	DB      DBConfig
	Log     LogConfig
	Payment PaymentConfig
	Quote   QuoteConfig
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Australia/Sydney"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"json"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Australia/Sydney"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"36000"` // 10*60*60
}

type PaymentConfig struct {
	WaitListThreshold time.Duration   `envconfig:"PAYMENT_WAIT_LIST_THRESHOLD" default:"168h"`
	TooLateLeadTime   time.Duration   `envconfig:"PAYMENT_TOO_LATE_LEAD_TIME" default:"2h"`
	LowBalancePercent decimal.Decimal `envconfig:"PAYMENT_LOW_BALANCE_PERCENT" default:"10"`
	MaxExtraDays      int             `envconfig:"PAYMENT_MAX_EXTRA_DAYS" default:"30"`
}

type QuoteConfig struct {
	RequestPath string `envconfig:"QUOTE_REQUEST_PATH" required:"true"`
	OutputPath  string `envconfig:"QUOTE_OUTPUT_PATH" default:"-"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Australia/Sydney",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			Format:         "text",
			TimeZone:       "Australia/Sydney",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 36000,
		},
		Payment: PaymentConfig{
			WaitListThreshold: 168 * time.Hour,
			TooLateLeadTime:   2 * time.Hour,
			LowBalancePercent: decimal.NewFromInt(10),
			MaxExtraDays:      30,
		},
		Quote: QuoteConfig{
			RequestPath: "testdata/quote_request.json",
			OutputPath:  "-",
		},
	}
}
