package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	Automation AutomationConfig
	Channels   ChannelsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// AutomationConfig controls the trigger engine, the retry executor, and the
// background scheduler. Reminder windows are evaluated in UTC.
type AutomationConfig struct {
	SchedulerInterval  time.Duration `envconfig:"AUTOMATION_SCHEDULER_INTERVAL" default:"60s"`
	ReminderWindow     time.Duration `envconfig:"AUTOMATION_REMINDER_WINDOW" default:"24h"`
	FormReminderAfter  time.Duration `envconfig:"AUTOMATION_FORM_REMINDER_AFTER" default:"24h"`
	RetryMaxAttempts   int           `envconfig:"AUTOMATION_RETRY_MAX_ATTEMPTS" default:"3"`
	RetryBaseDelay     time.Duration `envconfig:"AUTOMATION_RETRY_BASE_DELAY" default:"1s"`
	RetryMaxDelay      time.Duration `envconfig:"AUTOMATION_RETRY_MAX_DELAY" default:"30s"`
	DefaultSlotMinutes int           `envconfig:"AUTOMATION_DEFAULT_SLOT_MINUTES" default:"30"`
}

// ChannelsConfig holds the endpoints of the external messaging collaborators.
// Empty URLs mean the corresponding integration is not connected.
type ChannelsConfig struct {
	MailRelayURL      string        `envconfig:"CHANNEL_MAIL_RELAY_URL" default:""`
	MailRelayAPIKey   string        `envconfig:"CHANNEL_MAIL_RELAY_API_KEY" default:""`
	WhatsAppBridgeURL string        `envconfig:"CHANNEL_WHATSAPP_BRIDGE_URL" default:""`
	CalendarAPIURL    string        `envconfig:"CHANNEL_CALENDAR_API_URL" default:"https://www.googleapis.com/calendar/v3"`
	FormBaseURL       string        `envconfig:"CHANNEL_FORM_BASE_URL" default:"http://localhost:3000"`
	HTTPTimeout       time.Duration `envconfig:"CHANNEL_HTTP_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
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
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Automation: AutomationConfig{
			SchedulerInterval:  time.Minute,
			ReminderWindow:     24 * time.Hour,
			FormReminderAfter:  24 * time.Hour,
			RetryMaxAttempts:   3,
			RetryBaseDelay:     time.Millisecond,
			RetryMaxDelay:      5 * time.Millisecond,
			DefaultSlotMinutes: 30,
		},
		Channels: ChannelsConfig{
			FormBaseURL: "http://localhost:3000",
			HTTPTimeout: time.Second,
		},
	}
}
