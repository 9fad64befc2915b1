package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the application configuration, read from a yaml file overlaid
// with environment variables.
type Config struct {
	// Environment selects logger behavior (development, production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains the webhook/operator server settings.
	HTTP struct {
		// Addr is the address and port the server listens on.
		Addr string `env:"HTTP_ADDR" env-default:":5000" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading an entire request.
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the time allowed to read request headers.
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out response writes.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the keep-alive idle limit.
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MaxHeaderBytes caps request header size; 0 uses the net/http default.
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath is where prometheus metrics are served.
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains PostgreSQL connection settings.
	Database struct {
		Username           string        `env:"DATABASE_USERNAME" env-default:"relay" yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD" env-default:"relay" yaml:"password"`
		Host               string        `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME" env-default:"relay" yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Webhook controls which WhatsApp deliveries the relay accepts.
	Webhook struct {
		// Secret must match the X-Webhook-Secret header on every delivery.
		// Empty disables the check (local development only).
		Secret string `env:"WEBHOOK_SECRET" yaml:"secret"`
		// MonitoredGroups is the whitelist of group JIDs to ingest from.
		// Empty means every group is accepted.
		MonitoredGroups []string `env:"WEBHOOK_MONITORED_GROUPS" env-separator:"," yaml:"monitoredGroups"`
	} `yaml:"webhook"`

	// Evolution points at the WAHA gateway instance.
	Evolution struct {
		BaseURL        string        `env:"EVOLUTION_BASE_URL" yaml:"baseUrl"`
		APIKey         string        `env:"EVOLUTION_API_KEY" yaml:"apiKey"`
		RequestTimeout time.Duration `env:"EVOLUTION_REQUEST_TIMEOUT" env-default:"1m" yaml:"requestTimeout"`
	} `yaml:"evolution"`

	// Telegram configures the delivery destination.
	Telegram struct {
		// BotToken authenticates the delivery bot.
		BotToken string `env:"TELEGRAM_BOT_TOKEN" yaml:"botToken"`
		// ForwardChat receives receipt documents ("@username" or chat ID).
		ForwardChat string `env:"TELEGRAM_FORWARD_CHAT" yaml:"forwardChat"`
		// AdminChat receives error notifications.
		AdminChat string `env:"TELEGRAM_ADMIN_CHAT" yaml:"adminChat"`
	} `yaml:"telegram"`

	// Vault configures encrypted media storage.
	Vault struct {
		// Dir is the directory holding encrypted media files.
		Dir string `env:"VAULT_DIR" env-default:"media" yaml:"dir"`
		// Key is the base64 fernet key sealing media at rest.
		Key string `env:"VAULT_KEY" yaml:"key"`
	} `yaml:"vault"`

	// Relay tunes ingest and delivery behavior.
	Relay struct {
		// MaxDeliveryAttempts bounds retries of a Telegram delivery job.
		MaxDeliveryAttempts int `env:"RELAY_MAX_DELIVERY_ATTEMPTS" env-default:"5" yaml:"maxDeliveryAttempts"`
		// DeliveryUniquePeriod is the window within which duplicate delivery
		// jobs for the same receipt are collapsed.
		DeliveryUniquePeriod time.Duration `env:"RELAY_DELIVERY_UNIQUE_PERIOD" env-default:"24h" yaml:"deliveryUniquePeriod"`
		// MatchThreshold is the minimum token-sort ratio (0-100) for a query
		// to count as a match.
		MatchThreshold int `env:"RELAY_MATCH_THRESHOLD" env-default:"72" yaml:"matchThreshold"`
		// DeliveryWorkers caps concurrent delivery jobs.
		DeliveryWorkers int `env:"RELAY_DELIVERY_WORKERS" env-default:"4" yaml:"deliveryWorkers"`
	} `yaml:"relay"`

	// JWT holds the RS256 key pair for operator tokens. The private key is
	// only needed by the jwt subcommand.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout bounds how long shutdown waits for in-flight
	// requests and jobs.
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml config at configPath overlaid with environment
// variables and returns the filled Config.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
