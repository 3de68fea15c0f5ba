package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures process-wide configuration, read once at startup.
type Server struct {
	Addr          string `env:"WATCHDOG_ADDR" envDefault:":8080"`
	Environment   string `env:"WATCHDOG_ENV" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	JWTSigningKey string `env:"JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	JWTIssuer     string `env:"JWT_ISSUER" envDefault:"watchdog"`

	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Mailer    MailerConfig
	Registrar RegistrarConfig
}

// DatabaseConfig configures the read-side Postgres pool. An empty URL selects
// the in-memory repositories.
type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"5m"`
}

// RedisConfig configures the TLD catalog Redis store. An empty URL selects
// the in-process store.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// KafkaConfig configures the trigger queue consumer. Empty brokers disable it.
type KafkaConfig struct {
	Brokers      string `env:"KAFKA_BROKERS"`
	GroupID      string `env:"KAFKA_GROUP_ID" envDefault:"watchdog-triggers"`
	TriggerTopic string `env:"KAFKA_TRIGGER_TOPIC" envDefault:"domain.updated"`
}

// MailerConfig configures the SMTP notification transport.
type MailerConfig struct {
	Host        string `env:"SMTP_HOST" envDefault:"localhost"`
	Port        int    `env:"SMTP_PORT" envDefault:"25"`
	Username    string `env:"SMTP_USERNAME"`
	Password    string `env:"SMTP_PASSWORD"`
	SenderEmail string `env:"MAILER_SENDER_EMAIL" envDefault:"notifications@domainwatchdog.local"`
	SenderName  string `env:"MAILER_SENDER_NAME" envDefault:"Domain Watchdog"`
}

// RegistrarConfig configures the outbound registrar API clients.
type RegistrarConfig struct {
	HTTPTimeout  time.Duration `env:"REGISTRAR_HTTP_TIMEOUT" envDefault:"30s"`
	GandiBaseURL string        `env:"GANDI_BASE_URL" envDefault:"https://api.gandi.net"`
	TLDCacheTTL  time.Duration `env:"TLD_CACHE_TTL" envDefault:"24h"`
}

// KafkaBrokerList splits the comma-separated broker setting.
func (k KafkaConfig) KafkaBrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// FromEnv builds the Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
