package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the full service configuration read from the environment.
type Config struct {
	App            AppConfig       `envconfig:"APP"`
	Postgres       PostgresConfig  `envconfig:"POSTGRES"`
	Redis          RedisConfig     `envconfig:"REDIS"`
	JWT            JWTConfig       `envconfig:"JWT"`
	Kafka          KafkaConfig     `envconfig:"KAFKA"`
	RateLimit      RateLimitConfig `envconfig:"RATE_LIMIT"`
	ResetTokenTTL  time.Duration   `envconfig:"RESET_TOKEN_TTL" default:"1h"`
	GRPCHealthPort string          `envconfig:"GRPC_HEALTH_PORT" default:"9090"`
}

type AppConfig struct {
	Host        string `envconfig:"HOST" default:"localhost"`
	Port        string `envconfig:"PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"true"`
}

type PostgresConfig struct {
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         int    `envconfig:"PORT" default:"5432"`
	User         string `envconfig:"USER" default:"user"`
	Password     string `envconfig:"PASSWORD" default:"password"`
	DB           string `envconfig:"DB" default:"todo"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"16"`
	MaxIdleConns int    `envconfig:"MAX_IDLE_CONNS" default:"8"`
}

// DSN returns the pgx connection string with credentials percent-encoded.
func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DB,
		RawQuery: url.Values{"sslmode": {"disable"}}.Encode(),
	}
	return u.String()
}

type RedisConfig struct {
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         int    `envconfig:"PORT" default:"6379"`
	DB           int    `envconfig:"DB" default:"0"`
	Password     string `envconfig:"PASSWORD" default:""`
	PoolSize     int    `envconfig:"POOL_SIZE" default:"10"`
	MinIdleConns int    `envconfig:"MIN_IDLE_CONNS" default:"2"`
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type JWTConfig struct {
	SecretKey string `envconfig:"SECRET_KEY"`
	ExpSecond int    `envconfig:"EXP_SECOND" default:"3600"`
}

// Expiration returns the token lifetime.
func (c JWTConfig) Expiration() time.Duration {
	return time.Duration(c.ExpSecond) * time.Second
}

type KafkaConfig struct {
	Brokers    []string `envconfig:"BROKERS"`
	ResetTopic string   `envconfig:"RESET_TOPIC" default:"password-reset"`
}

type RateLimitConfig struct {
	Enabled  bool          `envconfig:"ENABLED" default:"true"`
	Requests int           `envconfig:"REQUESTS" default:"100"`
	Window   time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Load reads the optional env file at path into the process environment and then
// decodes the environment into a validated Config.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	for i := range cfg.Kafka.Brokers {
		cfg.Kafka.Brokers[i] = strings.TrimSpace(cfg.Kafka.Brokers[i])
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if err := validatePort("app", cfg.App.Port); err != nil {
		return err
	}
	if err := validatePort("grpc health", cfg.GRPCHealthPort); err != nil {
		return err
	}
	if cfg.Postgres.Port < 1 || cfg.Postgres.Port > 65535 {
		return fmt.Errorf("invalid postgres port: %d", cfg.Postgres.Port)
	}
	if cfg.Redis.Port < 1 || cfg.Redis.Port > 65535 {
		return fmt.Errorf("invalid redis port: %d", cfg.Redis.Port)
	}
	if strings.TrimSpace(cfg.JWT.SecretKey) == "" {
		return fmt.Errorf("jwt secret key is required")
	}
	if cfg.JWT.ExpSecond <= 0 {
		return fmt.Errorf("invalid jwt expiration: %d", cfg.JWT.ExpSecond)
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.Requests <= 0 {
			return fmt.Errorf("invalid rate limit requests: %d", cfg.RateLimit.Requests)
		}
		if cfg.RateLimit.Window <= 0 {
			return fmt.Errorf("invalid rate limit window: %s", cfg.RateLimit.Window)
		}
	}
	if cfg.ResetTokenTTL <= 0 {
		return fmt.Errorf("invalid reset token ttl: %s", cfg.ResetTokenTTL)
	}
	return nil
}

func validatePort(name, port string) error {
	if p, err := strconv.Atoi(port); err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid %s port: %s", name, port)
	}
	return nil
}
