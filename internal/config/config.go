package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Роли консоли, которые понимает координатор
const (
	RoleDispatcher = "dispatcher"
	RoleOpCen      = "opCen"
)

// Транспорты канала событий
const (
	TransportWebsocket = "websocket"
	TransportNATS      = "nats"
)

// Config - структура для хранения конфигурации консоли
type Config struct {
	// Identity
	Role        string `env:"CONSOLE_ROLE" envDefault:"dispatcher"`
	ConsoleID   string `env:"CONSOLE_ID"`
	ConsoleName string `env:"CONSOLE_NAME"`

	// Channel Config
	ChannelTransport   string        `env:"CHANNEL_TRANSPORT" envDefault:"websocket"`
	ChannelURL         string        `env:"CHANNEL_URL" envDefault:"ws://localhost:3000/events"`
	ChannelToken       string        `env:"CHANNEL_TOKEN"`
	NATSURL            string        `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	NATSSubjectPrefix  string        `env:"NATS_SUBJECT_PREFIX" envDefault:"guardian"`
	ReconnectBaseDelay time.Duration `env:"RECONNECT_BASE_DELAY" envDefault:"500ms"`
	ReconnectMaxDelay  time.Duration `env:"RECONNECT_MAX_DELAY" envDefault:"30s"`

	// Emit queue
	EmitQueueMax int           `env:"EMIT_QUEUE_MAX" envDefault:"256"`
	EmitQueueTTL time.Duration `env:"EMIT_QUEUE_TTL" envDefault:"10m"`

	// Calls
	CallRingTimeout       time.Duration `env:"CALL_RING_TIMEOUT" envDefault:"30s"`
	CallMaxDisplayMembers int           `env:"CALL_MAX_DISPLAY_MEMBERS" envDefault:"3"`

	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr        string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass        string        `env:"REDIS_PASSWORD"`
	RedisDB          int           `env:"REDIS_DB" envDefault:"0"`
	IncidentCacheTTL time.Duration `env:"INCIDENT_CACHE_TTL" envDefault:"5m"`

	// Webhook Config (интеграция с чатом для сообщения о передаче инцидента)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		Role:                  getEnv("CONSOLE_ROLE", RoleDispatcher),
		ConsoleID:             os.Getenv("CONSOLE_ID"),
		ConsoleName:           os.Getenv("CONSOLE_NAME"),
		ChannelTransport:      getEnv("CHANNEL_TRANSPORT", TransportWebsocket),
		ChannelURL:            getEnv("CHANNEL_URL", "ws://localhost:3000/events"),
		ChannelToken:          os.Getenv("CHANNEL_TOKEN"),
		NATSURL:               getEnv("NATS_URL", "nats://localhost:4222"),
		NATSSubjectPrefix:     getEnv("NATS_SUBJECT_PREFIX", "guardian"),
		ReconnectBaseDelay:    getEnvAsDuration("RECONNECT_BASE_DELAY", 500*time.Millisecond),
		ReconnectMaxDelay:     getEnvAsDuration("RECONNECT_MAX_DELAY", 30*time.Second),
		EmitQueueMax:          getEnvAsInt("EMIT_QUEUE_MAX", 256),
		EmitQueueTTL:          getEnvAsDuration("EMIT_QUEUE_TTL", 10*time.Minute),
		CallRingTimeout:       getEnvAsDuration("CALL_RING_TIMEOUT", 30*time.Second),
		CallMaxDisplayMembers: getEnvAsInt("CALL_MAX_DISPLAY_MEMBERS", 3),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		IncidentCacheTTL:      getEnvAsDuration("INCIDENT_CACHE_TTL", 5*time.Minute),
		WebhookURL:            os.Getenv("WEBHOOK_URL"),
		WebhookSecret:         os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:        getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:     getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:      getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.ConsoleName == "" {
		cfg.ConsoleName = cfg.ConsoleID
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля и допустимые значения
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.ConsoleID == "" {
		return fmt.Errorf("CONSOLE_ID environment variable is required")
	}
	switch c.Role {
	case RoleDispatcher, RoleOpCen:
	default:
		return fmt.Errorf("CONSOLE_ROLE must be %q or %q, got %q", RoleDispatcher, RoleOpCen, c.Role)
	}
	switch c.ChannelTransport {
	case TransportWebsocket, TransportNATS:
	default:
		return fmt.Errorf("CHANNEL_TRANSPORT must be %q or %q, got %q", TransportWebsocket, TransportNATS, c.ChannelTransport)
	}
	if c.ReconnectBaseDelay <= 0 || c.ReconnectMaxDelay < c.ReconnectBaseDelay {
		return fmt.Errorf("invalid reconnect delays: base %v, max %v", c.ReconnectBaseDelay, c.ReconnectMaxDelay)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
