package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/joho/godotenv"
)

type MongoConfig struct {
	URI                    string
	Database               string
	Timeout                time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

type RabbitMQConfig struct {
	URL        string
	MaxRetries int
	RetryDelay time.Duration
	Exchange   ExchangeConfig
}

type ExchangeConfig struct {
	Name       string
	Type       string // direct, topic, fanout, headers
	Durable    bool
	AutoDelete bool
}

type RedisConfig struct {
	URL       string
	Password  string
	DB        int
	KeyPrefix string
}

type HTTPConfig struct {
	Port               string
	BindInterface      string
	CORSAllowedOrigins []string
	RateLimit          int
	RateLimitWindow    time.Duration
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
	FilePath     string
}

type SessionConfig struct {
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

type IdempotencyConfig struct {
	TTL          time.Duration
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// MenuItemConfig is one entry of the MENU_ITEMS JSON array.
type MenuItemConfig struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

type MessagingConfig struct {
	Endpoint  string
	Recipient string
	Encoding  string
}

type Config struct {
	Mongo       MongoConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	HTTP        HTTPConfig
	Logger      LoggerConfig
	Session     SessionConfig
	Idempotency IdempotencyConfig
	Menu        []MenuItemConfig
	Messaging   MessagingConfig

	menuErr error
}

// Validate reports settings that were present but could not be parsed.
func (c *Config) Validate() error {
	if c.menuErr != nil {
		return fmt.Errorf("invalid MENU_ITEMS: %w", c.menuErr)
	}
	return nil
}

var defaultMenu = []MenuItemConfig{
	{Name: "Zinger Burger", Price: 300, Image: "images/zinger-burger.jpg"},
	{Name: "Fries", Price: 150, Image: "images/fries.jpg"},
	{Name: "Pizza Slice", Price: 250, Image: "images/pizza-slice.jpg"},
	{Name: "Drink", Price: 80, Image: "images/drink.jpg"},
}

func NewConfig() *Config {
	_ = godotenv.Load()
	menu, menuErr := getMenuEnv("MENU_ITEMS", defaultMenu)
	return &Config{
		Mongo: MongoConfig{
			URI:                    getStringEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:               getStringEnv("MONGO_DATABASE", "fastfood"),
			Timeout:                time.Duration(getIntEnv("MONGO_TIMEOUT", 10)) * time.Second,
			MaxPoolSize:            uint64(getIntEnv("MONGO_MAX_POOL_SIZE", 100)),
			MinPoolSize:            uint64(getIntEnv("MONGO_MIN_POOL_SIZE", 10)),
			ConnectTimeout:         time.Duration(getIntEnv("MONGO_CONNECT_TIMEOUT", 10)) * time.Second,
			ServerSelectionTimeout: time.Duration(getIntEnv("MONGO_SERVER_SELECTION_TIMEOUT", 5)) * time.Second,
		},
		Redis: RedisConfig{
			URL:       getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password:  getStringEnv("REDIS_PASSWORD", ""),
			DB:        getIntEnv("REDIS_DB", 0),
			KeyPrefix: getStringEnv("REDIS_KEY_PREFIX", "fastfood"),
		},
		HTTP: HTTPConfig{
			Port:               getStringEnv("HTTP_PORT", "8080"),
			BindInterface:      getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
			CORSAllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
			RateLimit:          getIntEnv("RATE_LIMIT", 100),
			RateLimitWindow:    time.Duration(getIntEnv("RATE_LIMIT_WINDOW", 60)) * time.Second,
		},
		RabbitMQ: RabbitMQConfig{
			URL:        getStringEnv("RABBITMQ_URL", "amqp://localhost:5672"),
			MaxRetries: getIntEnv("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay: time.Duration(getIntEnv("RABBITMQ_RETRY_DELAY", 1)) * time.Second,
			Exchange: ExchangeConfig{
				Name:       getStringEnv("RABBITMQ_EXCHANGE_NAME", "exchange.order"),
				Type:       getStringEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
				Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
				AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
			},
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "fastfood-express"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
			FilePath:     getStringEnv("LOG_FILE", ""),
		},
		Session: SessionConfig{
			TTL:          time.Duration(getIntEnv("SESSION_TTL_MINUTES", 120)) * time.Minute,
			CookieName:   getStringEnv("SESSION_COOKIE_NAME", "session_id"),
			CookieSecure: getBoolEnv("SESSION_COOKIE_SECURE", false),
		},
		Idempotency: IdempotencyConfig{
			TTL:          time.Duration(getIntEnv("IDEMPOTENCY_TTL_MINUTES", 15)) * time.Minute,
			PollInterval: time.Duration(getIntEnv("IDEMPOTENCY_POLL_INTERVAL_MS", 100)) * time.Millisecond,
			PollTimeout:  time.Duration(getIntEnv("IDEMPOTENCY_POLL_TIMEOUT_MS", 5000)) * time.Millisecond,
		},
		Menu:    menu,
		menuErr: menuErr,
		Messaging: MessagingConfig{
			Endpoint:  getStringEnv("MESSAGING_ENDPOINT", "https://wa.me"),
			Recipient: getStringEnv("MESSAGING_RECIPIENT", "923133850871"),
			Encoding:  getStringEnv("MESSAGING_ENCODING", "minimal"),
		},
	}
}

// getMenuEnv uses the default menu only when the variable is unset.
func getMenuEnv(key string, defaultValue []MenuItemConfig) ([]MenuItemConfig, error) {
	value := getStringEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	var items []MenuItemConfig
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, err
	}
	return items, nil
}
