package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/spf13/pflag"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	App      *App
	Cache    *Cache
	Auth     *Auth
	Remotes  *Remotes
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

const (
	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
)

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString      string        `env:"RUN_ADDRESS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

type Cache struct {
	Driver    string        `env:"CACHE_DRIVER"`
	RedisAddr string        `env:"REDIS_ADDRESS"`
	TTL       time.Duration `env:"CACHE_TTL"`
	Size      int           `env:"CACHE_SIZE"`
}

type Auth struct {
	PublicKeyHex string        `env:"AUTH_PUBLIC_KEY"`
	SecretKeyHex string        `env:"AUTH_SECRET_KEY"`
	TokenTTL     time.Duration `env:"TOKEN_TTL"`
}

// Remote configures one sibling service and the resilience policy guarding calls to it.
type Remote struct {
	HostString          string        `env:"ADDRESS"`
	Timeout             time.Duration `env:"TIMEOUT" envDefault:"3s"`
	RetryAttempts       uint          `env:"RETRY_ATTEMPTS" envDefault:"3"`
	RetryDelay          time.Duration `env:"RETRY_DELAY" envDefault:"200ms"`
	BreakerWindow       time.Duration `env:"BREAKER_WINDOW" envDefault:"60s"`
	BreakerTimeout      time.Duration `env:"BREAKER_TIMEOUT" envDefault:"10s"`
	BreakerMinRequests  uint32        `env:"BREAKER_MIN_REQUESTS" envDefault:"5"`
	BreakerFailureRatio float64       `env:"BREAKER_FAILURE_RATIO" envDefault:"0.5"`
	BreakerHalfOpen     uint32        `env:"BREAKER_HALF_OPEN" envDefault:"3"`
}

type Remotes struct {
	Products     Remote `envPrefix:"PRODUCTS_"`
	Orders       Remote `envPrefix:"ORDERS_"`
	OrderDetails Remote `envPrefix:"ORDER_DETAILS_"`
}

// NewConfig registers command line flags on fs. Values are final only after
// the flag set is parsed and Load is called.
func NewConfig(fs *pflag.FlagSet, defaultAddr string) *Config {
	var db Database
	var http HTTP
	var app App
	var cache Cache
	var auth Auth
	var remotes Remotes

	fs.StringVarP(&db.DSN, "database", "d", "", "Database string")
	fs.StringVarP(&http.HostString, "address", "a", defaultAddr, "HTTP server endpoint")
	fs.DurationVar(&http.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "Graceful shutdown timeout")
	fs.StringVarP(&app.LogLevel, "log-level", "l", `error`, "Log level")
	fs.StringVarP(&app.Mode, "mode", "m", AppModeDevelop, "PROD / DEV")
	fs.StringVar(&cache.Driver, "cache", CacheDriverMemory, "Cache driver: redis / memory")
	fs.StringVar(&cache.RedisAddr, "redis", "localhost:6379", "Redis address")
	fs.DurationVar(&cache.TTL, "cache-ttl", 0, "Cache entry TTL, 0 keeps entries until evicted")
	fs.IntVar(&cache.Size, "cache-size", 4096, "In-memory cache capacity")
	fs.StringVar(&auth.PublicKeyHex, "public-key", "", "Token verification key (hex)")
	fs.StringVar(&auth.SecretKeyHex, "secret-key", "", "Token signing key (hex)")
	fs.DurationVar(&auth.TokenTTL, "token-ttl", 24*time.Hour, "Issued token lifetime")
	fs.StringVarP(&remotes.Products.HostString, "products", "p", "localhost:8081", "Products service address")
	fs.StringVarP(&remotes.Orders.HostString, "orders", "o", "localhost:8082", "Orders service address")
	fs.StringVarP(&remotes.OrderDetails.HostString, "order-details", "r", "localhost:8083", "Order details service address")

	return &Config{
		Database: &db,
		HTTP:     &http,
		App:      &app,
		Cache:    &cache,
		Auth:     &auth,
		Remotes:  &remotes,
	}
}

// Load overrides flag values with environment variables.
func (c *Config) Load() error {
	err := env.Parse(c.Database)
	if err != nil {
		return fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(c.HTTP)
	if err != nil {
		return fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(c.App)
	if err != nil {
		return fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(c.Cache)
	if err != nil {
		return fmt.Errorf("error parsing cache config: %w", err)
	}
	err = env.Parse(c.Auth)
	if err != nil {
		return fmt.Errorf("error parsing auth config: %w", err)
	}
	err = env.Parse(c.Remotes)
	if err != nil {
		return fmt.Errorf("error parsing remotes config: %w", err)
	}

	if c.Cache.Driver != CacheDriverRedis && c.Cache.Driver != CacheDriverMemory {
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}

	return nil
}
