package config

import (
	"strings"
	"time"
)

// Cache backends selectable with cache.backend.
const (
	CacheBackendMemory   = "memory"
	CacheBackendRedis    = "redis"
	CacheBackendPostgres = "postgres"
	CacheBackendSQLite   = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	PokeAPI   PokeAPIConfig   `yaml:"pokeapi"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Cache     CacheConfig     `yaml:"cache"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	ViewState ViewStateConfig `yaml:"viewstate"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBatchIDs     int           `yaml:"max_batch_ids"    env:"SERVER_MAX_BATCH_IDS"    env-default:"50"`
	BatchWorkers    int           `yaml:"batch_workers"    env:"SERVER_BATCH_WORKERS"    env-default:"8"`
}

// PokeAPIConfig holds settings for the upstream REST API client.
type PokeAPIConfig struct {
	BaseURL string        `yaml:"base_url" env:"POKEAPI_BASE_URL" env-default:"https://pokeapi.co/api/v2"`
	Timeout time.Duration `yaml:"timeout"  env:"POKEAPI_TIMEOUT"  env-default:"10s"`
}

// CatalogConfig holds the full-catalog cache policy.
type CatalogConfig struct {
	MaxAge          time.Duration `yaml:"max_age"           env:"CATALOG_MAX_AGE"           env-default:"24h"`
	DefaultPageSize int           `yaml:"default_page_size" env:"CATALOG_DEFAULT_PAGE_SIZE" env-default:"20"`
}

// CacheConfig selects the cache store backend.
type CacheConfig struct {
	Backend    string `yaml:"backend"     env:"CACHE_BACKEND"     env-default:"memory"`
	SQLitePath string `yaml:"sqlite_path" env:"CACHE_SQLITE_PATH" env-default:"./data/pokedex-cache.db"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used by the
// postgres cache backend.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// RedisConfig holds Redis connection settings. Only used by the redis cache
// backend.
type RedisConfig struct {
	URL          string        `yaml:"url"            env:"REDIS_URL"`
	PoolSize     int           `yaml:"pool_size"      env:"REDIS_POOL_SIZE"      env-default:"10"`
	MinIdleConns int           `yaml:"min_idle_conns" env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
	DialTimeout  time.Duration `yaml:"dial_timeout"   env:"REDIS_DIAL_TIMEOUT"   env-default:"5s"`
	ReadTimeout  time.Duration `yaml:"read_timeout"   env:"REDIS_READ_TIMEOUT"   env-default:"3s"`
	WriteTimeout time.Duration `yaml:"write_timeout"  env:"REDIS_WRITE_TIMEOUT"  env-default:"3s"`
	KeyPrefix    string        `yaml:"key_prefix"     env:"REDIS_KEY_PREFIX"     env-default:"pokedex:"`
	Retention    time.Duration `yaml:"retention"      env:"REDIS_RETENTION"      env-default:"168h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ViewStateConfig holds settings for the interactive list and detail states.
type ViewStateConfig struct {
	SearchDebounce time.Duration `yaml:"search_debounce" env:"VIEWSTATE_SEARCH_DEBOUNCE" env-default:"300ms"`
}

// BackendName returns the normalized cache backend name.
func (c CacheConfig) BackendName() string {
	return strings.ToLower(strings.TrimSpace(c.Backend))
}
