package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RatePerMinute   int           `yaml:"rate_per_minute"  env:"SERVER_RATE_PER_MINUTE"  env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds token and identity-provider settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"nafnapp"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"    env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost"  env:"AUTH_PASSWORD_HASH_COST"  env-default:"10"`
	MaxLoginAttempts int           `yaml:"max_login_attempts"  env:"AUTH_MAX_LOGIN_ATTEMPTS"  env-default:"5"`
	LoginWindow      time.Duration `yaml:"login_window"        env:"AUTH_LOGIN_WINDOW"        env-default:"10m"`
}

// CatalogConfig holds catalog seeding settings.
type CatalogConfig struct {
	// SeedBatchSize is bounded by the store's transactional batch-size limit.
	SeedBatchSize int  `yaml:"seed_batch_size" env:"CATALOG_SEED_BATCH_SIZE" env-default:"500"`
	SeedOnCreate  bool `yaml:"seed_on_create"  env:"CATALOG_SEED_ON_CREATE"  env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
