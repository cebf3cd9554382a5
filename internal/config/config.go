package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"diet-profile-go/pkg/logger"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DBBackendPostgres = "postgres"
	DBBackendMemory   = "memory"

	CacheBackendNone   = "none"
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"

	StorageBackendLocal = "local"
	StorageBackendS3    = "s3"

	devJWTSecret = "dev-only-insecure-secret"
)

var ErrJWTSecretRequired = errors.New("JWT_SECRET is required in production")

type Config struct {
	HTTP          HTTPConfig
	Env           string
	PublicBaseURL string
	StaticDir     string
	CORSOrigins   []string
	DB            DBConfig
	Auth          AuthConfig
	Cache         CacheConfig
	Storage       StorageConfig
	RateLimit     RateLimitConfig
}

// HTTPConfig holds listener settings. TrustProxyHeaders makes the server take
// the client address from X-Forwarded-For / X-Real-IP, which must only be
// enabled behind a proxy that overwrites those headers.
type HTTPConfig struct {
	Port              string
	TrustProxyHeaders bool
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
}

type DBConfig struct {
	Backend         string
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type AuthConfig struct {
	JWTSecret        string
	AccessTokenTTL   time.Duration
	BcryptCost       int
	EnforceOwnership bool
}

type CacheConfig struct {
	Backend string
	TTL     time.Duration
	Redis   RedisConfig
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type StorageConfig struct {
	Backend        string
	LocalDir       string
	MaxUploadBytes int64
	S3             S3Config
}

type S3Config struct {
	Bucket       string
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
	Prefix       string
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

func Load(log logger.Logger) (Config, error) {
	if err := loadDotEnv(log); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		HTTP: HTTPConfig{
			Port:              getEnv("HTTP_PORT", "8000"),
			TrustProxyHeaders: getEnvBool("TRUST_PROXY_HEADERS", false),
			ReadHeaderTimeout: getEnvDuration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       getEnvDuration("HTTP_READ_TIMEOUT", time.Minute),
			WriteTimeout:      getEnvDuration("HTTP_WRITE_TIMEOUT", time.Minute),
			IdleTimeout:       getEnvDuration("HTTP_IDLE_TIMEOUT", 2*time.Minute),
			RequestTimeout:    getEnvDuration("HTTP_REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout:   getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Env:           strings.ToLower(getEnv("ENV", EnvDevelopment)),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", ""), "/"),
		StaticDir:     getEnv("STATIC_DIR", "static"),
		CORSOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		DB: DBConfig{
			Backend:         strings.ToLower(getEnv("DB_BACKEND", DBBackendPostgres)),
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "diet_profile"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			AutoMigrate:     getEnvBool("DB_AUTO_MIGRATE", true),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", ""),
			AccessTokenTTL:   getEnvDuration("ACCESS_TOKEN_TTL", 60*time.Minute),
			BcryptCost:       getEnvInt("BCRYPT_COST", 0),
			EnforceOwnership: getEnvBool("ENFORCE_OWNERSHIP", true),
		},
		Cache: CacheConfig{
			Backend: strings.ToLower(getEnv("CATALOG_CACHE_BACKEND", CacheBackendMemory)),
			TTL:     getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
			Redis: RedisConfig{
				Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
				Password:  getEnv("REDIS_PASSWORD", ""),
				DB:        getEnvInt("REDIS_DB", 0),
				KeyPrefix: getEnv("REDIS_KEY_PREFIX", "diet-profile:"),
			},
		},
		Storage: StorageConfig{
			Backend:        strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendLocal)),
			LocalDir:       getEnv("UPLOAD_DIR", "uploaded_lab_results"),
			MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
			S3: S3Config{
				Bucket:       getEnv("S3_BUCKET_NAME", ""),
				Region:       getEnv("AWS_REGION", "us-east-1"),
				Endpoint:     getEnv("S3_ENDPOINT", ""),
				AccessKey:    getEnv("AWS_ACCESS_KEY_ID", ""),
				SecretKey:    getEnv("AWS_SECRET_ACCESS_KEY", ""),
				UsePathStyle: getEnvBool("S3_USE_PATH_STYLE", false),
				Prefix:       getEnv("S3_KEY_PREFIX", "lab-results/"),
			},
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnvBool("RATE_LIMIT_ENABLED", true),
			RPS:     getEnvFloat("RATE_LIMIT_RPS", 1),
			Burst:   getEnvInt("RATE_LIMIT_BURST", 5),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.Env == EnvProduction {
			return Config{}, ErrJWTSecretRequired
		}
		log.Warn("config: JWT_SECRET not set, using development secret")
		cfg.Auth.JWTSecret = devJWTSecret
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.DB.Backend {
	case DBBackendPostgres, DBBackendMemory:
	default:
		return fmt.Errorf("unknown DB_BACKEND %q", c.DB.Backend)
	}

	switch c.Cache.Backend {
	case CacheBackendNone, CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("unknown CATALOG_CACHE_BACKEND %q", c.Cache.Backend)
	}

	switch c.Storage.Backend {
	case StorageBackendLocal:
	case StorageBackendS3:
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET_NAME is required when STORAGE_BACKEND=s3")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if c.HTTP.RequestTimeout <= 0 || c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_REQUEST_TIMEOUT and HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
