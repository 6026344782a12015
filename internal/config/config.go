package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Session marker backends.
const (
	SessionStoreCookie = "cookie"
	SessionStoreRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	// Assets
	StaticDir    string
	AssetBaseURL string
	MediaBucket  string
	MediaPrefix  string

	// Booking is an external link; empty renders the contact page instead.
	BookingURL string

	// Promo campaign
	PromoKey       string
	PromoEndsAt    string
	ClinicTimezone string

	// Sessions
	SessionCookie string
	SessionStore  string
	SessionTTL    time.Duration
	CookieSecure  bool

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string

	CORSAllowedOrigins []string
	CORSMaxAge         time.Duration
	RateLimitRPS       float64
	RateLimitBurst     int
	ShutdownTimeout    time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	env := getEnv("ENV", "development")
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           env,
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "https://lalaluskinlaser.com"), "/"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		StaticDir:    getEnv("STATIC_DIR", "web/static"),
		AssetBaseURL: getEnv("ASSET_BASE_URL", ""),
		MediaBucket:  getEnv("MEDIA_BUCKET", ""),
		MediaPrefix:  getEnv("MEDIA_PREFIX", ""),

		BookingURL: getEnv("BOOKING_URL", ""),

		PromoKey:       getEnv("PROMO_KEY", "lalalu_new_year_2026_seen"),
		PromoEndsAt:    getEnv("PROMO_ENDS_AT", "2026-01-31T23:59:59"),
		ClinicTimezone: getEnv("CLINIC_TIMEZONE", "America/Edmonton"),

		SessionCookie: getEnv("SESSION_COOKIE", "lalalu_session"),
		SessionStore:  strings.ToLower(strings.TrimSpace(getEnv("SESSION_STORE", SessionStoreCookie))),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure:  getEnvAsBool("COOKIE_SECURE", env == "production"),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		CORSMaxAge:         getEnvAsDuration("CORS_MAX_AGE", 10*time.Minute),
		RateLimitRPS:       getEnvAsFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 30),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// ClinicLocation resolves ClinicTimezone, falling back to UTC.
func (c *Config) ClinicLocation() *time.Location {
	loc, err := time.LoadLocation(c.ClinicTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// UseRedisSessions reports whether promo markers live in Redis.
func (c *Config) UseRedisSessions() bool {
	return c.SessionStore == SessionStoreRedis
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping empty entries.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
