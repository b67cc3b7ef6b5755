package config

import (
	"os"
	"strconv"
	"time"
)

// Upstream endpoints for the Hong Kong government open-data feeds.
const (
	DefaultCarparkInfoURL    = "https://api.data.gov.hk/v1/carpark-info-vacancy?data=info"
	DefaultCarparkVacancyURL = "https://api.data.gov.hk/v1/carpark-info-vacancy?data=vacancy"
	DefaultTrafficNewsURL    = "https://resource.data.one.gov.hk/td/en/specialtrafficnews.xml"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Upstream feeds
	CarparkInfoURL    string        // static carpark attributes (JSON)
	CarparkVacancyURL string        // live vacancy counts (JSON)
	TrafficNewsURL    string        // special traffic news (XML)
	FetchTimeout      time.Duration // per-source fetch timeout (default 6s)
	CacheTTL          time.Duration // payload cache window (default 30s)

	// StaticSpacesFile points at the curated fallback dataset
	// (optional, empty = static fallback disabled)
	StaticSpacesFile string

	// DatabaseDSN is the postgres DSN for the booking record store
	// (optional, empty = bookings disabled)
	DatabaseDSN string

	// Redis (optional, empty addr = lookup counters disabled)
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDialTimeout    time.Duration
	RedisReadTimeout    time.Duration
	RedisWriteTimeout   time.Duration
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries
	RedisPingTimeout    time.Duration

	// Booking rate limiting
	BookingBurst        int  // token bucket capacity per client IP
	BookingRefillPerMin int  // tokens refilled per minute
	TrustProxy          bool // resolve client IP from proxy headers
}

func Load() *Config {
	return &Config{
		ListenPort:      getenv("HARBORPARK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("HARBORPARK_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("HARBORPARK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("HARBORPARK_PRETTY_LOG", false),

		CarparkInfoURL:    getenv("HARBORPARK_CARPARK_INFO_URL", DefaultCarparkInfoURL),
		CarparkVacancyURL: getenv("HARBORPARK_CARPARK_VACANCY_URL", DefaultCarparkVacancyURL),
		TrafficNewsURL:    getenv("HARBORPARK_TRAFFIC_NEWS_URL", DefaultTrafficNewsURL),
		FetchTimeout:      mustDuration("HARBORPARK_FETCH_TIMEOUT", 6*time.Second),
		CacheTTL:          mustDuration("HARBORPARK_CACHE_TTL", 30*time.Second),

		StaticSpacesFile: getenv("HARBORPARK_STATIC_SPACES_FILE", ""),

		DatabaseDSN: getenv("HARBORPARK_DATABASE_DSN", ""),

		RedisAddr:           getenv("HARBORPARK_REDIS_ADDR", ""),
		RedisUser:           getenv("HARBORPARK_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("HARBORPARK_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("HARBORPARK_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("HARBORPARK_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("HARBORPARK_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("HARBORPARK_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("HARBORPARK_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("HARBORPARK_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("HARBORPARK_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisPingTimeout:    mustDuration("HARBORPARK_REDIS_PING_TIMEOUT", 5*time.Second),

		BookingBurst:        getenvInt("HARBORPARK_BOOKING_BURST", 5),
		BookingRefillPerMin: getenvInt("HARBORPARK_BOOKING_REFILL_PER_MIN", 10),
		TrustProxy:          mustBool("HARBORPARK_TRUST_PROXY", false),
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
