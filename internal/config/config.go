package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServerPort string
	JWTSecret  string
	JWTTTL     time.Duration
	Timezone   string

	Store StoreConfig
	Log   LogConfig

	SeedDemo        bool
	EmailCheckMX    bool
	DailyReportCron string

	BusinessOpen  string
	BusinessClose string

	// CORSOrigins empty means any origin is echoed back.
	CORSOrigins []string
}

type StoreConfig struct {
	Driver   string // memory | bolt | redis | postgres | mysql
	DSN      string
	BoltPath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	CacheSize int64
	CacheTTL  time.Duration
}

type LogConfig struct {
	Mode string // development | production
	File string
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		JWTTTL:     time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		Timezone:   getEnv("TIMEZONE", "America/Sao_Paulo"),

		Store: StoreConfig{
			Driver:        strings.ToLower(getEnv("STORE_DRIVER", "bolt")),
			DSN:           getEnv("STORE_DSN", ""),
			BoltPath:      getEnv("BOLT_PATH", "dashboard.db"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			RedisPrefix:   getEnv("REDIS_PREFIX", "dashboard:"),
			CacheSize:     int64(getEnvInt("CACHE_SIZE", 0)),
			CacheTTL:      time.Duration(getEnvInt("CACHE_TTL_SECONDS", 30)) * time.Second,
		},

		Log: LogConfig{
			Mode: getEnv("LOG_MODE", "development"),
			File: getEnv("LOG_FILE", ""),
		},

		SeedDemo:        getEnvBool("SEED_DEMO", true),
		EmailCheckMX:    getEnvBool("EMAIL_CHECK_MX", false),
		DailyReportCron: getEnv("DAILY_REPORT_CRON", "0 8 * * *"),

		BusinessOpen:  getEnv("BUSINESS_OPEN", "08:00"),
		BusinessClose: getEnv("BUSINESS_CLOSE", "18:00"),

		CORSOrigins: getEnvList("CORS_ORIGINS"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := cast.ToIntE(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := cast.ToBoolE(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

// getEnvList splits a comma separated value, dropping blanks.
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
