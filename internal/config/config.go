package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the file-backed (.env) settings the server consumes.
type Config struct {
	// original web app surface
	WebRoot      string
	StaticFiles  string
	Port         int
	MainFileURL  string
	MainFilePath string
	MainFileName string
	BrowserPort  int
	Debug        bool

	// backing services
	DatabaseURL    string
	MigrationsPath string
	RedisAddress   string
	RedisUsername  string
	RedisPassword  string
	JWTSecret      string
	MQTTBrokerURL  string
	AladhanBaseURL string

	// fallback location when a request carries no coordinates
	DefaultLatitude  float64
	DefaultLongitude float64
	DefaultMethod    int
	DefaultCity      string
	DefaultTimezone  string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	// missing .env is fine; the environment may be set by the platform
	_ = godotenv.Load()

	cfg := &Config{
		WebRoot:      getEnv("WEBROOT", "./web"),
		StaticFiles:  getEnv("STATIC_FILES", "static"),
		MainFileURL:  getEnv("MAIN_FILE_URL", "/"),
		MainFilePath: os.Getenv("MAIN_FILE_PATH"),
		MainFileName: getEnv("MAIN_FILE_NAME", "index.html"),
		Debug:        os.Getenv("DEBUG") == "true",

		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		RedisAddress:   os.Getenv("REDIS_ADDRESS"),
		RedisUsername:  os.Getenv("REDIS_USERNAME"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		MQTTBrokerURL:  os.Getenv("MQTT_BROKER_URL"),
		AladhanBaseURL: os.Getenv("ALADHAN_BASE_URL"),

		DefaultCity:     getEnv("DEFAULT_CITY", "CHICAGO"),
		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", "Local"),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 3000); err != nil {
		return nil, err
	}
	if cfg.BrowserPort, err = getEnvInt("BROWSER_PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.DefaultMethod, err = getEnvInt("DEFAULT_METHOD", 2); err != nil {
		return nil, err
	}
	if cfg.DefaultLatitude, err = getEnvFloat("DEFAULT_LATITUDE", 41.8781); err != nil {
		return nil, err
	}
	if cfg.DefaultLongitude, err = getEnvFloat("DEFAULT_LONGITUDE", -87.6298); err != nil {
		return nil, err
	}

	// the main file lives inside the web root unless overridden
	if cfg.MainFilePath == "" {
		cfg.MainFilePath = cfg.WebRoot
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
