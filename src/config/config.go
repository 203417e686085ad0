package config

import (
	cryptoRand "crypto/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Port          int    `yaml:"port"`
	APIBaseURL    string `yaml:"api_base_url"`
	SessionSecret string `yaml:"session_secret"`
	SessionTTL    time.Duration
	SessionTTLHrs int    `yaml:"session_ttl_hours"`
	SecureCookies bool   `yaml:"secure_cookies"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`

	// CORS allow-list for the JSON endpoints (health checks from the
	// uptime monitor live on another origin)
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Login brute-force protection
	LoginRatePerMinute int `yaml:"login_rate_per_minute"`
	LoginRateBurst     int `yaml:"login_rate_burst"`
}

// Load loads configuration: an optional config.yaml gives the base
// values, environment variables override, .env is read first when
// present.
func Load() *Config {
	// .env is a developer convenience; absence is not an error
	_ = godotenv.Load()

	cfg := &Config{
		Port:               8080,
		APIBaseURL:         "http://localhost:3000",
		SessionTTLHrs:      24,
		LogLevel:           "info",
		LogFormat:          "json",
		LoginRatePerMinute: 10,
		LoginRateBurst:     5,
	}

	if path := getEnv("CONFIG_FILE", "config.yaml"); path != "" {
		loadFile(cfg, path)
	}

	cfg.Port = getEnvInt("PORT", cfg.Port)
	cfg.APIBaseURL = getEnv("API_BASE_URL", cfg.APIBaseURL)
	cfg.SessionSecret = getEnv("SESSION_SECRET", cfg.SessionSecret)
	cfg.SessionTTLHrs = getEnvInt("SESSION_TTL_HOURS", cfg.SessionTTLHrs)
	cfg.SecureCookies = getEnvBool("SECURE_COOKIES", cfg.SecureCookies)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.LoginRatePerMinute = getEnvInt("LOGIN_RATE_PER_MINUTE", cfg.LoginRatePerMinute)
	cfg.LoginRateBurst = getEnvInt("LOGIN_RATE_BURST", cfg.LoginRateBurst)
	if origins := getEnv("ALLOWED_ORIGINS", ""); origins != "" {
		cfg.AllowedOrigins = splitAndTrim(origins)
	}

	cfg.SessionTTL = time.Duration(cfg.SessionTTLHrs) * time.Hour

	// Generate a session secret if not provided. Sessions will not
	// survive a restart in that case.
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = generateRandomSecret(32)
	}

	return cfg
}

// loadFile applies values from a YAML config file onto cfg. A missing
// or unreadable file is ignored; env vars remain the authority.
func loadFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = yaml.Unmarshal(data, cfg)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// generateRandomSecret generates a cryptographically secure random secret
func generateRandomSecret(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	if _, err := cryptoRand.Read(result); err != nil {
		panic("failed to generate random secret: " + err.Error())
	}
	for i := range result {
		result[i] = charset[result[i]%byte(len(charset))]
	}
	return string(result)
}
