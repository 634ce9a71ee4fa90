package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	DBMaxConns  int

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	LogJSON  bool
	LogDebug bool

	// RedisURL empty keeps in-progress interviews in process memory.
	RedisURL          string
	SessionTTLMinutes int

	// Analyzer selects the resume analyzer: "heuristic" or "remote".
	Analyzer           string
	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	ClassifierSeed      int64
	ClassifierRulesFile string

	MaxUploadBytes int64
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 10),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "recruit-service"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60*24*7),

		LogJSON:  getEnvBool("LOG_JSON", false),
		LogDebug: getEnvBool("LOG_DEBUG", false),

		RedisURL:          os.Getenv("REDIS_URL"),
		SessionTTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 180),

		Analyzer:           strings.ToLower(getEnv("ANALYZER", "heuristic")),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "recruit-service"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		ClassifierSeed:      getEnvInt64("CLASSIFIER_SEED", 0),
		ClassifierRulesFile: os.Getenv("CLASSIFIER_RULES_FILE"),

		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 15<<20),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
