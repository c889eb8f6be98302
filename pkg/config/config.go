package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	DBMaxConns    int
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	AdminEmails   []string

	ProgramsFile string
	RegistryFile string

	LogLevel     string
	MaxUploadMB  int
	FetchTimeout time.Duration
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBMaxConns:    getEnvInt("DB_MAX_CONNS", 10),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "advisor"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		AdminEmails:   getEnvList("ADMIN_EMAILS"),
		ProgramsFile:  getEnv("PROGRAMS_FILE", "parsed_programs.json"),
		RegistryFile:  os.Getenv("REGISTRY_FILE"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 15),
		FetchTimeout:  time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 60)) * time.Second,
	}
}

// MaxUploadBytes is the upload limit in bytes.
func (c Config) MaxUploadBytes() int64 { return int64(c.MaxUploadMB) << 20 }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
