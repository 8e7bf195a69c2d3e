// Файл: config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// APIConfig - куда ходит клиент.
type APIConfig struct {
	BaseURL      string
	Timeout      time.Duration
	EmployeeCode string
	Password     string
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
}

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type Config struct {
	API    APIConfig
	Server ServerConfig
	JWT    JWTConfig
	Log    LogConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		API: APIConfig{
			BaseURL:      getEnv("API_BASE_URL", "http://localhost:8080/api"),
			Timeout:      getEnvDuration("API_TIMEOUT", 20*time.Second),
			EmployeeCode: getEnv("API_EMPLOYEE_CODE", ""),
			Password:     getEnv("API_PASSWORD", ""),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		JWT: JWTConfig{
			SecretKey:      getEnv("JWT_SECRET_KEY", "dev-secret-change-me"),
			AccessTokenTTL: getEnvDuration("JWT_ACCESS_TTL", 24*time.Hour),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			File:       getEnv("LOG_FILE", "./logs/app.log"),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 50),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
