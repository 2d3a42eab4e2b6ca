package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	App      App
	Server   Server
	Database Database
	JWT      JWT
	Log      Log
	Forecast Forecast
}

type App struct {
	Name        string
	Environment string
}

type Server struct {
	Port string
}

type Database struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	DSN             string
}

type JWT struct {
	Secret   string
	Issuer   string
	Duration time.Duration
}

type Log struct {
	Level string
}

type Forecast struct {
	// Categoria alvo do desafio de economia nas recomendações.
	ChallengeCategory string
}

func Load() (*Config, error) {
	cfg := &Config{
		App: App{
			Name:        getEnv("APP_NAME", "foreceipt"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: Server{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: Database{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "foreceipt"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		JWT: JWT{
			Secret:   getEnv("JWT_SECRET", ""),
			Issuer:   getEnv("JWT_ISSUER", "foreceipt"),
			Duration: getEnvDuration("JWT_DURATION", 24*time.Hour),
		},
		Log: Log{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Forecast: Forecast{
			ChallengeCategory: getEnv("FORECAST_CHALLENGE_CATEGORY", "Food & Dining"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET é obrigatório")
	}

	cfg.Database.DSN = fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
