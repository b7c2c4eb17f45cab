package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	DBDSN         string
	RedisAddr     string // пустое значение отключает кэш отрисовок
	Environment   string

	// Окно рабочего дня и геометрия сетки передаются явно в движок,
	// никакого процесс-глобального состояния
	DayStartHour int
	DayEndHour   int
	SlotHeight   float64
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		Environment:   os.Getenv("ENV"),
		DayStartHour:  intEnv("DAY_START_HOUR", 9),
		DayEndHour:    intEnv("DAY_END_HOUR", 18),
		SlotHeight:    floatEnv("SLOT_HEIGHT", 48),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.DayEndHour <= cfg.DayStartHour {
		return nil, fmt.Errorf("DAY_END_HOUR must be after DAY_START_HOUR")
	}

	return cfg, nil
}

// intEnv читает целочисленную переменную окружения с дефолтом
func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using default %d", key, raw, fallback)
		return fallback
	}
	return value
}

// floatEnv читает вещественную переменную окружения с дефолтом
func floatEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using default %v", key, raw, fallback)
		return fallback
	}
	return value
}
