package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	MongoURI string
	DBName   string

	// Timezone is the IANA zone used to expand date-only filter bounds
	// into full-day ranges.
	Timezone string

	Cloudinary CloudinaryConfig
	Log        LogConfig
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type LogConfig struct {
	Level      string
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		MongoURI: getEnvOrPanic("MONGO_URI"),
		DBName:   getEnv("DB_NAME", "placelog"),

		Timezone: getEnv("TIMEZONE", "Europe/Madrid"),

		Cloudinary: CloudinaryConfig{
			CloudName: getEnvOrPanic("CLOUDINARY_CLOUD_NAME"),
			APIKey:    getEnvOrPanic("CLOUDINARY_API_KEY"),
			APISecret: getEnvOrPanic("CLOUDINARY_API_SECRET"),
		},

		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Path:       getEnv("LOG_PATH", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 7),
			Compress:   getEnv("LOG_COMPRESS", "") == "true",
		},
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
