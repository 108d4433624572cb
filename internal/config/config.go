package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default token lifetime is 30 days.
const defaultJWTExpiryHours = 720

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	ServerPort     string
	JWTSecret      string
	JWTExpiryHours string
	Env            string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "taskboard_user"),
		DBPassword:     getEnv("DB_PASSWORD", "taskboard_pass"),
		DBName:         getEnv("DB_NAME", "taskboard_db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", "supersecretkey"),
		JWTExpiryHours: getEnv("JWT_EXPIRY_HOURS", "720"),
		Env:            getEnv("ENV", "development"),
	}
}

// JWTExpiry returns the configured token lifetime, falling back to the
// default when JWT_EXPIRY_HOURS is unset or not a positive integer.
func (c *Config) JWTExpiry() time.Duration {
	hours, err := strconv.Atoi(c.JWTExpiryHours)
	if err != nil || hours <= 0 {
		hours = defaultJWTExpiryHours
	}
	return time.Duration(hours) * time.Hour
}

// IsProduction controls whether error responses carry stack details.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
