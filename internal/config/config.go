package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI        string
	DBName          string
	Port            string
	AuthSecret      string
	ProductCacheTTL time.Duration
	DealsCacheTTL   time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:        getEnvOrDefault("MONGO_URI", ""),
		DBName:          getEnvOrDefault("DB_NAME", "quickfynd"),
		Port:            getEnvOrDefault("PORT", "8080"),
		AuthSecret:      getEnvOrDefault("AUTH_SECRET", ""),
		ProductCacheTTL: getDurationEnv("PRODUCT_CACHE_TTL", 600, time.Second),
		DealsCacheTTL:   getDurationEnv("DEALS_CACHE_TTL", 1200, time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
