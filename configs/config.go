package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// client side
	APIBaseURL        string
	SessionFile       string
	PollInterval      time.Duration
	DirectionsBaseURL string
	MapsAPIKey        string

	// stub server
	Port      string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file; using system environment")
	}

	return &Config{
		APIBaseURL:        getEnv("API_BASE_URL", "http://localhost:8000"),
		SessionFile:       getEnv("SESSION_FILE", ".ecomdelivery-session.json"),
		PollInterval:      time.Duration(getEnvInt("POLL_INTERVAL_MS", 5000)) * time.Millisecond,
		DirectionsBaseURL: getEnv("DIRECTIONS_BASE_URL", "https://maps.googleapis.com/maps/api/directions/json"),
		MapsAPIKey:        os.Getenv("MAPS_API_KEY"),
		Port:              getEnv("PORT", "8000"),
		DBSource:          getEnv("DB_SOURCE", "ecomdelivery.db"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
