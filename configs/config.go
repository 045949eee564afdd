package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBSource  string
	LogLevel  string
	JWTSecret string
	JWTTTL    time.Duration

	GeminiAPIKey string
	GeminiModel  string

	// simulated pipelines; delays measured from the triggering event
	PaymentProcessingDelay time.Duration
	TrackingPreparingAfter time.Duration
	TrackingOnTheWayAfter  time.Duration
	TrackingDeliveredAfter time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	return &Config{
		Port:      getEnv("PORT", "8000"),
		DBSource:  getEnv("DB_SOURCE", "file::memory:?cache=shared"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,

		// absence of the key is a recognized state (degraded chat), not an error
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		PaymentProcessingDelay: getEnvDuration("PAYMENT_PROCESSING_DELAY", 2*time.Second),
		TrackingPreparingAfter: getEnvDuration("TRACKING_PREPARING_AFTER", 3*time.Second),
		TrackingOnTheWayAfter:  getEnvDuration("TRACKING_ON_THE_WAY_AFTER", 8*time.Second),
		TrackingDeliveredAfter: getEnvDuration("TRACKING_DELIVERED_AFTER", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid duration for %s: %q, using default", key, v)
		return fallback
	}
	return d
}
