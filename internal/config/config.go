package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	MongoURI    string
	DBName      string
	RedisAddr   string
	SkipAuth    bool
	Environment string
	AppId       string
	FSPath      string // Physical directory for media uploads
	FSURL       string // URL path prefix for media access

	GeminiAPIKey string
	GeminiModel  string

	// When true, deleting a lookup category also removes its key from
	// every venue's custom fields. Off by default: the historical
	// behavior leaves orphaned keys in place.
	LookupDeleteCascade bool

	// Cron expression for the dangling-reference sweep.
	IntegritySchedule string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		JWTSecret:           getEnv("JWT_SECRET", "secret"),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:              getEnv("DB_NAME", "event-crm"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		SkipAuth:            getEnv("SKIP_AUTH", "false") == "true",
		Environment:         getEnv("ENVIRONMENT", "development"),
		AppId:               getEnv("APP_ID", "event-crm"),
		FSPath:              getEnv("FS_PATH", "./uploads"),
		FSURL:               getEnv("FS_URL", "/fs/uploads"),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		LookupDeleteCascade: getEnv("LOOKUP_DELETE_CASCADE", "false") == "true",
		IntegritySchedule:   getEnv("INTEGRITY_SCHEDULE", "@hourly"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
