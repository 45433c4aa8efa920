package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Limits   LimitConfig
	Topics   TopicConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type LimitConfig struct {
	DataViewLimit    int
	ExportLimit      int
	DataCacheSeconds int
}

type TopicConfig struct {
	RecordCreated string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			URI:  getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Name: getEnv("MONGODB_DATABASE", "emogo_db"),
		},
		Limits: LimitConfig{
			DataViewLimit:    getEnvAsInt("DATA_VIEW_LIMIT", 100),
			ExportLimit:      getEnvAsInt("EXPORT_LIMIT", 1000),
			DataCacheSeconds: getEnvAsInt("DATA_CACHE_TTL_SECONDS", 30),
		},
		Topics: TopicConfig{
			RecordCreated: getEnv("RECORD_CREATED_TOPIC_NAME", "RECORD_CREATED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
