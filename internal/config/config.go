package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Env         string
	Port        string
	SiteName    string
	DataBackend string // json | postgres | csv
	DataFile    string
	DatabaseURL string
	OMDbAPIKey  string
	OMDbBaseURL string
	IMDbBaseURL string
	OMDbTimeout time.Duration
}

// Load 加载配置
func Load() *Config {
	timeoutSeconds, _ := strconv.Atoi(getEnv("OMDB_TIMEOUT_SECONDS", "5"))
	if timeoutSeconds <= 0 {
		timeoutSeconds = 5
	}

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "movieflix")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "5002"),
		SiteName:    getEnv("SITE_NAME", "MovieFlix"),
		DataBackend: getEnv("DATA_BACKEND", "json"),
		DataFile:    getEnv("DATA_FILE", "data/movies.json"),
		DatabaseURL: dbURL,
		OMDbAPIKey:  getEnv("OMDB_API_KEY", ""),
		OMDbBaseURL: getEnv("OMDB_BASE_URL", "http://www.omdbapi.com"),
		IMDbBaseURL: getEnv("IMDB_BASE_URL", "https://www.imdb.com/title/"),
		OMDbTimeout: time.Duration(timeoutSeconds) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
