package config

import (
	"net/http"
	"os"
	"time"
)

const (
	defaultMongoURI = "mongodb://127.0.0.1:27017"
	defaultMongoDB  = "purehouse"

	DefaultNotifierTimeout = time.Second * 5
)

type MongoConfig struct {
	URI      string
	Database string
}

// MongoFromEnv reads the store connection settings, accepting both the
// MONGODB_* and MONGO_* spellings.
func MongoFromEnv() MongoConfig {
	uri := firstEnv("MONGODB_URI", "MONGO_URI")
	if uri == "" {
		uri = defaultMongoURI
	}
	db := firstEnv("MONGODB_DB", "MONGO_DB")
	if db == "" {
		db = defaultMongoDB
	}
	return MongoConfig{URI: uri, Database: db}
}

// NotifierConfig configures the best-effort worker sink. An empty BaseURL
// disables dispatch entirely.
type NotifierConfig struct {
	BaseURL string
	Timeout time.Duration
}

func NotifierFromEnv() NotifierConfig {
	return NotifierConfig{
		BaseURL: os.Getenv("WORKER_URL"),
		Timeout: DefaultNotifierTimeout,
	}
}

type LogConfig struct {
	Level      string
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func LogFromEnv() LogConfig {
	return LogConfig{
		Level: os.Getenv("LOG_LEVEL"),
		Path:  os.Getenv("LOG_PATH"),
	}
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
