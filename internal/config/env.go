package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir          string
	RegistrationDays int
	UserFile         string
	SessionFile      string
	SessionTextFile  string
	Port             string
	LogLevel         string
	SampleUsers      int
	SampleSessions   int
	SampleMessages   int
}

// LoadConfig loads the environment variables and return config
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		DataDir:          getEnv("DATA_DIR", "raw_data"),
		RegistrationDays: getEnvInt("REGISTRATION_DAYS", 30),
		UserFile:         getEnv("USER_FILE", "user.csv"),
		SessionFile:      getEnv("SESSION_FILE", "session.csv"),
		SessionTextFile:  getEnv("SESSION_TEXT_FILE", "session_text.csv"),
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SampleUsers:      getEnvInt("SAMPLE_USERS", 3),
		SampleSessions:   getEnvInt("SAMPLE_SESSIONS", 5),
		SampleMessages:   getEnvInt("SAMPLE_MESSAGES", 20),
	}

	return cfg
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}
