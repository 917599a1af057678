package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Host          string
	Port          int
	AnswersPath   string
	QuestionsPath string
	IndexPath     string
	MaxBodyBytes  int
	GelfAddr      string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Host:          getEnv("HOST", ""),
		Port:          getEnvInt("PORT", 3000),
		AnswersPath:   getEnv("ANSWERS_PATH", ""),
		QuestionsPath: getEnv("QUESTIONS_PATH", ""),
		IndexPath:     getEnv("INDEX_PATH", ""),
		MaxBodyBytes:  getEnvInt("MAX_BODY_BYTES", 1<<20),
		GelfAddr:      getEnv("GELF_ADDR", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

const maxInt = int(^uint(0) >> 1)

// getEnvInt parses a non-negative decimal. Anything else, including a value
// too large for an int, yields fallback.
func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		d := int(c - '0')
		if n > (maxInt-d)/10 {
			return fallback
		}
		n = n*10 + d
	}
	return n
}
