package config

import "os"

type Config struct {
	Port string

	DBDriver   string // "mysql" or "sqlite"
	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string
	SQLitePath string

	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectURL   string
	FrontendURL        string

	JWTSecret string

	LogLevel  string
	LogFormat string
}

func LoadConfig() *Config {
	return &Config{
		Port: getenv("PORT", "5001"),

		DBDriver:   getenv("DB_DRIVER", "mysql"),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: getenv("DB_PASS", ""),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBName:     getenv("DB_NAME", "notes_app"),
		SQLitePath: getenv("SQLITE_PATH", "notes.db"),

		GoogleClientID:     os.Getenv("CLIENT_ID"),
		GoogleClientSecret: os.Getenv("CLIENT_SECRET"),
		OAuthRedirectURL:   getenv("REDIRECT_URI", "http://localhost:5001/api/oauth/callback"),
		FrontendURL:        getenv("FRONTEND_URL", "http://localhost:3000"),

		JWTSecret: getenv("JWT_SECRET", "dev-secret"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "console"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
