package main

import (
	"database/sql"
	"log"
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/limjemmy/takenote/internal/auth"
	"github.com/limjemmy/takenote/internal/config"
	"github.com/limjemmy/takenote/internal/db"
	"github.com/limjemmy/takenote/internal/handlers"
	"github.com/limjemmy/takenote/internal/logger"
	"github.com/limjemmy/takenote/internal/notes"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	var dbConn *sql.DB
	var err error
	switch cfg.DBDriver {
	case "sqlite":
		dbConn, err = db.InitSQLite(cfg.SQLitePath)
	default:
		dbConn, err = db.InitMySQL(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBName)
	}
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer dbConn.Close()

	jwtSvc := auth.NewJWTService(cfg.JWTSecret)
	provider := auth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectURL)
	authSvc := auth.NewService(dbConn)
	notesSvc := notes.NewService(dbConn)

	router := handlers.NewRouter(authSvc, notesSvc, provider, jwtSvc, cfg.FrontendURL, "./web")

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{cfg.FrontendURL}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
		gorillahandlers.AllowCredentials(),
	)

	logger.Info("Starting server", zap.String("port", cfg.Port), zap.String("driver", cfg.DBDriver))
	if err := http.ListenAndServe(":"+cfg.Port, cors(router)); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
