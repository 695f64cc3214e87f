package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"anacharts/database"
	"anacharts/handlers"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	if err := godotenv.Load(".env"); err != nil {
		log.WithError(err).Warn("error loading .env file")
	}
	if lvl, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	pie := &handlers.PieHandler{}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err := database.InitDB(ctx)
	cancel()
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		log.Warn("POSTGRES_HOST not set, dataset charts disabled")
	case err != nil:
		log.WithError(err).Fatal("database initialization failed")
	default:
		pie.DB = database.DbPool
		defer database.DbPool.Close()
	}

	mux := http.NewServeMux()
	pie.Register(mux)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		Debug:          os.Getenv("CORS_DEBUG") == "true",
	})
	handler := c.Handler(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}
	log.WithField("port", port).Info("server starting")
	if err := http.ListenAndServe(port, handler); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
