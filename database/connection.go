package database

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// ErrNotConfigured is returned by InitDB when no database host is set.
var ErrNotConfigured = errors.New("database not configured")

var DbPool *pgxpool.Pool

// ConnString builds the connection string from the POSTGRES_* variables.
func ConnString() (string, error) {
	dbHost := os.Getenv("POSTGRES_HOST")
	if dbHost == "" {
		return "", ErrNotConfigured
	}
	dbPort := os.Getenv("POSTGRES_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}
	dbUser := os.Getenv("POSTGRES_USER")
	dbPassword := os.Getenv("POSTGRES_PASSWORD")
	dbName := os.Getenv("POSTGRES_DB")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName), nil
}

func InitDB(ctx context.Context) error {
	connString, err := ConnString()
	if err != nil {
		return err
	}

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return fmt.Errorf("unable to parse database config: %w", err)
	}
	config.MaxConns = 10

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("unable to ping database: %w", err)
	}

	DbPool = pool
	log.WithFields(log.Fields{
		"host": config.ConnConfig.Host,
		"db":   config.ConnConfig.Database,
	}).Info("connected to the database")
	return nil
}
