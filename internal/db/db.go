package db

import (
	"database/sql"
	"fmt"
	"log"

	"kasir-be/internal/config"

	_ "github.com/lib/pq"
)

// InitDB opens the privileged order-store connection. The service
// role here bypasses row-level policies, so the credentials must never
// be exposed to clients.
func InitDB(cfg *config.Config) *sql.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	log.Println("Database connection established")
	return db
}
