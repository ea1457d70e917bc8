package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	MidtransServerKey string
	MidtransEnv       string
	// VerifySignature enables SHA-512 verification of webhook
	// notifications. Off by default so unsigned sandbox callbacks
	// keep working.
	VerifySignature bool
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		AppPort:           os.Getenv("APP_PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		MidtransServerKey: os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransEnv:       os.Getenv("MIDTRANS_ENV"),
	}

	switch os.Getenv("MIDTRANS_VERIFY_SIGNATURE") {
	case "1", "true", "TRUE", "True":
		cfg.VerifySignature = true
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	// MIDTRANS_SERVER_KEY is deliberately not checked here: its
	// absence is reported per-request as a configuration error so the
	// rest of the service stays up.
	return cfg
}
