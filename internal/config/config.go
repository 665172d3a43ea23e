package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	sessionSecretEnvKey = "SESSION_SECRET"
)

type App struct {
	Port            string
	DBConnectionURL string
	SessionSecret   string
}

func NewApp() (App, error) {
	// .env is optional, real environment variables take precedence
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	sessionSecret, ok := os.LookupEnv(sessionSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, sessionSecretEnvKey)
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		SessionSecret:   sessionSecret,
	}, nil
}
