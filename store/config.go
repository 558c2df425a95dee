package store

import (
	"context"
	"fmt"
	"os"
)

// OpenFromEnv builds the store selected by STORE_DRIVER (postgres, mongo or
// memory). Both the server and the seeder open their store through here so
// they always agree on the backend.
func OpenFromEnv(ctx context.Context) (Store, error) {
	driver := os.Getenv("STORE_DRIVER")
	if driver == "" {
		driver = "postgres"
	}

	switch driver {
	case "postgres":
		return NewPostgresStore(postgresDSN())
	case "mongo":
		uri := os.Getenv("MONGO_URI")
		if uri == "" {
			uri = "mongodb://localhost:27017"
		}
		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "shopping-demo"
		}
		return NewMongoStore(ctx, uri, dbName)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}
}

func postgresDSN() string {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return databaseURL
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
}
