package config

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// DB is the shared PostgreSQL handle, non-nil only when the warehouse
// backend is enabled (DATA_BACKEND=postgres).
var DB *sql.DB

// LoadEnv loads environment variables from a .env file.
func LoadEnv() error {
	possiblePaths := []string{
		".env",
		"../.env",
		os.Getenv("NIIS_ENV"), // environment-specified path
	}

	var loadedFile string
	for _, path := range possiblePaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			loadedFile = path
			break
		}
	}

	if loadedFile == "" {
		// No .env file is fine, the defaults and the real environment cover
		// the file backend.
		return nil
	}

	file, err := os.Open(loadedFile)
	if err != nil {
		return fmt.Errorf("error opening .env file: %v", err)
	}
	defer file.Close()

	log.Printf("Loading environment variables from %s", loadedFile)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)
		os.Setenv(key, value)
		if !strings.Contains(strings.ToLower(key), "password") && !strings.Contains(strings.ToLower(key), "secret") {
			log.Printf("Set environment variable: %s", key)
		}
	}
	return scanner.Err()
}

// InitDBWithRetry attempts to connect to PostgreSQL with retries.
func InitDBWithRetry(maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = InitDB()
		if err == nil {
			return nil
		}
		log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(5 * time.Second)
	}
	return fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err)
}

func InitDB() error {
	dbParams := map[string]string{
		"dbname":   GetEnvWithDefault("DB_NAME", "niis"),
		"user":     GetEnvWithDefault("DB_USER", "postgres"),
		"password": os.Getenv("DB_PASSWORD"),
		"host":     GetEnvWithDefault("DB_HOST", "localhost"),
		"port":     GetEnvWithDefault("DB_PORT", "5432"),
		"sslmode":  os.Getenv("DB_SSL_MODE"),
	}
	if dbParams["sslmode"] == "" {
		if strings.Contains(dbParams["host"], "aivencloud.com") {
			dbParams["sslmode"] = "require"
		} else {
			dbParams["sslmode"] = "disable"
		}
	}

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		dbParams["host"], dbParams["port"], dbParams["user"],
		dbParams["password"], dbParams["dbname"], dbParams["sslmode"])

	log.Printf("Connecting to PostgreSQL at %s:%s/%s with sslmode=%s",
		dbParams["host"], dbParams["port"], dbParams["dbname"], dbParams["sslmode"])

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("error opening PostgreSQL database: %v", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = DB.PingContext(ctx); err != nil {
		return fmt.Errorf("error connecting to PostgreSQL database: %v", err)
	}

	// The pipeline reads both snapshot tables on every refresh, so fail
	// fast if the warehouse schema is missing.
	for _, table := range []string{"demographic_snapshots", "enrollment_snapshots"} {
		var exists bool
		err = DB.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT FROM information_schema.tables
				WHERE table_name = $1
			)`, table).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking %s table: %v", table, err)
		}
		if !exists {
			return fmt.Errorf("%s table does not exist in the database", table)
		}
	}

	log.Printf("Successfully connected to PostgreSQL database: %s", dbParams["dbname"])
	return nil
}

func CheckPostgresHealth() error {
	if DB == nil {
		return fmt.Errorf("PostgreSQL backend not enabled")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := DB.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL health check failed: %v", err)
	}
	return nil
}

// CloseDB releases the PostgreSQL connection on shutdown.
func CloseDB() {
	if DB != nil {
		if err := DB.Close(); err != nil {
			log.Printf("Error closing PostgreSQL connection: %v", err)
		}
	}
}
