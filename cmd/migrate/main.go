// Package main implements the database migration utility for smsrelay.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/textpesa/smsrelay/internal/infrastructure/migrate"
)

const defaultMigrationsPath = "./migrations"

func main() {
	var migrationsPath string
	flag.StringVar(&migrationsPath, "path", defaultMigrationsPath, "Path to migrations directory")
	flag.Parse()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("Please specify a command: up, down, or version")
	}

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: migrationsPath,
	})

	switch args[0] {
	case "up":
		if err := runner.Run(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations applied")

	case "down":
		if err := runner.Rollback(); err != nil {
			log.Fatalf("Failed to rollback migration: %v", err)
		}
		log.Println("Rolled back one migration")

	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			log.Fatalf("Failed to get version: %v", err)
		}
		if dirty {
			fmt.Printf("Current version: %d (dirty)\n", version)
		} else {
			fmt.Printf("Current version: %d\n", version)
		}

	default:
		log.Fatalf("Unknown command: %s. Use 'up', 'down', or 'version'", args[0])
	}
}
