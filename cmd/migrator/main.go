package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"HEALTHAPI_BACK-END/internal/config"
)

const migrationsDir = "migrations"

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return
	}
	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	switch command {
	case "up":
		if err := goose.Up(db, migrationsDir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
		fmt.Println("Migrations applied")
	case "down":
		if err := goose.Down(db, migrationsDir); err != nil {
			log.Fatalf("roll back migration: %v", err)
		}
		fmt.Println("Last migration rolled back")
	case "status":
		if err := goose.Status(db, migrationsDir); err != nil {
			log.Fatalf("migration status: %v", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
	}
}

func usage() {
	fmt.Println("Usage: migrator [command]")
	fmt.Println("Commands:")
	fmt.Println("  up     - Apply all pending migrations")
	fmt.Println("  down   - Roll back the last migration")
	fmt.Println("  status - Show migration status")
}
