package main

import (
	"context"
	"database/sql"
	"embed"
	"flag"
	"io/fs"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"usergate.org/internal/migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func main() {
	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	dsn := os.Getenv("USERGATE_PG_DSN")
	if dsn == "" {
		log.Fatal("USERGATE_PG_DSN is required")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	src, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		log.Fatalf("migrations fs: %v", err)
	}
	mgr := migrate.NewManager(db, src)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch command {
	case "up":
		if err := mgr.Up(ctx); err != nil {
			log.Fatalf("migrate up: %v", err)
		}
		log.Println("migrations applied")
	case "status":
		applied, err := mgr.Status(ctx)
		if err != nil {
			log.Fatalf("migrate status: %v", err)
		}
		for _, name := range applied {
			log.Println(name)
		}
	default:
		log.Fatalf("unknown command %q (want up or status)", command)
	}
}
