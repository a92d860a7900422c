// migrate-to-postgres copies the preset catalog from SQLite to PostgreSQL.
//
// Usage:
//
//	SMLOGIC_PG_PASSWORD=secret go run ./cmd/migrate-to-postgres \
//	    -sqlite data/catalog.db \
//	    -pg-host localhost \
//	    -pg-port 5432 \
//	    -pg-user smlogic \
//	    -pg-database smlogic
package main

import (
	"flag"
	"log"
	"os"

	"github.com/lawnchairsociety/smlogic/internal/config"
	"github.com/lawnchairsociety/smlogic/internal/database"
	"github.com/lawnchairsociety/smlogic/internal/logger"
)

func main() {
	defaults := config.DefaultConfig().Catalog

	sqlitePath := flag.String("sqlite", defaults.SQLitePath, "Path to the SQLite catalog")
	pgHost := flag.String("pg-host", defaults.Postgres.Host, "PostgreSQL host")
	pgPort := flag.Int("pg-port", defaults.Postgres.Port, "PostgreSQL port")
	pgUser := flag.String("pg-user", defaults.Postgres.User, "PostgreSQL user")
	pgDatabase := flag.String("pg-database", defaults.Postgres.Database, "PostgreSQL database name")
	pgSSLMode := flag.String("pg-sslmode", defaults.Postgres.SSLMode, "PostgreSQL SSL mode")
	dryRun := flag.Bool("dry-run", false, "Show what would be migrated without making changes")
	flag.Parse()

	logConfig := logger.DefaultConfig()
	logConfig.Level = "INFO"
	if err := logger.Initialize(logConfig); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	log.Println("Preset catalog migration: SQLite to PostgreSQL")

	if _, err := os.Stat(*sqlitePath); err != nil {
		log.Fatalf("SQLite catalog not found: %v", err)
	}

	source := defaults
	source.Driver = "sqlite"
	source.SQLitePath = *sqlitePath
	src, err := database.Open(source.Database())
	if err != nil {
		log.Fatalf("Failed to open SQLite catalog: %v", err)
	}
	defer src.Close()

	target := defaults
	target.Driver = "postgres"
	target.Postgres = config.PostgresConfig{
		Host:     *pgHost,
		Port:     *pgPort,
		User:     *pgUser,
		Database: *pgDatabase,
		SSLMode:  *pgSSLMode,
	}
	log.Printf("Opening PostgreSQL catalog: %s@%s:%d/%s", *pgUser, *pgHost, *pgPort, *pgDatabase)
	dst, err := database.Open(target.Database())
	if err != nil {
		log.Fatalf("Failed to open PostgreSQL catalog: %v", err)
	}
	defer dst.Close()

	if *dryRun {
		log.Println("DRY RUN MODE - No changes will be made")
	}

	n, err := src.CopyPresets(dst, *dryRun)
	if err != nil {
		log.Fatalf("Migration failed after %d presets: %v", n, err)
	}

	log.Printf("Migration complete! Presets migrated: %d", n)
	if *dryRun {
		log.Println("(DRY RUN - No actual changes were made)")
	}
}
