package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lawnchairsociety/smlogic/internal/config"
	"github.com/lawnchairsociety/smlogic/internal/database"
	"github.com/lawnchairsociety/smlogic/internal/preset"
)

// catalogFlags registers the connection flags, defaulting to the app config.
func catalogFlags(name string, defaults config.CatalogConfig) (*flag.FlagSet, func() database.Config) {
	fs := flag.NewFlagSet("catalog "+name, flag.ExitOnError)
	driver := fs.String("driver", defaults.Driver, "Database driver: sqlite or postgres")
	path := fs.String("db", defaults.SQLitePath, "SQLite database file")
	pgHost := fs.String("pg-host", defaults.Postgres.Host, "PostgreSQL host")
	pgPort := fs.Int("pg-port", defaults.Postgres.Port, "PostgreSQL port")
	pgUser := fs.String("pg-user", defaults.Postgres.User, "PostgreSQL user")
	pgDatabase := fs.String("pg-database", defaults.Postgres.Database, "PostgreSQL database")

	return fs, func() database.Config {
		c := defaults
		c.Driver = *driver
		c.SQLitePath = *path
		c.Postgres.Host = *pgHost
		c.Postgres.Port = *pgPort
		c.Postgres.User = *pgUser
		c.Postgres.Database = *pgDatabase
		return c.Database()
	}
}

func runCatalog(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("catalog needs a subcommand: add, list, show or delete")
	}

	fs, dbConfig := catalogFlags(args[0], appConfig.Catalog)
	name := fs.String("name", "", "Preset name")
	presetPath := fs.String("preset", "", "Preset file to add")
	fs.Parse(args[1:])

	db, err := database.Open(dbConfig())
	if err != nil {
		return err
	}
	defer db.Close()

	switch args[0] {
	case "add":
		if *presetPath == "" {
			return fmt.Errorf("catalog add needs -preset")
		}
		cfg, err := preset.Load(*presetPath)
		if err != nil {
			return err
		}
		if *name == "" {
			*name = cfg.Name
		}
		record, err := db.SavePreset(*name, cfg)
		if err != nil {
			return err
		}
		fmt.Printf("Saved %s (score %d)\n", record.Name, record.Score)
		return nil

	case "list":
		records, err := db.ListPresetsByScore()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Name\tScore\tFingerprint\tUpdated")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.Name, r.Score, r.Fingerprint[:12], r.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()

	case "show":
		record, err := db.GetPreset(*name)
		if err != nil {
			return err
		}
		fmt.Printf("# score %d, fingerprint %s\n", record.Score, record.Fingerprint)
		fmt.Print(record.Body)
		return nil

	case "delete":
		return db.DeletePreset(*name)

	default:
		return fmt.Errorf("unknown catalog subcommand: %s", args[0])
	}
}
