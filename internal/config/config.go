package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/smlogic/internal/database"
	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/logic"
)

// PostgresPasswordEnv holds the catalog password; it is never read from the file.
const PostgresPasswordEnv = "SMLOGIC_PG_PASSWORD"

// AppConfig holds the command line tool settings.
type AppConfig struct {
	// Preset is the preset file used when a command gets no -preset flag.
	// Empty means the built-in defaults.
	Preset  string        `yaml:"preset"`
	Catalog CatalogConfig `yaml:"catalog"`
	Pickup  PickupConfig  `yaml:"pickup"`
}

// CatalogConfig selects the preset catalog database.
type CatalogConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string `yaml:"driver" validate:"oneof=sqlite postgres"`

	// SQLitePath is the database file for the sqlite driver.
	SQLitePath string `yaml:"sqlite_path" validate:"required_if=Driver sqlite"`

	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds the PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" validate:"gte=0,lte=65535"`
	User     string `yaml:"user"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// PickupConfig holds the item placement end conditions.
type PickupConfig struct {
	Majors string `yaml:"majors" validate:"oneof=all minimal quota"`
	Minors string `yaml:"minors" validate:"oneof=all minimal quota"`

	// Quota is the pack count of each minor item for the quota policy.
	Quota map[string]int `yaml:"quota" validate:"dive,keys,required,endkeys,gte=0"`
}

// DefaultConfig returns an AppConfig with a local SQLite catalog.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Catalog: CatalogConfig{
			Driver:     "sqlite",
			SQLitePath: "data/catalog.db",
			Postgres: PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "smlogic",
				Database: "smlogic",
				SSLMode:  "disable",
			},
		},
		Pickup: PickupConfig{
			Majors: "all",
			Minors: "quota",
			Quota: map[string]int{
				"Missile":   10,
				"Super":     10,
				"PowerBomb": 10,
			},
		},
	}
}

// LoadConfig loads the tool configuration from a YAML file.
// A missing file yields the defaults.
func LoadConfig(path string) (*AppConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and that every quota key names a minor item.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	_, err := c.Pickup.Pickup()
	return err
}

// Database returns the catalog connection settings. The PostgreSQL
// password comes from the environment.
func (c *CatalogConfig) Database() database.Config {
	cfg := database.DefaultConfig(c.SQLitePath)
	cfg.Driver = strings.ToLower(c.Driver)
	cfg.Postgres = database.DefaultPostgresConfig()
	cfg.Postgres.Host = c.Postgres.Host
	cfg.Postgres.Port = c.Postgres.Port
	cfg.Postgres.User = c.Postgres.User
	cfg.Postgres.Password = os.Getenv(PostgresPasswordEnv)
	cfg.Postgres.Database = c.Postgres.Database
	if c.Postgres.SSLMode != "" {
		cfg.Postgres.SSLMode = c.Postgres.SSLMode
	}
	return cfg
}

// Pickup converts the settings into logic end conditions.
func (c *PickupConfig) Pickup() (logic.Pickup, error) {
	majors, err := logic.ParsePolicy(c.Majors)
	if err != nil {
		return logic.Pickup{}, err
	}
	minors, err := logic.ParsePolicy(c.Minors)
	if err != nil {
		return logic.Pickup{}, err
	}

	quota := make(map[items.Item]int, len(c.Quota))
	for name, count := range c.Quota {
		item, err := items.ParseItem(name)
		if err != nil {
			return logic.Pickup{}, err
		}
		if !item.IsMinor() {
			return logic.Pickup{}, fmt.Errorf("quota item %s is not a minor", name)
		}
		quota[item] = count
	}

	return logic.Pickup{Majors: majors, Minors: minors, MinorQuota: quota}, nil
}
