// smlogic evaluates Super Metroid item logic against player presets.
//
// Usage:
//
//	smlogic [command] [options]
//
// Commands:
//
//	score       - Score a preset and print its fingerprint
//	check       - Evaluate the capability predicates for a set of items
//	boss        - Estimate every boss fight for a set of items
//	objectives  - Check the end game goals against dead bosses
//	pickup      - Check the item placement end conditions
//	explain     - Describe a predicate, technique or term
//	catalog     - Store, list and inspect presets in the preset catalog
package main

import (
	"fmt"
	"os"

	"github.com/lawnchairsociety/smlogic/internal/config"
	"github.com/lawnchairsociety/smlogic/internal/logger"
)

const (
	defaultLogConfig = "data/logging.yaml"
	defaultAppConfig = "data/smlogic.yaml"
	defaultHelpFile  = "data/help.yaml"
)

// appConfig is loaded once before any command runs.
var appConfig = config.DefaultConfig()

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := initLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	appConfig = cfg

	switch os.Args[1] {
	case "score":
		err = runScore(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	case "boss":
		err = runBoss(os.Args[2:])
	case "objectives":
		err = runObjectives(os.Args[2:])
	case "pickup":
		err = runPickup(os.Args[2:])
	case "explain":
		err = runExplain(os.Args[2:])
	case "catalog":
		err = runCatalog(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func initLogging() error {
	path := os.Getenv("SMLOGIC_LOG_CONFIG")
	if path == "" {
		path = defaultLogConfig
	}
	config, err := logger.LoadConfig(path)
	if err != nil {
		return err
	}
	return logger.Initialize(config)
}

func loadAppConfig() (*config.AppConfig, error) {
	path := os.Getenv("SMLOGIC_CONFIG")
	if path == "" {
		path = defaultAppConfig
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "path", path, "catalog", cfg.Catalog.Driver)
	return cfg, nil
}

func printUsage() {
	fmt.Println(`smlogic - Super Metroid item logic evaluator

Usage: smlogic <command> [options]

Commands:
  score       Score a preset and print its fingerprint
  check       Evaluate the capability predicates for a set of items
  boss        Estimate every boss fight for a set of items
  objectives  Check the end game goals against dead bosses
  pickup      Check the item placement end conditions
  explain     Describe a predicate, technique or term
  catalog     Store, list and inspect presets (add, list, show, delete)

Items are a comma separated list, with counts for packs and tanks:
  Morph,Bomb,Missile*4,Super*2,ETank*3,Varia

Examples:
  smlogic score -preset data/presets/regular.yaml
  smlogic check -preset data/presets/regular.yaml -items "Morph,Bomb,Super,Missile*2"
  smlogic check -items "Morph,PowerBomb,Super" -predicate CanAccessKraid
  smlogic boss -items "Missile*10,Super*4,Charge,Plasma,ETank*6,Varia"
  smlogic objectives -items "..." -dead Kraid,Phantoon,Draygon,Ridley
  smlogic pickup -items "..." -majors-left 0 -minors-left 12
  smlogic explain CanAccessKraid
  smlogic catalog add -name regular -preset data/presets/regular.yaml
  smlogic catalog list

Settings are read from data/smlogic.yaml (override with SMLOGIC_CONFIG).
Use "smlogic <command> -h" for more information about a command.`)
}
