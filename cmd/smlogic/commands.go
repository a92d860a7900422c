package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lawnchairsociety/smlogic/internal/combat"
	"github.com/lawnchairsociety/smlogic/internal/help"
	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/logic"
	"github.com/lawnchairsociety/smlogic/internal/objectives"
	"github.com/lawnchairsociety/smlogic/internal/preset"
	"github.com/lawnchairsociety/smlogic/internal/settings"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// loadPreset falls back to the configured preset, then to the built-in one.
func loadPreset(path string) (*preset.Config, error) {
	if path == "" {
		path = appConfig.Preset
	}
	if path == "" {
		return preset.Default(), nil
	}
	return preset.Load(path)
}

func formatBool(b smbool.Bool) string {
	if !b.Satisfied {
		return "no"
	}
	return fmt.Sprintf("yes (%s)", smbool.LevelName(b.Weight))
}

func runScore(args []string) error {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	presetPath := fs.String("preset", "", "Preset file (.yaml or legacy .json)")
	fs.Parse(args)

	cfg, err := loadPreset(*presetPath)
	if err != nil {
		return err
	}
	fingerprint, err := preset.Fingerprint(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Preset:      %s\n", cfg.Name)
	fmt.Printf("Score:       %d\n", preset.ComputeScore(cfg))
	fmt.Printf("Fingerprint: %s\n", fingerprint)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, boss := range settings.Bosses() {
		fmt.Fprintf(w, "%s\t%s\n", boss, cfg.Settings.BossLabel(boss))
	}
	for _, run := range settings.HellRuns() {
		fmt.Fprintf(w, "%s hell run\t%s\n", run, cfg.Settings.HellRunLabel(run))
	}
	for _, room := range settings.HardRooms() {
		fmt.Fprintf(w, "%s\t%s\n", room, cfg.Settings.HardRoomLabel(room))
	}
	return w.Flush()
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	presetPath := fs.String("preset", "", "Preset file (default: built-in values)")
	itemList := fs.String("items", "", "Collected items, e.g. 'Morph,Bomb,ETank*2'")
	predicate := fs.String("predicate", "", "Evaluate a single predicate")
	fs.Parse(args)

	cfg, err := loadPreset(*presetPath)
	if err != nil {
		return err
	}
	it, err := items.Parse(*itemList)
	if err != nil {
		return err
	}
	l := logic.New(cfg.Knows, cfg.Settings)

	if *predicate != "" {
		p, err := logic.Lookup(*predicate)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", p.Name, formatBool(p.Eval(l, it)))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range l.EvaluateAll(it) {
		fmt.Fprintf(w, "%s\t%s\n", r.Name, formatBool(r.Bool))
	}
	return w.Flush()
}

func runBoss(args []string) error {
	fs := flag.NewFlagSet("boss", flag.ExitOnError)
	presetPath := fs.String("preset", "", "Preset file (default: built-in values)")
	itemList := fs.String("items", "", "Collected items")
	fs.Parse(args)

	cfg, err := loadPreset(*presetPath)
	if err != nil {
		return err
	}
	it, err := items.Parse(*itemList)
	if err != nil {
		return err
	}
	l := logic.New(cfg.Knows, cfg.Settings)

	fmt.Printf("Beam damage: %.0f\n", combat.BeamDamage(it))
	fmt.Printf("Effective energy: %.1f\n\n", combat.EffectiveEnergy(it))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Boss\tAmmo margin\tSeconds\tResult")
	for _, boss := range settings.Bosses() {
		fight := l.BossFight(it, boss)
		fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%s\n", boss, fight.AmmoMargin, fight.Seconds, formatBool(l.EnoughStuffs(it, boss)))
	}
	return w.Flush()
}

// parseDeaths reads a comma separated list of dead bosses, mini-bosses and
// reached events.
func parseDeaths(list string) (*objectives.BossState, error) {
	state := objectives.NewBossState()
	bosses := append(settings.Bosses(), objectives.MiniBosses...)
	events := []objectives.Event{objectives.ShaktoolPath, objectives.ScavengerHunt}
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var found bool
		for _, boss := range bosses {
			if strings.EqualFold(string(boss), name) {
				state.Kill(boss)
				found = true
			}
		}
		for _, ev := range events {
			if strings.EqualFold(string(ev), name) {
				state.Reach(ev)
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown boss or event: %s", name)
		}
	}
	return state, nil
}

// parseGoals returns the vanilla objectives for an empty list.
func parseGoals(list string) (*objectives.Objectives, error) {
	if strings.TrimSpace(list) == "" {
		return objectives.Vanilla(), nil
	}
	goals := objectives.New()
	for _, name := range strings.Split(list, ",") {
		if err := goals.AddGoal(strings.TrimSpace(name)); err != nil {
			return nil, err
		}
	}
	return goals, nil
}

func runObjectives(args []string) error {
	fs := flag.NewFlagSet("objectives", flag.ExitOnError)
	presetPath := fs.String("preset", "", "Preset file (default: built-in values)")
	itemList := fs.String("items", "", "Collected items")
	dead := fs.String("dead", "", "Dead bosses and reached events, e.g. 'Kraid,Crocomire,ShaktoolPath'")
	goalList := fs.String("goals", "", "Goals, e.g. 'kill G4' (default: vanilla)")
	fs.Parse(args)

	cfg, err := loadPreset(*presetPath)
	if err != nil {
		return err
	}
	it, err := items.Parse(*itemList)
	if err != nil {
		return err
	}
	deaths, err := parseDeaths(*dead)
	if err != nil {
		return err
	}
	goals, err := parseGoals(*goalList)
	if err != nil {
		return err
	}
	l := logic.New(cfg.Knows, cfg.Settings)

	fmt.Printf("Goals:     %s\n", strings.Join(goals.Goals(), ", "))
	fmt.Printf("Cleared:   %s\n", formatBool(goals.CanClearGoals(deaths)))
	fmt.Printf("Tourian:   %s\n", formatBool(l.EnoughStuffTourian(it)))
	fmt.Printf("End game:  %s\n", formatBool(l.CanEndGame(it, deaths, goals)))
	return nil
}

func runPickup(args []string) error {
	fs := flag.NewFlagSet("pickup", flag.ExitOnError)
	presetPath := fs.String("preset", "", "Preset file (default: built-in values)")
	itemList := fs.String("items", "", "Placed items")
	majorsLeft := fs.Int("majors-left", 0, "Unfilled major locations")
	minorsLeft := fs.Int("minors-left", 0, "Unfilled minor locations")
	majors := fs.String("majors", appConfig.Pickup.Majors, "Majors policy: all, minimal or quota")
	minors := fs.String("minors", appConfig.Pickup.Minors, "Minors policy: all, minimal or quota")
	fs.Parse(args)

	pc := appConfig.Pickup
	pc.Majors = *majors
	pc.Minors = *minors
	pickup, err := pc.Pickup()
	if err != nil {
		return err
	}

	cfg, err := loadPreset(*presetPath)
	if err != nil {
		return err
	}
	it, err := items.Parse(*itemList)
	if err != nil {
		return err
	}
	l := logic.New(cfg.Knows, cfg.Settings)

	fmt.Printf("Majors (%s): %s\n", pickup.Majors, formatBool(l.EnoughMajors(pickup, it, *majorsLeft)))
	fmt.Printf("Minors (%s): %s\n", pickup.Minors, formatBool(l.EnoughMinors(pickup, it, *minorsLeft)))
	return nil
}

func runExplain(args []string) error {
	fs := flag.NewFlagSet("explain", flag.ExitOnError)
	helpFile := fs.String("file", defaultHelpFile, "Help file")
	kind := fs.String("kind", "", "List topics of a kind: predicate, technique or term")
	fs.Parse(args)

	h, err := help.Load(*helpFile)
	if err != nil {
		return err
	}

	topic := strings.Join(fs.Args(), " ")
	if topic != "" {
		fmt.Println(h.Text(topic))
		return nil
	}

	if *kind == "" {
		fmt.Println(h.Text(""))
		fmt.Println()
	}
	for _, k := range []string{help.KindPredicate, help.KindTechnique, help.KindTerm} {
		if *kind != "" && *kind != k {
			continue
		}
		fmt.Printf("%ss:\n  %s\n", k, strings.Join(h.Names(k), ", "))
	}
	return nil
}
