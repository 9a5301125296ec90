package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/sprintflow/internal/config"
	"github.com/akyairhashvil/sprintflow/internal/database"
	"github.com/akyairhashvil/sprintflow/internal/engine"
	"github.com/akyairhashvil/sprintflow/internal/report"
	"github.com/akyairhashvil/sprintflow/internal/util"
)

func main() {
	dbPath := flag.String("db", "", "database file (default: user data dir)")
	policyPath := flag.String("config", "", "policy file (YAML)")
	asOf := flag.String("date", "", "sweep as-of date, YYYY-MM-DD (default: today)")
	flag.Parse()

	verb := flag.Arg(0)
	if verb == "" {
		usage()
		os.Exit(2)
	}

	path := *dbPath
	if path == "" {
		root := util.DataDir(config.AppName)
		_ = os.MkdirAll(root, 0o755)
		path = filepath.Join(root, config.DBFileName)
	}

	ctx := context.Background()
	db, err := database.Open(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	policy, err := config.LoadPolicy(*policyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load policy: %v\n", err)
		os.Exit(1)
	}

	switch verb {
	case "init":
		// Open already created and migrated the schema.
		fmt.Printf("database ready at %s\n", path)
	case "sweep":
		if err := runSweep(ctx, db, policy, *asOf); err != nil {
			fmt.Fprintf(os.Stderr, "sweep: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

// runSweep is the cron entry point: re-derive every auto sprint's state as
// of the given date and print what changed. Per-sprint conflicts are
// reported but do not fail the run.
func runSweep(ctx context.Context, db *database.Database, policy config.Policy, asOf string) error {
	today := time.Now()
	if asOf != "" {
		var err error
		today, err = util.ParseDate(asOf)
		if err != nil {
			return fmt.Errorf("bad -date %q: %w", asOf, err)
		}
	}

	eng := engine.New(db, policy)
	results, err := eng.Resweep(ctx, today)
	if err != nil {
		return err
	}
	fmt.Print(report.Sweep(results))
	if n := report.Conflicts(results); n > 0 {
		util.LogError("sweep", fmt.Errorf("%d sprint(s) skipped", n))
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s [flags] <command>

commands:
  init    create or migrate the database
  sweep   re-evaluate sprint states as of today (cron hook)

flags:
`, filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}
