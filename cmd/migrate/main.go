package main

import (
	"flag"
	"fmt"
	"os"

	"eventhub/config"
	"eventhub/internal/infra/persistence/migration"
	"eventhub/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

// Supported subcommands:
// - up:   apply all pending migrations
// - down: roll back the given number of steps

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], upCmd, downCmd, downSteps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(subcommand string, args []string, upCmd, downCmd *flag.FlagSet, downSteps *int) error {
	switch subcommand {
	case "up":
		if err := upCmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}

		db, err := openDB()
		if err != nil {
			return err
		}

		version, err := migration.Up(db, migrations.FS)
		if err != nil {
			return err
		}
		fmt.Printf("Schema at version %d\n", version)

		return nil

	case "down":
		if err := downCmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}
		if *downSteps < 1 {
			return errors.Errorf("steps must be positive, got %d", *downSteps)
		}

		db, err := openDB()
		if err != nil {
			return err
		}

		if err := migration.Down(db, migrations.FS, *downSteps); err != nil {
			return err
		}
		fmt.Printf("Rolled back %d migration(s)\n", *downSteps)

		return nil

	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", subcommand)
	}
}

func openDB() (*gorm.DB, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return db, nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                 Apply all pending migrations")
	fmt.Println("  down [-steps N]    Roll back N migrations (default 1)")
}
