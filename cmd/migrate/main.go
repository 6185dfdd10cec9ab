package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"healthcard/internal/infra"
)

const usage = "usage: migrate up|down|status"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := infra.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(os.Args[1], cfg, log); err != nil {
		log.Fatal("migration failed", zap.String("command", os.Args[1]), zap.Error(err))
	}
}

func run(command string, cfg infra.Config, log *zap.Logger) error {
	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		return err
	}
	defer db.Close()

	switch command {
	case "up":
		err = infra.RunMigrations(db)
	case "down":
		err = infra.RollbackMigration(db)
	case "status":
		err = infra.MigrationStatus(db)
	default:
		return fmt.Errorf("unknown command %q, %s", command, usage)
	}
	if err == nil {
		log.Info("migration command finished", zap.String("command", command))
	}
	return err
}
