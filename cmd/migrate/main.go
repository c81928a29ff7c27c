package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/news-admin/internal/config"
	"github.com/news-admin/internal/database"
	"github.com/news-admin/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	fs.StringVar(&cfg.Database.MigrationsPath, "path", cfg.Database.MigrationsPath,
		"Directory holding the migration files (env: MIGRATIONS_PATH)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [-path dir] <up|down|goto VERSION>")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(2)
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	path := cfg.Database.MigrationsPath

	switch fs.Arg(0) {
	case "up":
		err = db.RunMigrations(path)
	case "down":
		err = db.MigrateDown(path)
	case "goto":
		if fs.NArg() < 2 {
			fs.Usage()
			os.Exit(2)
		}
		version, perr := strconv.ParseUint(fs.Arg(1), 10, 32)
		if perr != nil {
			log.Fatal().Err(perr).Str("version", fs.Arg(1)).Msg("Invalid migration version")
		}
		err = db.MigrateToVersion(path, uint(version))
	default:
		fs.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", fs.Arg(0)).Msg("Migration failed")
	}
}
