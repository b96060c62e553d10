package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gravadigital/poorganiser-api/internal/config"
	"github.com/gravadigital/poorganiser-api/internal/logger"
	"github.com/gravadigital/poorganiser-api/internal/storage/migrations"
	"github.com/gravadigital/poorganiser-api/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Log.Level)
	log := logger.Migration()

	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	drop := flag.Bool("drop", false, "Drop all tables")
	flag.Parse()

	log.Info("Starting migration process", "rollback", *rollback, "drop", *drop)

	db, err := postgres.Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	switch {
	case *drop:
		log.Info("Dropping all tables...")
		if err := migrations.DropAll(db); err != nil {
			log.Error("Drop failed", "error", err)
			os.Exit(1)
		}
		log.Info("All tables dropped successfully")
	case *rollback:
		log.Info("Rolling back migrations...")
		if err := migrations.RollbackMigration(db); err != nil {
			log.Error("Migration rollback failed", "error", err)
			os.Exit(1)
		}
		log.Info("Migration rollback completed successfully")
	default:
		log.Info("Running migrations...")
		if err := migrations.RunMigrations(db); err != nil {
			log.Error("Migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("Migrations completed successfully")
	}

	fmt.Println("Migration process completed!")
}
