package main

import (
	"context"                       // Context for configuration loading
	"flag"                          // Subcommand parsing
	"fmt"                           // Usage output
	"os"                            // Exit codes
	"planetary_api/internal/config" // Custom import path (Config)
	"planetary_api/internal/db"     // Custom import path (Database)
	"planetary_api/internal/domain" // Store records
	"planetary_api/internal/schema" // Wire shapes for log output
	"planetary_api/internal/store"  // Database connection

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

const usage = "usage: migrate create|drop|seed"

// Main entry point for schema utilities
func main() {
	flag.Usage = func() { fmt.Fprintln(flag.CommandLine.Output(), usage) }
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(context.Background()) // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	gdb, err := store.Open(cfg.DB.Driver, cfg.DB.ConnString())
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}

	switch flag.Arg(0) {
	case "create":
		err = db.Create(gdb)
	case "drop":
		err = db.Drop(gdb)
	case "seed":
		var user *domain.User
		if user, err = db.Seed(gdb); err == nil {
			logrus.WithField("user", schema.UserFromRecord(*user)).Info("Seeded test user")
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logrus.Fatalf("%s failed: %v", flag.Arg(0), err)
	}
	logrus.Infof("%s completed.", flag.Arg(0)) // Log successful command
}
