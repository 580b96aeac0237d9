package main

import (
	"flag"
	"fmt"
	"os"

	"socialmedia/config"
	"socialmedia/db"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	conf, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	database, err := db.Connect(conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to the database:", err)
		os.Exit(1)
	}
	defer db.Close(database)

	result, err := db.RunMigrations(database, conf.Migrations.Dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Migration failed:", err)
		os.Exit(1)
	}

	for _, name := range result.Skipped {
		fmt.Printf("skipped  %s (already applied)\n", name)
	}
	for _, name := range result.Applied {
		fmt.Printf("applied  %s\n", name)
	}
	if len(result.Applied) == 0 {
		fmt.Println("Nothing to apply.")
	}
}
