package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/activityhub/core/cmd/api/commands"
	_ "github.com/activityhub/core/docs"
)

// @title ActivityHub API
// @version 1.0
// @description Activity management service

// @host localhost:8080
// @BasePath /api

func main() {
	rootCmd := &cobra.Command{
		Use:   "activityhub",
		Short: "ActivityHub API Server",
		Long:  `ActivityHub is a REST API for managing activities, dispatching each command and query through a mediator to its own handler.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
