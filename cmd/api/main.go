package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/enrollment/internal/bootstrap"
	"github.com/yigit/enrollment/internal/config"
	"github.com/yigit/enrollment/internal/db"
	"github.com/yigit/enrollment/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/enrollment/internal/server"
)

// @title Enrollment API
// @version 1.0
// @description Students, courses and the enrollments between them.

// @host localhost:5000
// @BasePath /api
// @schemes http

var configPath string

var rootCmd = &cobra.Command{
	Use:           "api",
	Short:         "Student, course and enrollment REST API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply migrations and serve the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML configuration file")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.NewServer(cmd.Context(), configPath)
	if err != nil {
		return err
	}

	// Run blocks until a shutdown signal arrives
	return srv.Run()
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	database, err := db.NewDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			lgr.Warn().Err(err).Msg("Failed to close database")
		}
	}()

	return bootstrap.RunMigrations(cmd.Context(), database, lgr)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Application failed")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
