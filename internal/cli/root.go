// Package cli implements the command-line interface for rubiks.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/rubiks/internal/config"
	"github.com/SeamusWaldron/rubiks/internal/render"
	"github.com/SeamusWaldron/rubiks/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	logLevel   string
	noColor    bool

	settings *config.File
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubiks",
	Short: "Rubik's Cube simulator",
	Long: `rubiks - A 3x3x3 cube simulator for the terminal.

Apply moves, generate reproducible shuffles, keep a log of generated
scrambles and play interactively.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	defer zap.S().Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file path (default: ~/.rubiks/config.json)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubiks/rubiks.db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
}

func setup(cmd *cobra.Command, args []string) error {
	if err := setupLogging(logLevel); err != nil {
		return err
	}

	var err error
	if configPath != "" {
		settings, err = config.Open(configPath)
	} else {
		settings, err = config.OpenDefault()
	}
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	zap.S().Debugw("loaded settings", "path", settings.Path(), "settings", settings.Settings())
	return nil
}

func setupLogging(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// getDBPath returns the database path from flag, settings or default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if settings != nil {
		return settings.DBPath()
	}
	return "" // Will use default
}

func openDB() (*storage.DB, error) {
	db, err := storage.OpenAndMigrate(getDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	zap.S().Debugw("opened database", "path", db.Path())
	return db, nil
}

func newRenderer() *render.Renderer {
	color := !noColor
	if settings != nil && settings.NoColor() {
		color = false
	}
	return render.New(color)
}

func shuffleLength() int {
	if settings != nil {
		return settings.ShuffleLength()
	}
	return config.DefaultShuffleLength
}
