// Package cli implements the pocketcube command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/config"
	"github.com/SeamusWaldron/pocketcube/internal/logging"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
	"github.com/SeamusWaldron/pocketcube/internal/render"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	verbose    bool

	// Loaded in PersistentPreRunE.
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "pocketcube",
	Short: "2x2 pocket cube simulator",
	Long: `pocketcube models a 2x2x2 cube with its down-left-back corner held fixed.

Apply U, F and R turns to a compact state, convert between sticker grids and
compact states, and practise scrambles interactively with every session
recorded to a local database.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.pocketcube/pocketcube.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.pocketcube/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = path
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	level := logging.ParseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	logger = logging.New(level)
	logger.Debug("config loaded", "path", configPath)
	return nil
}

// resolveDBPath returns the --db flag, then the config value, then the default.
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return cfg.ResolveDBPath()
}

func openDB() (*storage.DB, error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Debug("database opened", "path", path)
	return db, nil
}

// openStateFile keeps state.json next to the config file.
func openStateFile() (*recorder.StateFile, error) {
	sf, err := recorder.NewStateFile(filepath.Join(filepath.Dir(configPath), "state.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return sf, nil
}

func newRenderer() (*render.Renderer, error) {
	palette, err := render.PaletteFromConfig(cfg.Colors)
	if err != nil {
		return nil, fmt.Errorf("invalid colors in config: %w", err)
	}
	return render.New(palette), nil
}
