package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/divijg19/moveit/internal/catalog"
	"github.com/divijg19/moveit/internal/config"
	"github.com/divijg19/moveit/internal/logging"
	"github.com/divijg19/moveit/internal/notify"
	"github.com/divijg19/moveit/internal/session"
	"github.com/divijg19/moveit/internal/storage"
)

// Version is the current CLI version string.
const Version = "v0.2"

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "moveit",
	Short: "moveit: level up by taking small body and eye breaks",
	Long: `moveit hands you short challenges for your body and eyes.
Complete them to earn experience and climb levels; your level, experience
and completed challenges are saved between sessions.

Run without arguments to start an interactive session.`,
	Example: `  moveit
  moveit play --plain
  moveit status
  moveit config --cue ~/sounds/notification.mp3`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, cfgErr := loadRuntimeConfig()
		if cfgErr != nil && cmd != configCmd {
			fmt.Fprintf(cmd.ErrOrStderr(), "%v; using defaults\n", cfgErr)
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}

		path := cfg.LogFile
		if path == "" {
			var err error
			path, err = logging.DefaultLogFile()
			if err != nil {
				path = ""
			}
		}

		var err error
		logger, err = logging.New(level, path)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "moveit "+Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.Flags().BoolVar(&plainMode, "plain", false, "use line prompts instead of the full screen interface")

	rootCmd.AddCommand(playCmd, statusCmd, catalogCmd, configCmd, versionCmd)
}

// openStore opens the SQLite-backed store and returns a close function.
func openStore(cfg config.Config) (*storage.Store, func(), error) {
	dbPath, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve db path: %w", err)
	}

	sqlDB, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}

	st, err := storage.New(sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("new store: %w", err)
	}

	closeFn := func() {
		_ = sqlDB.Close()
	}
	return st, closeFn, nil
}

// openSession wires the store, catalog and alert adapters into a session.
func openSession(cfg config.Config) (*session.Session, func(), error) {
	challenges, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, nil, err
	}

	st, closeDB, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	player := notify.NewPlayer(cfg.Player, os.Stderr)
	sess, err := session.Open(session.Deps{
		Catalog:     challenges,
		Persistence: st,
		Notifier:    notify.NewDesktop(cfg.Notifications),
		Audio:       player,
		CuePath:     cfg.CuePath,
		Logger:      sessionLogger(),
	})
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	sessionLogger().Debug("audio player", zap.String("command", player.Command()))
	return sess, closeDB, nil
}

func sessionLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
