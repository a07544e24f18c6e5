package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/divijg19/moveit/internal/config"
	"github.com/divijg19/moveit/internal/notify"
)

var (
	runtimeConfig     config.Config
	runtimeConfigErr  error
	runtimeConfigOnce sync.Once
)

// loadRuntimeConfig loads config once. On error the defaults are returned.
func loadRuntimeConfig() (config.Config, error) {
	runtimeConfigOnce.Do(func() {
		runtimeConfig, runtimeConfigErr = config.Load()
	})
	return runtimeConfig, runtimeConfigErr
}

var (
	selectPlayer       bool
	cueValue           string
	notificationsValue string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit defaults for moveit",
	Long: `Without flags, prints the current configuration.

Settings can also be overridden with MOVEIT_ environment variables, for
example MOVEIT_NOTIFICATIONS=false or MOVEIT_DB_PATH=/tmp/moveit.db.`,
	Example: `  moveit config
  moveit config --player
  moveit config --cue ~/sounds/notification.mp3
  moveit config --notifications off`,
	Args: cobra.NoArgs,
	RunE: runConfigure,
}

func init() {
	configCmd.Flags().BoolVar(&selectPlayer, "player", false, "choose the audio player from those found on PATH")
	configCmd.Flags().StringVar(&cueValue, "cue", "", "sound file played when a challenge starts")
	configCmd.Flags().StringVar(&notificationsValue, "notifications", "", "desktop notifications: on or off")
}

// runConfigure handles `moveit config`.
func runConfigure(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var edits []func(*config.Config) error

	if selectPlayer {
		reader := bufio.NewReader(cmd.InOrStdin())
		edits = append(edits, func(cfg *config.Config) error {
			updated, err := configurePlayer(*cfg, notify.AvailablePlayers(), reader, out)
			if err != nil {
				return err
			}
			*cfg = updated
			return nil
		})
	}

	if cmd.Flags().Changed("cue") {
		cue := strings.TrimSpace(cueValue)
		edits = append(edits, func(cfg *config.Config) error {
			cfg.CuePath = cue
			return nil
		})
	}

	if cmd.Flags().Changed("notifications") {
		enabled, err := parseSwitch(notificationsValue)
		if err != nil {
			return fmt.Errorf("config: notifications: %w", err)
		}
		edits = append(edits, func(cfg *config.Config) error {
			cfg.Notifications = enabled
			return nil
		})
	}

	if len(edits) == 0 {
		cfg, err := loadRuntimeConfig()
		if err != nil {
			return err
		}
		printConfig(out, cfg)
		return nil
	}

	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	cfg, err := editConfigFile(path, edits...)
	if err != nil {
		return err
	}
	printConfig(out, cfg)
	return nil
}

// editConfigFile applies edits to the settings stored at path and saves
// them. Environment overrides are not read, so they are never persisted.
// Nothing is written when the stored file cannot be read.
func editConfigFile(path string, edits ...func(*config.Config) error) (config.Config, error) {
	cfg, err := config.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w (fix or remove the file before editing)", err)
	}

	for _, edit := range edits {
		if err := edit(&cfg); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
	}

	if err := config.SaveFile(path, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// printConfig renders the configuration.
func printConfig(out io.Writer, cfg config.Config) {
	path, pathErr := config.ConfigPath()
	if pathErr == nil {
		fmt.Fprintf(out, "Config file: %s\n\n", path)
	}

	fmt.Fprintln(out, "Current configuration")
	fmt.Fprintf(out, "Database:      %s\n", orUnset(cfg.DBPath, "(default)"))
	fmt.Fprintf(out, "Catalog:       %s\n", orUnset(cfg.CatalogPath, "(built-in)"))
	fmt.Fprintf(out, "Cue:           %s\n", orUnset(cfg.CuePath, "(terminal bell)"))
	fmt.Fprintf(out, "Player:        %s\n", orUnset(cfg.Player, "(auto)"))
	fmt.Fprintf(out, "Notifications: %s\n", switchLabel(cfg.Notifications))
	fmt.Fprintf(out, "Log level:     %s\n", cfg.LogLevel)
}

// configurePlayer lists the available players and saves the selected one.
func configurePlayer(cfg config.Config, players []string, reader *bufio.Reader, out io.Writer) (config.Config, error) {
	if len(players) == 0 {
		return cfg, fmt.Errorf("no audio players found on PATH")
	}

	fmt.Fprintln(out, "Available players:")
	for idx, player := range players {
		fmt.Fprintf(out, "[%d] %s\n", idx, player)
	}

	fmt.Fprint(out, "Select player by index: ")
	line, err := readLine(reader)
	if err != nil {
		return cfg, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return cfg, fmt.Errorf("no selection provided")
	}

	idx, err := strconv.Atoi(line)
	if err != nil || idx < 0 || idx >= len(players) {
		return cfg, fmt.Errorf("invalid player index")
	}

	cfg.Player = players[idx]
	return cfg, nil
}

func parseSwitch(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", value)
	}
}

func switchLabel(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func orUnset(value, unset string) string {
	if value == "" {
		return unset
	}
	return value
}
