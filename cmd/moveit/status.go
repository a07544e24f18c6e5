package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/divijg19/moveit/internal/catalog"
	"github.com/divijg19/moveit/internal/core"
	"github.com/divijg19/moveit/internal/session"
	"github.com/divijg19/moveit/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"s"},
	Short:   "Show saved level and experience",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := loadRuntimeConfig()

		st, closeDB, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("status: %w", err)
		}
		defer closeDB()

		return printStatus(cmd.OutOrStdout(), st, time.Now())
	},
}

var catalogCmd = &cobra.Command{
	Use:     "catalog",
	Aliases: []string{"c"},
	Short:   "List the challenges sessions draw from",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := loadRuntimeConfig()

		challenges, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		printCatalog(cmd.OutOrStdout(), challenges.All())
		return nil
	},
}

// printStatus renders persisted progress without opening a session.
func printStatus(out io.Writer, st *storage.Store, now time.Time) error {
	seed := core.NormalizeSeed(session.LoadSeed(st, sessionLogger()))
	p := core.Progress{
		Level:               seed.Level,
		CurrentExperience:   seed.CurrentExperience,
		ChallengesCompleted: seed.ChallengesCompleted,
	}

	fmt.Fprintf(out, "Level:                %d\n", p.Level)
	fmt.Fprintf(out, "Experience:           %d / %d xp\n", p.CurrentExperience, p.ExperienceToNextLevel())
	fmt.Fprintf(out, "To next level:        %d xp\n", p.ExperienceToNextLevel()-p.CurrentExperience)
	fmt.Fprintf(out, "Challenges completed: %d\n", p.ChallengesCompleted)

	updatedAt, ok, err := st.UpdatedAt(session.FieldChallengesCompleted)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	if ok {
		fmt.Fprintf(out, "Last saved:           %s (%s)\n", updatedAt.UTC().Format("2006-01-02 15:04Z"), formatRelative(updatedAt, now))
	} else {
		fmt.Fprintln(out, "Last saved:           never")
	}
	return nil
}

func printCatalog(out io.Writer, challenges []core.Challenge) {
	fmt.Fprintf(out, "%-4s %-6s %-6s %s\n", "#", "TYPE", "XP", "DESCRIPTION")
	for idx, ch := range challenges {
		fmt.Fprintf(out, "%-4d %-6s %-6d %s\n", idx+1, ch.Kind, ch.Amount, ch.Description)
	}
}

func formatRelative(t time.Time, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
