package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/divijg19/moveit/internal/core"
	"github.com/divijg19/moveit/internal/tui"
)

var plainMode bool

var playCmd = &cobra.Command{
	Use:     "play",
	Aliases: []string{"p"},
	Short:   "Start an interactive session",
	Long: `Starts an interactive session. Draw a challenge, do it, and mark it as
completed to earn its experience. Failing a challenge discards it without
any penalty.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&plainMode, "plain", false, "use line prompts instead of the full screen interface")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, _ := loadRuntimeConfig()

	sess, closeDB, err := openSession(cfg)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	defer closeDB()

	if plainMode {
		return runPlain(sess, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	program := tea.NewProgram(tui.New(sess), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

// runPlain drives ctrl with line prompts until the user quits or input ends.
func runPlain(ctrl tui.Controller, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for {
		snap := ctrl.Snapshot()

		if snap.LevelUpPending {
			fmt.Fprintf(out, "\nCongratulations! You have reached level %d.\n", snap.Level)
			fmt.Fprint(out, "Press enter to continue. ")
			if _, err := readLine(reader); err != nil {
				return ignoreEOF(err)
			}
			ctrl.CloseLevelUpModal()
			continue
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, renderProgress(snap))

		var choices []string
		if challenge, ok := snap.Active.Get(); ok {
			fmt.Fprintf(out, "Challenge (%s, worth %d xp): %s\n", challenge.Kind.Label(), challenge.Amount, challenge.Description)
			choices = []string{"complete", "fail", "new", "quit"}
		} else {
			fmt.Fprintln(out, "No active challenge.")
			choices = []string{"start", "quit"}
		}

		choice, err := promptChoice(reader, out, "What would you like to do?", choices)
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case "start", "new":
			ctrl.StartNewChallenge()
		case "complete":
			ctrl.CompleteChallenge()
		case "fail":
			ctrl.ResetChallenge()
		case "quit":
			return nil
		}
	}
}

// renderProgress formats the one line status shown between prompts.
func renderProgress(p core.Progress) string {
	return fmt.Sprintf("Level %d  |  %d / %d xp  |  %d challenges completed",
		p.Level, p.CurrentExperience, p.ExperienceToNextLevel(), p.ChallengesCompleted)
}

// promptChoice asks the user to select one of the provided choices and returns the selected value.
// A unique prefix of a choice is accepted.
func promptChoice(reader *bufio.Reader, out io.Writer, question string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("no choices provided")
	}

	for {
		fmt.Fprintf(out, "%s (%s): ", question, strings.Join(choices, "/"))
		line, err := readLine(reader)
		if err != nil {
			return "", err
		}

		s := strings.ToLower(strings.TrimSpace(line))
		if s != "" {
			var matched []string
			for _, c := range choices {
				if c == s {
					return c, nil
				}
				if strings.HasPrefix(c, s) {
					matched = append(matched, c)
				}
			}
			if len(matched) == 1 {
				return matched[0], nil
			}
		}
		fmt.Fprintf(out, "Please choose one of: %s\n", strings.Join(choices, ", "))
	}
}

// readLine returns the next line. A final line without a newline is returned
// without error; io.EOF is reported once input is exhausted.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read: %w", err)
	}
	return line, nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
