// Package tui renders a progress session in the terminal with bubbletea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/divijg19/moveit/internal/core"
)

// Controller is the read/command surface of a progress session.
type Controller interface {
	Snapshot() core.Progress
	StartNewChallenge()
	CompleteChallenge()
	ResetChallenge()
	LevelUp()
	CloseLevelUpModal()
}

const defaultWidth = 60

// Model is the bubbletea model for an interactive session.
type Model struct {
	ctrl   Controller
	keys   keyMap
	help   help.Model
	bar    progress.Model
	styles styles
	width  int
}

// New returns a Model driving ctrl.
func New(ctrl Controller) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = defaultWidth - 4

	return Model{
		ctrl:   ctrl,
		keys:   defaultKeyMap(),
		help:   help.New(),
		bar:    bar,
		styles: defaultStyles(),
		width:  defaultWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(msg.Width, 100)
		m.bar.Width = max(m.width-4, 10)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		snap := m.ctrl.Snapshot()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case snap.LevelUpPending && key.Matches(msg, m.keys.Continue):
			m.ctrl.CloseLevelUpModal()
		case key.Matches(msg, m.keys.Start):
			m.ctrl.StartNewChallenge()
		case key.Matches(msg, m.keys.Complete):
			m.ctrl.CompleteChallenge()
		case key.Matches(msg, m.keys.Fail):
			m.ctrl.ResetChallenge()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	snap := m.ctrl.Snapshot()

	sections := []string{
		m.header(snap),
		m.experience(snap),
		m.challenge(snap),
	}
	if snap.LevelUpPending {
		sections = append(sections, m.levelUp(snap))
	}
	sections = append(sections, m.styles.Help.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) header(snap core.Progress) string {
	level := m.styles.Title.Render(fmt.Sprintf(" Level %d ", snap.Level))
	completed := m.styles.Muted.Render(fmt.Sprintf("Completed challenges: %d", snap.ChallengesCompleted))
	return lipgloss.JoinHorizontal(lipgloss.Center, level, "  ", completed)
}

func (m Model) experience(snap core.Progress) string {
	next := snap.ExperienceToNextLevel()
	ratio := 0.0
	if next > 0 {
		ratio = float64(snap.CurrentExperience) / float64(next)
	}
	label := m.styles.Muted.Render(fmt.Sprintf("0 xp  %d / %d xp", snap.CurrentExperience, next))
	return "\n" + m.bar.ViewAs(ratio) + "\n" + label + "\n"
}

func (m Model) challenge(snap core.Progress) string {
	box := m.styles.Card.Width(m.width - 2)

	challenge, ok := snap.Active.Get()
	if !ok {
		return box.Render(strings.Join([]string{
			m.styles.Bold.Render("No active challenge."),
			"",
			m.styles.Muted.Render("Press s to receive one and level up by completing it."),
		}, "\n"))
	}

	return box.Render(strings.Join([]string{
		m.styles.Accent.Render(fmt.Sprintf("Worth %d xp", challenge.Amount)),
		"",
		m.styles.Bold.Render("New challenge: " + challenge.Kind.Label()),
		challenge.Description,
		"",
		m.styles.Success.Render("[c] Completed") + "   " + m.styles.Error.Render("[f] Failed"),
	}, "\n"))
}

func (m Model) levelUp(snap core.Progress) string {
	return m.styles.Modal.Width(m.width - 2).Render(strings.Join([]string{
		m.styles.Title.Render(fmt.Sprintf(" %d ", snap.Level)),
		"",
		m.styles.Bold.Render("Congratulations"),
		"You have reached a new level.",
		"",
		m.styles.Muted.Render("Press enter to continue"),
	}, "\n"))
}
