package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divijg19/moveit/internal/core"
)

type fakeController struct {
	snap  core.Progress
	calls []string
}

func (f *fakeController) Snapshot() core.Progress { return f.snap }
func (f *fakeController) StartNewChallenge()      { f.calls = append(f.calls, "start") }
func (f *fakeController) CompleteChallenge()      { f.calls = append(f.calls, "complete") }
func (f *fakeController) ResetChallenge()         { f.calls = append(f.calls, "reset") }
func (f *fakeController) LevelUp()                { f.calls = append(f.calls, "levelup") }
func (f *fakeController) CloseLevelUpModal()      { f.calls = append(f.calls, "close") }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestKeysDriveController(t *testing.T) {
	ctrl := &fakeController{snap: core.Progress{Level: 1}}
	m := New(ctrl)

	m, _ = update(t, m, runeKey('s'))
	m, _ = update(t, m, runeKey('c'))
	m, _ = update(t, m, runeKey('f'))
	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"start", "complete", "reset"}, ctrl.calls)
}

func TestContinueClosesLevelUp(t *testing.T) {
	ctrl := &fakeController{snap: core.Progress{Level: 2, LevelUpPending: true}}
	m := New(ctrl)

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"close"}, ctrl.calls)
}

func TestQuit(t *testing.T) {
	m := New(&fakeController{snap: core.Progress{Level: 1}})

	_, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewIdle(t *testing.T) {
	ctrl := &fakeController{snap: core.Progress{Level: 1, CurrentExperience: 10, ChallengesCompleted: 3}}
	view := New(ctrl).View()

	assert.Contains(t, view, "Level 1")
	assert.Contains(t, view, "10 / 64 xp")
	assert.Contains(t, view, "Completed challenges: 3")
	assert.Contains(t, view, "No active challenge.")
	assert.NotContains(t, view, "Congratulations")
}

func TestViewActiveChallenge(t *testing.T) {
	challenge := core.Challenge{Kind: core.KindEye, Description: "Look far away", Amount: 80}
	ctrl := &fakeController{snap: core.Progress{Level: 2, Active: core.Some(challenge)}}
	view := New(ctrl).View()

	assert.Contains(t, view, "Worth 80 xp")
	assert.Contains(t, view, "Eyes")
	assert.Contains(t, view, "Look far away")
	assert.Contains(t, view, "0 / 144 xp")
}

func TestViewLevelUp(t *testing.T) {
	ctrl := &fakeController{snap: core.Progress{Level: 3, LevelUpPending: true}}
	view := New(ctrl).View()

	assert.Contains(t, view, "Congratulations")
	assert.Contains(t, view, "Press enter to continue")
}

func TestWindowResize(t *testing.T) {
	m := New(&fakeController{snap: core.Progress{Level: 1}})

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Nil(t, cmd)
	assert.Equal(t, 40, m.width)
	assert.Equal(t, 36, m.bar.Width)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 300, Height: 20})
	assert.Equal(t, 100, m.width)
}

func TestHelpToggle(t *testing.T) {
	m := New(&fakeController{snap: core.Progress{Level: 1}})
	assert.False(t, m.help.ShowAll)

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
}
