// Package notify implements the best-effort alerts raised when a challenge
// starts: an audio cue and a desktop notification.
package notify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// knownPlayers lists audio players probed on PATH, in order of preference.
var knownPlayers = []string{"paplay", "pw-play", "afplay", "aplay", "mpv", "ffplay"}

// Player plays cues through an external command, falling back to the
// terminal bell when no command is available.
type Player struct {
	command string
	bell    io.Writer
	start   func(*exec.Cmd) error
}

// NewPlayer returns a Player using configured, or the first known player on
// PATH when configured is empty. bell receives the fallback cue; it may be nil.
func NewPlayer(configured string, bell io.Writer) *Player {
	command := strings.TrimSpace(configured)
	if command == "" {
		if players := AvailablePlayers(); len(players) > 0 {
			command = players[0]
		}
	}
	return &Player{command: command, bell: bell, start: startDetached}
}

// Command returns the player command line, or "" when only the bell is used.
func (p *Player) Command() string {
	return p.command
}

// PlayCue starts playing path without waiting for it to finish.
func (p *Player) PlayCue(path string) error {
	if p.command == "" || strings.TrimSpace(path) == "" {
		return p.ring()
	}

	if _, err := os.Stat(path); err != nil {
		_ = p.ring()
		return fmt.Errorf("play cue: %w", err)
	}

	cmd, err := buildPlayerCommand(p.command, path)
	if err != nil {
		_ = p.ring()
		return fmt.Errorf("play cue: %w", err)
	}

	if err := p.start(cmd); err != nil {
		return fmt.Errorf("play cue: %s: %w", p.command, err)
	}
	return nil
}

func (p *Player) ring() error {
	if p.bell == nil {
		return errors.New("play cue: no audio output")
	}
	_, err := io.WriteString(p.bell, "\a")
	return err
}

// AvailablePlayers returns the known players found on PATH.
func AvailablePlayers() []string {
	players := make([]string, 0, len(knownPlayers))
	for _, candidate := range knownPlayers {
		if _, err := exec.LookPath(candidate); err != nil {
			continue
		}
		players = append(players, candidate)
	}
	return players
}

func buildPlayerCommand(player string, path string) (*exec.Cmd, error) {
	trimmed := strings.TrimSpace(player)
	if trimmed == "" {
		return nil, fmt.Errorf("empty player")
	}

	argv := strings.Fields(trimmed)
	playerBin, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, err
	}

	args := playerArgs(filepath.Base(playerBin), argv[1:])
	args = append(args, path)
	return exec.Command(playerBin, args...), nil
}

// playerArgs adds the flags a player needs to run headless and exit when done.
func playerArgs(base string, args []string) []string {
	var required []string
	switch base {
	case "mpv":
		required = []string{"--no-video", "--really-quiet"}
	case "ffplay":
		required = []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}
	}

	out := append([]string(nil), args...)
	for _, flag := range required {
		has := false
		for _, a := range args {
			if a == flag {
				has = true
				break
			}
		}
		if !has {
			out = append(out, flag)
		}
	}
	return out
}

// startDetached starts cmd and reaps it in the background.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
