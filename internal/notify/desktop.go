package notify

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
)

// ErrPermissionDenied is returned by Notify before permission was granted.
var ErrPermissionDenied = errors.New("notify: permission not granted")

// Desktop sends desktop notifications through notify-send (Linux, BSD) or
// osascript (macOS).
type Desktop struct {
	enabled  bool
	goos     string
	bin      string
	granted  bool
	lookPath func(string) (string, error)
	start    func(*exec.Cmd) error
}

// NewDesktop returns a notifier. A disabled notifier never grants permission.
func NewDesktop(enabled bool) *Desktop {
	return &Desktop{
		enabled:  enabled,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// RequestPermission reports whether notifications can be shown. Permission is
// granted when notifications are enabled and the platform tool is installed.
func (d *Desktop) RequestPermission() bool {
	d.granted = false
	if !d.enabled {
		return false
	}

	name := "notify-send"
	if d.goos == "darwin" {
		name = "osascript"
	}

	bin, err := d.lookPath(name)
	if err != nil {
		return false
	}
	d.bin = bin
	d.granted = true
	return true
}

// Notify shows a notification without waiting for the tool to exit.
func (d *Desktop) Notify(title, body string) error {
	if !d.granted {
		return ErrPermissionDenied
	}

	cmd := exec.Command(d.bin, d.args(title, body)...)
	if err := d.start(cmd); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}

func (d *Desktop) args(title, body string) []string {
	if d.goos == "darwin" {
		script := "display notification " + strconv.Quote(body) + " with title " + strconv.Quote(title)
		return []string{"-e", script}
	}
	return []string{"--app-name=moveit", title, body}
}
