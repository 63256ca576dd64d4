package timers

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Notifier delivers a completion notification. Delivery is
// best-effort; callers ignore send errors.
type Notifier interface {
	Send(title, body string) error
}

type NoopNotifier struct{}

func (NoopNotifier) Send(string, string) error { return nil }

// DesktopNotifier shells out to the platform notification command.
type DesktopNotifier struct{}

func (DesktopNotifier) Send(title, body string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
