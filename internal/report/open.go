package report

import (
	"os/exec"
	"runtime"
)

// openInBrowser opens path with the platform's default handler. Best
// effort: a missing opener is not an error worth surfacing.
func openInBrowser(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	_ = cmd.Start()
}
