package datadocs

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches the platform's default browser on the given report path.
// Best effort: the gate's exit status never depends on the browser.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open data docs: %w", err)
	}
	return nil
}
