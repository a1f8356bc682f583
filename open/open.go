// Package open hands links and saved files to the system's default application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// openers are keyed by runtime.GOOS.
var openers = map[string]func(target string) *exec.Cmd{
	"windows": func(target string) *exec.Cmd {
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", target)
	},
	"darwin": func(target string) *exec.Cmd {
		return exec.Command("open", target)
	},
	"linux": func(target string) *exec.Cmd {
		return exec.Command("xdg-open", target)
	},
	"android": func(target string) *exec.Cmd {
		return exec.Command("termux-open", target)
	},
}

// Command builds the system command opening target, or fails on an unsupported OS.
func Command(goos, target string) (*exec.Cmd, error) {
	opener, ok := openers[goos]
	if !ok {
		return nil, fmt.Errorf("opening files is not supported on %s", goos)
	}
	return opener(target), nil
}

// Start opens target without waiting for the application to exit.
func Start(target string) error {
	cmd, err := Command(runtime.GOOS, target)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	go func() { _ = cmd.Wait() }()
	return nil
}
