//go:build windows
// +build windows

package lib

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// RunElevated executes a powershell command in an elevated child process and
// blocks until it exits. A non-zero exit comes back as a CommandError so the
// sequencer terminates with the same code.
func RunElevated(command string) error {
	cmd := exec.Command("powershell", ElevatedArgs(command)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exiterr, ok := err.(*exec.ExitError); ok {
			return CommandError{Command: command, Code: exiterr.ExitCode()}
		}
		return errors.Wrapf(err, "elevated command failed: %s", command)
	}

	return nil
}
