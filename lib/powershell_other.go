//go:build !windows
// +build !windows

package lib

import "github.com/pkg/errors"

// RunElevated requires the Windows UAC elevation path. The bootstrap
// sequence never reaches it on other platforms.
func RunElevated(command string) error {
	return errors.New("elevated powershell commands are only supported on windows")
}
