package lib

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultInstallerPath is where the checkout keeps its installer script,
// relative to the checkout root.
const DefaultInstallerPath = "code/install.bat"

// InstallerPath resolves the installer script location against the checkout
// root. Absolute paths are used as-is.
func InstallerPath(checkout, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}

	return filepath.Join(checkout, rel)
}

// EnsureInstaller turns a missing installer script into an early, explicit
// failure instead of a confusing deferred one from the shell that tries to
// run it.
func EnsureInstaller(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return errors.Errorf("installer script not found at %s", path)
	}
	if err != nil {
		return errors.Wrapf(err, "checking installer script %s", path)
	}
	if info.IsDir() {
		return errors.Errorf("installer path %s is a directory", path)
	}

	return nil
}
