package lib

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// PlatformWindows is the platform flag value that enables the bootstrap
// sequence. Any other value makes bootstrap a no-op.
const PlatformWindows = "windows"

// Agent images keep their scratch space under the local application data
// directory. The variable is expanded at runtime.
const agentTempDirTemplate = `${LOCALAPPDATA}\Temp`

// PlatformFlag returns the CI-supplied platform identifier, read once before
// any conditional branch. AGENT_OS is preferred; TRAVIS_OS_NAME is kept for
// older agent images. Empty means no recognized CI environment.
func PlatformFlag() string {
	for _, key := range []string{"AGENT_OS", "TRAVIS_OS_NAME"} {
		if value := NormalizePlatform(os.Getenv(key)); value != "" {
			return value
		}
	}

	return ""
}

// NormalizePlatform canonicalizes a platform flag value, wherever it came
// from. "Windows" from a flag and "windows" from the environment must
// compare equal.
func NormalizePlatform(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// AgentTempDir expands the local-application-data variable into the agent's
// temp directory template.
func AgentTempDir() (string, error) {
	if os.Getenv("LOCALAPPDATA") == "" {
		return "", errors.New("LOCALAPPDATA is not set; this does not look like a Windows agent")
	}

	return os.Expand(agentTempDirTemplate, os.Getenv), nil
}

// CheckoutDir resolves the build checkout root from the environment, falling
// back to the working directory.
func CheckoutDir() string {
	for _, key := range []string{"BUILD_CHECKOUT", "TRAVIS_BUILD_DIR"} {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}

	wd, _ := os.Getwd()
	return wd
}
