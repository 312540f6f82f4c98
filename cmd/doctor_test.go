package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func findCheck(checks []preflightCheck, name string) *preflightCheck {
	for i := range checks {
		if checks[i].Name == name {
			return &checks[i]
		}
	}
	return nil
}

func TestPreflightChecksWithoutPlatformFlag(t *testing.T) {
	checks := runPreflightChecks("", t.TempDir())

	platformCheck := findCheck(checks, "platform flag")
	assert.NotNil(t, platformCheck)
	assert.False(t, platformCheck.Passed)
}

func TestPreflightChecksNonWindowsSkipsAgentChecks(t *testing.T) {
	checks := runPreflightChecks("linux", t.TempDir())

	assert.Nil(t, findCheck(checks, "agent temp directory"))
	assert.Nil(t, findCheck(checks, "installer script"))

	platformCheck := findCheck(checks, "platform flag")
	assert.NotNil(t, platformCheck)
	assert.True(t, platformCheck.Passed)
	assert.Contains(t, platformCheck.Detail, "no-op")
}

func TestPreflightChecksMissingCheckout(t *testing.T) {
	checks := runPreflightChecks("linux", "/path/that/does/not/exist")

	checkoutCheck := findCheck(checks, "build checkout")
	assert.NotNil(t, checkoutCheck)
	assert.False(t, checkoutCheck.Passed)
}

func TestPreflightChecksWindowsReportsInstaller(t *testing.T) {
	t.Setenv("LOCALAPPDATA", `C:\Users\agent\AppData\Local`)

	checks := runPreflightChecks("windows", t.TempDir())

	installerCheck := findCheck(checks, "installer script")
	assert.NotNil(t, installerCheck)
	assert.False(t, installerCheck.Passed)

	tempCheck := findCheck(checks, "agent temp directory")
	assert.NotNil(t, tempCheck)
	assert.True(t, tempCheck.Passed)
}
