package lib

import "fmt"

// DefenderSetting is one Windows Defender feature that slows file IO during
// a build and gets turned off beforehand.
type DefenderSetting struct {
	Name    string
	Command string
}

// DefenderDisableSettings returns the Defender features to disable, in the
// order they are disabled. Each needs its own elevated invocation.
func DefenderDisableSettings() []DefenderSetting {
	return []DefenderSetting{
		{Name: "archive scanning", Command: "Set-MpPreference -DisableArchiveScanning $true"},
		{Name: "behavior monitoring", Command: "Set-MpPreference -DisableBehaviorMonitoring $true"},
		{Name: "real-time monitoring", Command: "Set-MpPreference -DisableRealtimeMonitoring $true"},
	}
}

// DefenderExclusionCommand builds the command that excludes path from
// Defender file scanning.
func DefenderExclusionCommand(path string) string {
	return fmt.Sprintf("Add-MpPreference -ExclusionPath '%s'", escapeSingleQuotes(path))
}
