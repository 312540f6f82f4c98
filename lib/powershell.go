package lib

import (
	"fmt"
	"strings"
)

// ExecutionPolicyCommand relaxes the scripting host so locally-authored and
// remotely-signed scripts may run. Required before the installer script.
const ExecutionPolicyCommand = "Set-ExecutionPolicy RemoteSigned -Scope CurrentUser -Force"

// ElevatedArgs wraps a powershell command so it runs in an elevated child
// process. The outer powershell waits for the elevated one to exit and then
// exits with its code, so a failed elevated command aborts the sequence like
// any other step. Without -PassThru, Start-Process discards the child's
// exit status.
func ElevatedArgs(command string) []string {
	return []string{
		"-Command",
		fmt.Sprintf("$p = Start-Process powershell -Verb RunAs -Wait -PassThru -ArgumentList '-Command', '%s'; exit $p.ExitCode", escapeSingleQuotes(command)),
	}
}

func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
