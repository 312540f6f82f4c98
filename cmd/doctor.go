package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/opsfactor/buildprep-cli/lib"
)

type preflightCheck struct {
	Name   string
	Detail string
	Passed bool
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that this agent can run the bootstrap sequence",
	Long: `
Doctor inspects the agent environment and reports whether each bootstrap prerequisite is in place. Nothing is mutated.

Example:
  $ buildprep doctor
`,

	Run: func(cmd *cobra.Command, args []string) {
		checks := runPreflightChecks(lib.PlatformFlag(), lib.CheckoutDir())

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Result", "Check", "Detail"})
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(3)

		failures := 0
		for _, check := range checks {
			state := "Pass"
			if !check.Passed {
				state = "Fail"
				failures++
			}
			table.Append([]string{state, check.Name, check.Detail})
		}

		table.Render()

		if failures > 0 {
			fatal(fmt.Sprintf("%d preflight check(s) failed", failures), 1)
		}
	},
}

func runPreflightChecks(platform, checkout string) []preflightCheck {
	var checks []preflightCheck

	platformCheck := preflightCheck{Name: "platform flag", Passed: true, Detail: platform}
	if platform == "" {
		platformCheck.Passed = false
		platformCheck.Detail = "no platform flag in environment"
	} else if platform != lib.PlatformWindows {
		platformCheck.Detail = platform + " (bootstrap is a no-op)"
	}
	checks = append(checks, platformCheck)

	checkoutCheck := preflightCheck{Name: "build checkout", Passed: true, Detail: checkout}
	if !isPathToDirectory(checkout) {
		checkoutCheck.Passed = false
		checkoutCheck.Detail = checkout + " is not a directory"
	}
	checks = append(checks, checkoutCheck)

	if platform != lib.PlatformWindows {
		return checks
	}

	tempCheck := preflightCheck{Name: "agent temp directory", Passed: true}
	if tempDir, err := lib.AgentTempDir(); err == nil {
		tempCheck.Detail = tempDir
	} else {
		tempCheck.Passed = false
		tempCheck.Detail = err.Error()
	}
	checks = append(checks, tempCheck)

	installer := lib.InstallerPath(checkout, lib.DefaultInstallerPath)
	installerCheck := preflightCheck{Name: "installer script", Passed: true, Detail: installer}
	if err := lib.EnsureInstaller(installer); err != nil {
		installerCheck.Passed = false
		installerCheck.Detail = err.Error()
	}
	checks = append(checks, installerCheck)

	for _, tool := range []string{"choco", "powershell"} {
		toolCheck := preflightCheck{Name: tool + " on PATH", Passed: true}
		if path, err := exec.LookPath(tool); err == nil {
			toolCheck.Detail = path
		} else {
			toolCheck.Passed = false
			toolCheck.Detail = tool + " not found"
		}
		checks = append(checks, toolCheck)
	}

	return checks
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}
