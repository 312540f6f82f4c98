package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opsfactor/buildprep-cli/lib"
)

var bootstrapDryRun bool
var bootstrapInteractive bool

type bootstrapConfig struct {
	Platform  string
	Checkout  string
	Installer string
	BuildCmd  string
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Prepare this build agent and run the build",
	Long: `
Bootstrap prepares a Windows build agent before the build proper: it installs make via chocolatey, excludes the agent temp directory from Windows Defender scanning, disables the Defender features that slow file IO, relaxes the powershell execution policy, runs the checkout's installer script, rewrites Unix-style virtualenv paths in generated Makefiles, and finally runs the build command.

Steps run strictly in order and the first failure aborts the whole sequence with that step's exit code. On any platform other than windows the command does nothing and exits 0.

Example:
  $ buildprep bootstrap --auto
      > Prepare the agent without prompting, then run make

  $ buildprep bootstrap --dry-run
      > Print the steps that would run without executing anything
	`,

	Run: func(cmd *cobra.Command, args []string) {
		cfg := bootstrapConfig{
			Platform:  viper.GetString(varPlatform),
			Checkout:  viper.GetString(varCheckout),
			Installer: viper.GetString(varInstaller),
			BuildCmd:  viper.GetString(varBuildCmd),
		}

		// The platform flag is read once, before any branch is taken.
		cfg.Platform = lib.NormalizePlatform(cfg.Platform)
		if cfg.Platform == "" {
			cfg.Platform = lib.PlatformFlag()
		}
		if cfg.Checkout == "" {
			cfg.Checkout = lib.CheckoutDir()
		}

		steps, err := bootstrapStepsFor(cfg)
		if err != nil {
			fatal(err.Error(), 1)
		}

		if steps == nil {
			log(fmt.Sprintf("Platform %q does not need preparation", cfg.Platform))
			return
		}

		if bootstrapDryRun {
			for i, step := range steps {
				fmt.Printf("%2d. %s\n", i+1, step.Name)
			}
			return
		}

		if !autoMode && !confirmDefenderChanges() {
			printWarningText("Canceled")
			return
		}

		var runErr error
		if bootstrapInteractive && !autoMode {
			runErr = runStepsInteractive(steps)
		} else {
			sequencer := &lib.Sequencer{Steps: steps, Logger: log}
			runErr = sequencer.Run()
		}

		if runErr != nil {
			exitCode := 1
			var stepErr lib.StepError
			if errors.As(runErr, &stepErr) {
				exitCode = stepErr.Code
			}
			fatal(runErr.Error(), exitCode)
		}

		printSuccessText("✔ Agent ready")
	},
}

// bootstrapStepsFor returns the preparation sequence for the platform, or
// nil when the platform needs none. Only windows agents are prepared.
func bootstrapStepsFor(cfg bootstrapConfig) ([]lib.Step, error) {
	if lib.NormalizePlatform(cfg.Platform) != lib.PlatformWindows {
		return nil, nil
	}

	return buildBootstrapSteps(cfg)
}

// buildBootstrapSteps assembles the ordered preparation sequence. The agent
// temp directory is computed up front so a misconfigured agent fails before
// any step mutates the host.
func buildBootstrapSteps(cfg bootstrapConfig) ([]lib.Step, error) {
	tempDir, err := lib.AgentTempDir()
	if err != nil {
		return nil, err
	}

	installer := lib.InstallerPath(cfg.Checkout, cfg.Installer)
	installerDir := filepath.Dir(installer)

	steps := []lib.Step{
		{Name: "install make", Run: func() error {
			return runShellStep("choco install -y make")
		}},
		{Name: "exclude temp directory from Defender scans", Run: func() error {
			log("Excluding " + tempDir + " from Windows Defender scans")
			return lib.RunElevated(lib.DefenderExclusionCommand(tempDir))
		}},
	}

	for _, setting := range lib.DefenderDisableSettings() {
		setting := setting
		steps = append(steps, lib.Step{
			Name: "disable Defender " + setting.Name,
			Run: func() error {
				log("Disabling Windows Defender " + setting.Name)
				return lib.RunElevated(setting.Command)
			},
		})
	}

	steps = append(steps,
		lib.Step{Name: "relax execution policy", Run: func() error {
			return runShellStep(fmt.Sprintf("powershell -Command \"%s\"", lib.ExecutionPolicyCommand))
		}},
		lib.Step{Name: "enter installer directory", Run: func() error {
			return os.Chdir(installerDir)
		}},
		lib.Step{Name: "check installer script", Run: func() error {
			return lib.EnsureInstaller(installer)
		}},
		lib.Step{Name: "run installer", Run: func() error {
			return runShellStep(installer)
		}},
		lib.Step{Name: "return to checkout root", Run: func() error {
			return os.Chdir(cfg.Checkout)
		}},
		lib.Step{Name: "rewrite Makefile paths", Run: func() error {
			rewritten, err := lib.RewriteMakefiles(cfg.Checkout, "/bin", "/Scripts")
			if err != nil {
				return err
			}
			for _, path := range rewritten {
				log("Rewrote " + path)
			}
			return nil
		}},
		lib.Step{Name: "run build", Run: func() error {
			return runShellStep(cfg.BuildCmd)
		}},
	)

	return steps, nil
}

func confirmDefenderChanges() bool {
	prompt := promptui.Prompt{
		Label:     "Disable Windows Defender scanning on this agent",
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		return false
	}

	return true
}

func init() {
	RootCmd.AddCommand(bootstrapCmd)
	bootstrapCmd.Flags().String("checkout", "", "Build checkout root (default: BUILD_CHECKOUT, then the working directory)")
	bootstrapCmd.Flags().String("platform", "", "Platform flag override (default: AGENT_OS, then TRAVIS_OS_NAME)")
	bootstrapCmd.Flags().String("installer", lib.DefaultInstallerPath, "Installer script path, relative to the checkout root")
	bootstrapCmd.Flags().String("build-cmd", "make", "Build command run after preparation")
	bootstrapCmd.Flags().BoolVar(&bootstrapDryRun, "dry-run", bootstrapDryRun, "Print the steps without executing them")
	bootstrapCmd.Flags().BoolVarP(&bootstrapInteractive, "interactive", "i", bootstrapInteractive, "Show step progress in an interactive view")

	viper.BindPFlag(varCheckout, bootstrapCmd.Flags().Lookup("checkout"))
	viper.BindPFlag(varPlatform, bootstrapCmd.Flags().Lookup("platform"))
	viper.BindPFlag(varInstaller, bootstrapCmd.Flags().Lookup("installer"))
	viper.BindPFlag(varBuildCmd, bootstrapCmd.Flags().Lookup("build-cmd"))
}
