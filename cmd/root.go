package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/getsentry/raven-go"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Version = "0.3.1"

var cfgFile string

// Flags that are either global or used in multiple commands
var debugLog string
var verbose bool
var autoMode bool

const (
	varCheckout  = "BUILDPREP-CHECKOUT"
	varBuildCmd  = "BUILDPREP-BUILD-CMD"
	varPlatform  = "BUILDPREP-PLATFORM"
	varInstaller = "BUILDPREP-INSTALLER"
	varSentryDsn = "BUILDPREP-SENTRY-DSN"
	varConfig    = "BUILDPREP-CONFIG"
	varLog       = "BUILDPREP-LOG"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "buildprep",
	Short: fmt.Sprintf("Buildprep CLI tools version %s", Version),
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", cfgFile, "Config file (default: .buildprep.json)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", verbose, "Verbose output")
	RootCmd.PersistentFlags().BoolVar(&autoMode, "auto", autoMode, "Do not use an interactive shell; never prompt")

	RootCmd.PersistentFlags().StringVar(&debugLog, "log", debugLog, "Write debug logs to supplied file")
	RootCmd.PersistentFlags().MarkHidden("log")

	viper.BindPFlag(varConfig, RootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag(varLog, RootCmd.PersistentFlags().Lookup("log"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory
		viper.AddConfigPath(home)
		viper.SetConfigName(".buildprep")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log("Reading config from " + viper.ConfigFileUsed())
	}

	if dsn := viper.GetString(varSentryDsn); dsn != "" {
		raven.SetDSN(dsn)
	}
}

func printSuccessText(message string) {
	if autoMode {
		log(message)
	} else {
		color.New(color.FgHiGreen).Println(message)
	}
}

func printWarningText(message string) {
	if autoMode {
		log(message)
	} else {
		color.New(color.FgHiYellow).Println(message)
	}
}

func printErrorText(message string) {
	if autoMode {
		log(message)
	} else {
		color.New(color.FgHiRed, color.Bold).Println(message)
	}
}

func isPathToDirectory(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fileInfo.Mode().IsDir()
}

func fatal(message string, exitCode int) {
	if viper.GetString(varSentryDsn) != "" {
		raven.CaptureErrorAndWait(errors.New(message), nil)
	}

	printErrorText(message)
	os.Exit(exitCode)
}

func log(msg string) {
	if len(debugLog) > 0 {
		if verbose {
			fmt.Println("Writing to log file " + debugLog)
		}
		f, _ := os.OpenFile(debugLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		defer f.Close()
		f.WriteString(msg + "\n")
	}

	if verbose {
		fmt.Println(msg)
	}
}

func makeStamp() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

func formatStamp(stamp float64) string {
	return strconv.FormatFloat(stamp, 'f', 3, 64)
}
