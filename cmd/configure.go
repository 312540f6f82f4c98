package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ConfigFile struct {
	Checkout  string `json:"BUILDPREP-CHECKOUT,omitempty"`
	BuildCmd  string `json:"BUILDPREP-BUILD-CMD,omitempty"`
	Installer string `json:"BUILDPREP-INSTALLER,omitempty"`
	SentryDsn string `json:"BUILDPREP-SENTRY-DSN,omitempty"`
}

// configureCmd represents the configure command
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Write required configuration variables to the selected config file.",
	Long:  `Set configuration variables`,
	Run: func(cmd *cobra.Command, args []string) {
		configData := ConfigFile{}
		configData.Checkout = viper.GetString(varCheckout)
		configData.BuildCmd = viper.GetString(varBuildCmd)
		configData.Installer = viper.GetString(varInstaller)
		configData.SentryDsn = viper.GetString(varSentryDsn)

		b, err := json.MarshalIndent(configData, "", "    ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if os.WriteFile(configFilePath(), b, 0644) != nil {
			fmt.Fprintf(os.Stderr, "the configuration file at %s could not be written; check permissions and try again", configFilePath())
			os.Exit(126)
		}
	},
}

func configFilePath() string {
	viperConfig := viper.ConfigFileUsed()
	if len(viperConfig) > 0 {
		return viperConfig
	}

	defaultConfig, _ := homedir.Expand("~/.buildprep.json")
	return defaultConfig
}

func init() {
	RootCmd.AddCommand(configureCmd)
	configureCmd.Flags().String("sentry-dsn", "", "Report fatal bootstrap failures to this Sentry DSN")
	viper.BindPFlag(varSentryDsn, configureCmd.Flags().Lookup("sentry-dsn"))
}
