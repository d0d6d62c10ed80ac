package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ofx-tools/wsexport/cmd/accounts"
	"github.com/ofx-tools/wsexport/cmd/export"
	"github.com/ofx-tools/wsexport/cmd/initconfig"
	"github.com/ofx-tools/wsexport/cmd/serve"
	"github.com/ofx-tools/wsexport/cmd/validate"
)

var verbose *bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wsexport",
	Short: "export brokerage transactions as OFX documents",
	Long: `wsexport pulls transaction activity from the brokerage's GraphQL API
and renders one OFX 1.02 document per account, suitable for import into
accounting software.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if *verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(export.ExportCmd)
	rootCmd.AddCommand(initconfig.InitCmd)
	rootCmd.AddCommand(accounts.AccountsCmd)
	rootCmd.AddCommand(serve.ServeCmd)
	rootCmd.AddCommand(validate.ValidateCmd)
}
