package initconfig

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ofx-tools/wsexport/pkg/config"
)

var configPath *string

// InitCmd represents the init command
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "write a starter config file with the default settings",
	Run: func(_ *cobra.Command, _ []string) {
		if err := run(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func run() error {
	if _, err := os.Stat(*configPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", *configPath)
	}

	if err := config.Dump(*configPath, config.Default()); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", *configPath)
	return nil
}

func init() {
	configPath = InitCmd.Flags().String("config", config.DefaultPath, "config file path")
}
