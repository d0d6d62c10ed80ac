package serve

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ofx-tools/wsexport/pkg/config"
	"github.com/ofx-tools/wsexport/pkg/server"
)

var (
	configPath *string
	addr       *string
)

// ServeCmd represents the serve command
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "run an HTTP server that exports statements on demand",
	Run: func(_ *cobra.Command, _ []string) {
		if err := run(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	return server.New(cfg).ListenAndServe(context.Background(), *addr)
}

func init() {
	configPath = ServeCmd.Flags().String("config", config.DefaultPath, "config file path")
	addr = ServeCmd.Flags().String("addr", "127.0.0.1:8437", "listen address")
}
