package export

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ofx-tools/wsexport/pkg/config"
	exporter "github.com/ofx-tools/wsexport/pkg/export"
	"github.com/ofx-tools/wsexport/pkg/wsclient"
)

var (
	configPath  *string
	rangePreset *string
	accountID   *string
	outDir      *string
)

// ExportCmd represents the export command
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "export transactions as OFX, one file per account",
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

	token, identityID, err := config.Credentials()
	if err != nil {
		return fmt.Errorf("failed to read credentials: %w", err)
	}

	fromDate, err := exporter.RangeFrom(*rangePreset, time.Now())
	if err != nil {
		return err
	}

	scope := exporter.Scope{
		PageType: exporter.PageFeed,
		FromDate: fromDate,
	}
	if *accountID != "" {
		scope.PageType = exporter.PageAccountDetail
		scope.AccountIDs = []string{*accountID}
	}

	cli := wsclient.New(cfg, token, identityID)
	docs, err := exporter.New(cli, cfg).Run(context.Background(), scope)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	dir := cfg.OutputDir
	if *outDir != "" {
		dir = *outDir
	}

	paths, err := exporter.WriteFiles(dir, docs)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully exported %d account(s).\n", len(paths))
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

func init() {
	configPath = ExportCmd.Flags().String("config", config.DefaultPath, "config file path")
	rangePreset = ExportCmd.Flags().String("range", exporter.RangeMonth, "date range preset: 2w, month or all")
	accountID = ExportCmd.Flags().String("account", "", "export a single account instead of the whole activity feed")
	outDir = ExportCmd.Flags().String("out", "", "output directory (defaults to the configured one)")
}
