package accounts

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ofx-tools/wsexport/pkg/account"
	"github.com/ofx-tools/wsexport/pkg/config"
	"github.com/ofx-tools/wsexport/pkg/ofx"
	"github.com/ofx-tools/wsexport/pkg/wsclient"
)

var configPath *string

// AccountsCmd represents the accounts command
var AccountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "list accounts with their resolved names and statement families",
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

	cli := wsclient.New(cfg, token, identityID)
	accts, err := cli.AccountFinancials(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tKIND\tFAMILY")
	for _, a := range accts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, account.Nickname(a), a.UnifiedAccountType, ofx.AccountType(a.UnifiedAccountType, nil))
	}
	return w.Flush()
}

func init() {
	configPath = AccountsCmd.Flags().String("config", config.DefaultPath, "config file path")
}
