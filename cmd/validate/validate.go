package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ofx-tools/wsexport/pkg/ofx"
)

// ValidateCmd represents the validate command
var ValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "parse exported OFX files and report their contents",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if err := run(args); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func run(paths []string) error {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}

		sum, err := ofx.Validate(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to validate %s: %w", path, err)
		}

		fmt.Printf("%s: %d statement(s), %d transaction(s)\n", path, sum.Statements, sum.Transactions)
	}
	return nil
}
