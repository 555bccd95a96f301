package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Cyclone1070/cfgtrack/internal/config"
	"github.com/Cyclone1070/cfgtrack/internal/tracker"
	"github.com/spf13/cobra"
)

var crosscheckSource string

var crosscheckCmd = &cobra.Command{
	Use:   "crosscheck CONFIG_OPTION",
	Short: "Cross-check an option's artifacts via a filesystem walk",
	Long: `Crosscheck scans every Makefile in the tree directly (no version-control
metadata) for references to the given option and lists the Makefiles plus the
referenced source files that exist on disk. Slower and stricter than the
git-grep scan used by track; useful to verify its output.`,
	Args: cobra.ExactArgs(1),
	RunE: runCrosscheck,
}

func init() {
	crosscheckCmd.Flags().StringVarP(&crosscheckSource, "source", "s", ".", "Path to the source tree")
	rootCmd.AddCommand(crosscheckCmd)
}

func runCrosscheck(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	option := args[0]
	if !tracker.ValidOptionName(option) {
		return fmt.Errorf("invalid option name: %s", option)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	root, err := validateSource(crosscheckSource)
	if err != nil {
		return err
	}

	tr, err := tracker.New(root, cfg)
	if err != nil {
		return err
	}

	files := tr.CrossCheckObjects(ctx, option)
	if len(files) == 0 {
		fmt.Printf("no Makefile references found for %s\n", option)
		return nil
	}
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}
