package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/Cyclone1070/cfgtrack/internal/config"
	"github.com/Cyclone1070/cfgtrack/internal/tracker"
	"github.com/spf13/cobra"
)

var dryrunSource string

var dryrunCmd = &cobra.Command{
	Use:   "dryrun",
	Short: "Inventory source units via a build-system dry run",
	Long: `Dryrun invokes the build system in simulation mode ("make -n") and lists
every source file the build would touch. The inventory is option-independent
and best-effort: it is a sanity cross-check for the track command, not a
primary signal.`,
	RunE: runDryrun,
}

func init() {
	dryrunCmd.Flags().StringVarP(&dryrunSource, "source", "s", ".", "Path to the source tree")
	rootCmd.AddCommand(dryrunCmd)
}

func runDryrun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	root, err := validateSource(dryrunSource)
	if err != nil {
		return err
	}

	tr, err := tracker.New(root, cfg)
	if err != nil {
		return err
	}

	units := tr.ProbeBuild(ctx)
	if len(units) == 0 {
		fmt.Println("build dry run produced no source units")
		return nil
	}

	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Println(name)
	}
	fmt.Printf("%d source units\n", len(names))
	return nil
}
