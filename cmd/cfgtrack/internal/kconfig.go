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

var kconfigSource string

var kconfigCmd = &cobra.Command{
	Use:   "kconfig CONFIG_OPTION",
	Short: "List Kconfig files referencing an option",
	Long: `Kconfig searches option-declaration files for the given option: its
declaration header, select references, dependency references and bare
occurrences. It prints the union of matching file paths.`,
	Args: cobra.ExactArgs(1),
	RunE: runKconfig,
}

func init() {
	kconfigCmd.Flags().StringVarP(&kconfigSource, "source", "s", ".", "Path to the source tree")
	rootCmd.AddCommand(kconfigCmd)
}

func runKconfig(cmd *cobra.Command, args []string) error {
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
	root, err := validateSource(kconfigSource)
	if err != nil {
		return err
	}

	tr, err := tracker.New(root, cfg)
	if err != nil {
		return err
	}

	files := tr.KconfigReferences(ctx, option)
	if len(files) == 0 {
		fmt.Printf("no Kconfig references found for %s\n", option)
		return nil
	}
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}
