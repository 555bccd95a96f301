package internal

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cfgtrack",
	Short: "cfgtrack maps CONFIG options to the object files they control",
	Long: `cfgtrack scans a Kconfig/Makefile-style source tree and reports, for each
CONFIG option in a configuration snapshot, the object files conditionally
built under that option (the obj-$(CONFIG_X) += foo.o idiom).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
