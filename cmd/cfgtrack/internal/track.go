package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/Cyclone1070/cfgtrack/internal/config"
	"github.com/Cyclone1070/cfgtrack/internal/report"
	"github.com/Cyclone1070/cfgtrack/internal/tool/gitutil"
	"github.com/Cyclone1070/cfgtrack/internal/tracker"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	trackConfig string
	trackSource string
	trackOutput string
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Scan Makefiles and write the per-option CSV report",
	Long: `Track parses a configuration snapshot (.config or defconfig), finds the
object files each CONFIG option controls by searching Makefiles for
obj-$(CONFIG_X) patterns, and writes one CSV row per option.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().StringVarP(&trackConfig, "config", "c", "", "Path to the configuration snapshot (.config or *defconfig)")
	trackCmd.Flags().StringVarP(&trackSource, "source", "s", "", "Path to the source tree")
	trackCmd.Flags().StringVarP(&trackOutput, "output", "o", "", "Output CSV path")
	_ = trackCmd.MarkFlagRequired("config")
	_ = trackCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if trackOutput == "" {
		trackOutput = cfg.Report.DefaultOutput
	}

	root, err := validateSource(trackSource)
	if err != nil {
		return err
	}
	if _, err := os.Stat(trackConfig); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", trackConfig)
		}
		return err
	}

	if !gitutil.IsWorkTree(root) {
		log.Warnf("not a git repository, tracked-file search will be limited")
	}

	log.Infof("parsing config file %s", trackConfig)
	snap, err := tracker.ParseSnapshotFile(trackConfig)
	if err != nil {
		return err
	}
	log.Infof("found %d configuration options", snap.Len())

	tr, err := tracker.New(root, cfg)
	if err != nil {
		return err
	}

	records, err := tr.Analyze(ctx, snap)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("analysis interrupted by user")
		}
		return err
	}

	// The report is only written once the full scan has completed, so an
	// aborted run leaves no partial output file behind.
	if err := report.WriteCSV(trackOutput, records); err != nil {
		return err
	}
	log.Infof("exported %d configuration options to %s", len(records), trackOutput)

	summary := tracker.Summarize(snap, records, cfg.Report.TopOptions)
	fmt.Print(report.RenderSummary(summary))
	fmt.Print(report.RenderImportHint(trackOutput))

	return nil
}

// validateSource checks that the source path exists and is a directory,
// returning it as an absolute path.
func validateSource(src string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("source directory not found: %s", src)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("source path is not a directory: %s", src)
	}
	return filepath.Abs(src)
}
