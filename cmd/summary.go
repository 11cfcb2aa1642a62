package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hvollset/dinodaily/internal/archive"
	"github.com/hvollset/dinodaily/internal/config"
	"github.com/hvollset/dinodaily/internal/summary"
	"github.com/hvollset/dinodaily/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagSummaryDataDir string
	flagSummaryOutput  string
)

func init() {
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Regenerate the summary README from the most recently archived comic",
		RunE:  runSummaryCmd,
	}

	summaryCmd.Flags().StringVar(&flagSummaryDataDir, "data-dir", "", "archive root directory")
	summaryCmd.Flags().StringVar(&flagSummaryOutput, "output", "", "summary document path")

	rootCmd.AddCommand(summaryCmd)
}

func runSummaryCmd(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		DataDir:      flagSummaryDataDir,
		SummaryPath:  flagSummaryOutput,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if usedPath != "" {
		fmt.Printf("Config file: %s\n", usedPath)
	}

	return runSummary(cfg, logSvc)
}

// runSummary regenerates the summary document from the archive. An empty
// archive is reported but leaves the existing document untouched.
func runSummary(cfg *config.Config, logSvc *ui.Logger) error {
	entry, err := archive.LatestEntry(cfg.DataDir, filepath.Dir(cfg.SummaryPath), cfg.ImageExt)
	if errors.Is(err, archive.ErrNoEntries) {
		fmt.Printf("No comic found to update %s\n", cfg.SummaryPath)
		return nil
	}
	if err != nil {
		logSvc.Errorf("resolving latest comic: %v\n", err)
		return err
	}

	if err := summary.WriteDocument(cfg.SummaryPath, entry); err != nil {
		logSvc.Errorf("updating %s: %v\n", cfg.SummaryPath, err)
		return err
	}

	fmt.Printf("%s updated successfully with comic: %s\n", cfg.SummaryPath, entry.Base)
	return nil
}
