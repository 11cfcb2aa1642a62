package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hvollset/dinodaily/internal/archive"
	"github.com/hvollset/dinodaily/internal/config"
	"github.com/hvollset/dinodaily/internal/qwantz"
	"github.com/hvollset/dinodaily/internal/ui"
	"github.com/hvollset/dinodaily/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagURL     string
	flagDataDir string

	// headers/auth
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string

	flagTimeout          int
	flagCloudflareBypass bool
)

func init() {
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download today's comic into the dated archive directory. Uses the config defaults, overwritten by CLI flags",
		RunE:  runFetch,
	}

	fetchCmd.Flags().StringVar(&flagURL, "url", "", "comic page URL")
	fetchCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "archive root directory")

	// headers/auth
	fetchCmd.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	fetchCmd.Flags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	fetchCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")

	fetchCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "HTTP timeout in seconds")
	fetchCmd.Flags().BoolVar(&flagCloudflareBypass, "cloudflare-bypass", false, "route requests through the Cloudflare bypass transport")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig:     flagIgnoreConfig,
		Debug:            flagDebug,
		BaseURL:          flagURL,
		DataDir:          flagDataDir,
		Cookie:           flagCookie,
		CookieFile:       flagCookieFile,
		UserAgent:        flagUserAgent,
		TimeoutSeconds:   flagTimeout,
		CloudflareBypass: flagCloudflareBypass,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if usedPath != "" {
		fmt.Printf("Config file: %s\n", usedPath)
	}

	if err := runAcquire(context.Background(), cfg, logSvc); err != nil {
		fmt.Println("Failed to download comic.")
		return err
	}

	fmt.Println("Comic download completed successfully!")
	return nil
}

// runAcquire runs the fetch -> extract -> download -> persist chain once,
// stopping at the first failure.
func runAcquire(ctx context.Context, cfg *config.Config, logSvc *ui.Logger) error {
	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          time.Duration(cfg.TimeoutSeconds) * time.Second,
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      logSvc,
	})
	if err != nil {
		return err
	}

	scr := qwantz.NewScraper(client, cfg.BaseURL, logSvc)

	comic, err := scr.Current(ctx)
	if err != nil {
		logSvc.Errorf("extracting comic from %s: %v\n", cfg.BaseURL, err)
		return err
	}

	date := time.Now().Format("2006-01-02")
	dir := filepath.Join(cfg.DataDir, date)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create archive folder: %w", err)
	}

	fmt.Printf("Saving comic to: %s\n", dir)

	var bar *ui.DownloadBar
	progress := func(written, total int64) {
		if bar == nil && total > 0 {
			bar = ui.NewDownloadBar("comic", total)
		}
		if bar != nil {
			bar.Set(written)
		}
	}

	image, err := scr.Download(ctx, comic.ImageURL, progress)
	if bar != nil {
		bar.Close()
	}
	if err != nil {
		logSvc.Errorf("downloading image %s: %v\n", comic.ImageURL, err)
		return err
	}

	base, err := archive.Write(dir, comic.ImageURL, comic.Title, image)
	if err != nil {
		logSvc.Errorf("archiving comic: %v\n", err)
		return err
	}

	fmt.Printf("Successfully downloaded current comic: %s (%s)\n", base, util.FormatBytes(int64(len(image))))
	fmt.Printf("Title: %s\n", comic.Title)

	return nil
}
