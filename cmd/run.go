package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brogergvhs/evangelio/internal/chapters"
	"github.com/brogergvhs/evangelio/internal/config"
	"github.com/brogergvhs/evangelio/internal/pipeline"
	"github.com/brogergvhs/evangelio/internal/sources"
	"github.com/brogergvhs/evangelio/internal/ui"
	"github.com/brogergvhs/evangelio/internal/util"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// runSource downloads every chapter from the named source, or from the
// configured one when name is empty.
func runSource(cmd *cobra.Command, name string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Source:       name,
		Output:       flagOutput,
	})
	if err != nil {
		return err
	}

	profile, err := sources.Lookup(cfg.Source)
	if err != nil {
		return err
	}
	cfg.Apply(&profile)

	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Debugf("Config file: %s\n", usedPath)

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          profile.Timeout,
		Headers:          profile.Headers,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      logSvc,
	})
	if err != nil {
		return err
	}

	ctx, stop := util.InterruptContext(cmd.Context())
	defer stop()

	fmt.Printf("Descargando el Evangelio de Juan desde %s...\n", profile.Name)

	var (
		pm       *ui.MPBProgressManager
		progress ui.Progress = ui.NopProgress{}
	)
	if !cfg.NoProgress && !cfg.Debug && isatty.IsTerminal(os.Stdout.Fd()) {
		pm = ui.NewProgressManager(os.Stdout)
		progress = pm.Register("Juan")
	}

	out := filepath.Join(cfg.Output, profile.FileName)
	pipe := pipeline.New(profile, pipeline.NewFetcher(client, logSvc), logSvc, progress)

	sum, err := pipe.Run(ctx, chapters.All(profile.URLTemplate), out)
	if pm != nil {
		pm.Close()
	}

	if sum.Cancelled {
		fmt.Println("\n\nDescarga cancelada por el usuario.")
	}
	if errors.Is(err, pipeline.ErrCancelled) {
		fmt.Printf("Progreso parcial guardado en: %s\n", out)
		return nil
	}
	if err != nil {
		return err
	}

	sum.Report(os.Stdout)
	return nil
}
