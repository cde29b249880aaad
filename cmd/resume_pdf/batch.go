package main

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pdf/internal/pipeline"
	"github.com/jonathan/resume-pdf/internal/resumedata"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Render every resume JSON file in a directory",
	Long: `Loads all *.json resume files from --dir and renders them concurrently,
one layout engine per document. Failed documents are reported without stopping
the rest unless --fail-fast is set.`,
	RunE: runBatch,
}

var (
	batchDir         string
	batchConcurrency int
	batchFailFast    bool
	batchFlags       documentFlags
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of resume JSON files (required)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum documents rendered at once (default from config)")
	batchCmd.Flags().BoolVar(&batchFailFast, "fail-fast", false, "Stop at the first failed document")
	batchFlags.register(batchCmd)

	if err := batchCmd.MarkFlagRequired("dir"); err != nil {
		panic(fmt.Sprintf("failed to mark dir flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	cfg := batchFlags.apply(cmd, *appConfig)
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = batchConcurrency
	}

	files, err := resumedata.List(batchDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no resume JSON files found in %s", batchDir)
	}

	var reqs []pipeline.Request
	loadFailures := 0
	for _, path := range files {
		resume, err := resumedata.LoadFile(path)
		if err != nil {
			if batchFailFast {
				return fmt.Errorf("failed to load resume: %w", err)
			}
			loadFailures++
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", path, err)
			continue
		}
		reqs = append(reqs, pipeline.Request{Resume: resume, Template: cfg.Template, Theme: cfg.Theme})
	}

	b, err := openBackends(ctx, &cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	out, err := openSink(ctx, &cfg, cfg.OutputDir)
	if err != nil {
		return err
	}

	var done atomic.Int32
	total := len(reqs)
	gen, err := newGenerator(&cfg, b.store,
		pipeline.WithSink(out),
		pipeline.WithFailFast(batchFailFast),
		pipeline.WithProgress(func(e pipeline.ProgressEvent) {
			if e.Stage == pipeline.StageWritten || e.Stage == pipeline.StageFailed {
				n := done.Add(1)
				if verbose {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] %s %s\n", n, total, e.Name, e.Stage)
				}
			}
		}),
	)
	if err != nil {
		return err
	}

	results, err := gen.RenderBatch(ctx, reqs)
	for _, r := range results {
		if r.Err != nil {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ %s: %v\n", r.Name, r.Err)
			continue
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s (%d page(s)) -> %s\n", r.Name, r.Pages, r.Location)
	}
	if err != nil {
		return err
	}

	failed := len(pipeline.Failed(results)) + loadFailures
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d of %d resume(s)\n", len(files)-failed, len(files))
	if failed > 0 {
		return fmt.Errorf("%d resume(s) failed", failed)
	}
	return nil
}
