package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pdf/internal/observability"
	"github.com/jonathan/resume-pdf/internal/pipeline"
	"github.com/jonathan/resume-pdf/internal/resumedata"
	"github.com/jonathan/resume-pdf/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one resume into a PDF document",
	Long: `Loads a resume record from a JSON file (--in) or from PostgreSQL (--resume-id),
resolves the theme from its template and writes the PDF to the configured sink.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRender,
}

var (
	renderInput    string
	renderResumeID string
	renderName     string
	renderFlags    documentFlags
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to resume JSON file")
	renderCmd.Flags().StringVar(&renderResumeID, "resume-id", "", "Resume UUID to load from PostgreSQL (requires database_url)")
	renderCmd.Flags().StringVar(&renderName, "name", "", "Output file name (default {name}_resume.pdf)")
	renderFlags.register(renderCmd)

	renderCmd.MarkFlagsMutuallyExclusive("in", "resume-id")
	renderCmd.MarkFlagsOneRequired("in", "resume-id")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	cfg := renderFlags.apply(cmd, *appConfig)

	b, err := openBackends(ctx, &cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	resume, err := loadResume(ctx, b)
	if err != nil {
		return err
	}

	out, err := openSink(ctx, &cfg, cfg.OutputDir)
	if err != nil {
		return err
	}
	gen, err := newGenerator(&cfg, b.store, pipeline.WithSink(out))
	if err != nil {
		return err
	}

	res, err := gen.Render(ctx, pipeline.Request{
		Resume:   resume,
		Template: cfg.Template,
		Theme:    cfg.Theme,
		Name:     renderName,
	})
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	if verbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintOutline(res.Outline, res.Document)
		printer.PrintDocument(res.Document, len(res.PDF))
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully rendered %d page(s)\n", res.Pages)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", res.Location)
	return nil
}

func loadResume(ctx context.Context, b *backends) (*types.ResumeData, error) {
	if renderResumeID == "" {
		resume, err := resumedata.LoadFile(renderInput)
		if err != nil {
			return nil, fmt.Errorf("failed to load resume: %w", err)
		}
		return resume, nil
	}

	if b.database == nil {
		return nil, fmt.Errorf("--resume-id requires database_url")
	}
	id, err := uuid.Parse(renderResumeID)
	if err != nil {
		return nil, fmt.Errorf("invalid resume id %q: %w", renderResumeID, err)
	}
	resume, err := b.database.GetResumeData(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	if resume == nil {
		return nil, fmt.Errorf("resume not found: %s", id)
	}
	return resume, nil
}
