package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pdf/internal/compose"
	"github.com/jonathan/resume-pdf/internal/config"
	"github.com/jonathan/resume-pdf/internal/pipeline"
	"github.com/jonathan/resume-pdf/internal/templates"
)

// documentFlags are the flags shared by render and batch
type documentFlags struct {
	template     string
	theme        string
	pageSize     string
	columns      int
	skillsMode   string
	skillColumns int
	noBullets    bool
	noLines      bool
	noAutoCreate bool
	outDir       string
}

func (f *documentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "Template name (default from config)")
	cmd.Flags().StringVar(&f.theme, "theme", "", "Theme name within the template (default from config)")
	cmd.Flags().StringVar(&f.pageSize, "page-size", "", "Page size: letter or a4")
	cmd.Flags().IntVar(&f.columns, "columns", 0, "Number of columns: 1 or 2")
	cmd.Flags().StringVar(&f.skillsMode, "skills-mode", "", "Skills rendering: bullets or table")
	cmd.Flags().IntVar(&f.skillColumns, "skill-columns", 0, "Columns of the skills table")
	cmd.Flags().BoolVar(&f.noBullets, "no-bullets", false, "Use descriptions instead of achievement bullets")
	cmd.Flags().BoolVar(&f.noLines, "no-lines", false, "Omit the rule under each section")
	cmd.Flags().BoolVar(&f.noAutoCreate, "no-auto-create", false, "Fail when the template is not registered")
	cmd.Flags().StringVarP(&f.outDir, "out", "o", "", "Output directory for the file sink (default from config)")
}

// apply returns cfg with the flags the user set layered on top
func (f *documentFlags) apply(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("template") {
		cfg.Template = f.template
	}
	if flags.Changed("theme") {
		cfg.Theme = f.theme
	}
	if flags.Changed("page-size") {
		cfg.PageSize = f.pageSize
	}
	if flags.Changed("columns") {
		cfg.Columns = f.columns
	}
	if flags.Changed("skills-mode") {
		cfg.SkillsMode = f.skillsMode
	}
	if flags.Changed("skill-columns") {
		cfg.SkillColumns = f.skillColumns
	}
	if f.noBullets {
		cfg.BulletPoints = false
	}
	if f.noLines {
		cfg.LineAfterSections = false
	}
	if f.noAutoCreate {
		cfg.AutoCreate = false
	}
	if flags.Changed("out") {
		cfg.OutputDir = f.outDir
	}
	return cfg.MergeWithDefaults(config.Default())
}

func newResolver(store templates.Store, autoCreate bool) *templates.Resolver {
	return templates.NewResolver(store,
		templates.WithAutoCreate(autoCreate),
		templates.WithLogger(logger),
	)
}

// newGenerator builds a generator from the effective configuration
func newGenerator(cfg *config.Config, store templates.Store, opts ...pipeline.Option) (*pipeline.Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pageLayout, err := pipelineLayout(cfg)
	if err != nil {
		return nil, err
	}
	mode, err := cfg.ParsedSkillsMode()
	if err != nil {
		return nil, err
	}

	resolver := newResolver(store, cfg.AutoCreate)

	base := []pipeline.Option{
		pipeline.WithLayout(pageLayout),
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithLogger(logger),
		pipeline.WithComposeOptions(
			compose.WithBulletPoints(cfg.BulletPoints),
			compose.WithSkillsMode(mode),
			compose.WithSkillColumns(cfg.SkillColumns),
			compose.WithLineAfterSections(cfg.LineAfterSections),
		),
	}
	return pipeline.NewGenerator(resolver, append(base, opts...)...), nil
}
