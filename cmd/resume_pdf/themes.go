package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pdf/internal/observability"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Inspect and manage template theme catalogs",
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates and their themes",
	Long:  "Lists every template in the configured store. With --template, the template is resolved first (and created with the built-in catalog when auto-create is on).",
	RunE:  runThemesList,
}

var themesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the style overrides of one theme",
	RunE:  runThemesShow,
}

var themesImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a theme catalog JSON file into a template",
	Long:  "Validates a theme catalog file and stores it as the template's catalog, replacing any existing themes.",
	RunE:  runThemesImport,
}

var (
	themesTemplate string
	themesTheme    string
	themesFile     string
)

func init() {
	themesCmd.PersistentFlags().StringVarP(&themesTemplate, "template", "t", "", "Template name (default from config)")
	themesShowCmd.Flags().StringVar(&themesTheme, "theme", "", "Theme name (default from config)")
	themesImportCmd.Flags().StringVarP(&themesFile, "file", "f", "", "Path to theme catalog JSON file (required)")

	if err := themesImportCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	themesCmd.AddCommand(themesListCmd, themesShowCmd, themesImportCmd)
	rootCmd.AddCommand(themesCmd)
}

func runThemesList(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	cfg := *appConfig

	b, err := openBackends(ctx, &cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	resolver := newResolver(b.store, cfg.AutoCreate)
	if cmd.Flags().Changed("template") {
		if _, err := resolver.Template(ctx, themesTemplate); err != nil {
			return err
		}
	}

	names, err := b.store.ListTemplates(ctx)
	if err != nil {
		return err
	}
	catalogs := make(map[string][]string, len(names))
	for _, name := range names {
		if cmd.Flags().Changed("template") && name != themesTemplate {
			continue
		}
		tmpl, err := b.store.GetTemplate(ctx, name)
		if err != nil {
			return err
		}
		if tmpl == nil {
			continue
		}
		themes := make([]string, 0, len(tmpl.Themes))
		for theme := range tmpl.Themes {
			themes = append(themes, theme)
		}
		sort.Strings(themes)
		catalogs[name] = themes
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintTemplates(catalogs)
	return nil
}

func runThemesShow(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	cfg := *appConfig

	b, err := openBackends(ctx, &cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	template := cfg.Template
	if cmd.Flags().Changed("template") {
		template = themesTemplate
	}
	theme := cfg.Theme
	if cmd.Flags().Changed("theme") {
		theme = themesTheme
	}

	resolved, err := newResolver(b.store, cfg.AutoCreate).ResolveTheme(ctx, template, theme)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintTheme(resolved)
	return nil
}

func runThemesImport(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	cfg := *appConfig

	b, err := openBackends(ctx, &cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	template := cfg.Template
	if cmd.Flags().Changed("template") {
		template = themesTemplate
	}

	tmpl, err := newResolver(b.store, cfg.AutoCreate).ImportCatalog(ctx, template, themesFile)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d theme(s) into template %s\n", len(tmpl.Themes), tmpl.Name)
	return nil
}
