package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pdf/internal/resumedata"
	"github.com/jonathan/resume-pdf/internal/schemas"
	"github.com/jonathan/resume-pdf/internal/templates"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume or theme catalog JSON file",
	Long: `Checks a resume file against the resume schema and record rules (required
fields, "Jan 2006" dates), or a theme catalog against the catalog schema, colors and core font names.
With --schema, the file must also satisfy an extra JSON Schema, e.g. house rules for resumes.`,
	RunE: runValidate,
}

var (
	validateInput  string
	validateKind   string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to JSON file (required)")
	validateCmd.Flags().StringVar(&validateKind, "kind", "resume", "File kind: resume or catalog")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Extra JSON Schema file the input must also satisfy")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if validateSchema != "" {
		data, err := os.ReadFile(validateInput)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", validateInput, err)
		}
		if err := schemas.ValidateWithSchemaFile(validateSchema, data); err != nil {
			return fmt.Errorf("%s does not satisfy %s: %w", validateInput, validateSchema, err)
		}
	}

	switch validateKind {
	case "resume":
		resume, err := resumedata.LoadFile(validateInput)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid resume for %s (%d experience, %d education, %d skills)\n",
			validateInput, resume.Name, len(resume.Experience), len(resume.Education), len(resume.Skills))
	case "catalog":
		catalog, err := templates.LoadCatalog(validateInput)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid theme catalog (%d themes)\n", validateInput, len(catalog))
	default:
		return fmt.Errorf("unknown kind %q (expected resume or catalog)", validateKind)
	}
	return nil
}
