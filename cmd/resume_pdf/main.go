// Package main implements the resume_pdf CLI for laying out resume records as PDF documents.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_pdf",
	Short: "Render structured resume records into themed PDF documents",
	Long: `resume_pdf lays out resume records (JSON files or PostgreSQL rows) on a
one- or two-column page grid and writes PDF documents to a directory or an S3 bucket.
Themes come from named templates kept in memory, Redis or PostgreSQL.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
