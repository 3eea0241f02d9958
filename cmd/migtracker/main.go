// Package main provides the CLI entry point for migtracker.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fabricops/migtracker/pkg/tracker"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	baseDate   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "migtracker",
		Short: "Generate the Fabric capacity migration tracker workbook",
		Long: `migtracker generates a pre-formatted multi-sheet Excel workbook for
tracking a Microsoft Fabric capacity migration (e.g., West US → East US 2):
inventory, phase plan, risk register, RACI matrix, issue tracker, and
validation checklist.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", tracker.DefaultOutput, "Output file path")
	rootCmd.Flags().StringVar(&baseDate, "base-date", "", "Phase schedule anchor date (YYYY-MM-DD, default: today)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := tracker.DefaultOptions()
	opts.Output = outputPath

	if baseDate != "" {
		t, err := time.Parse("2006-01-02", baseDate)
		if err != nil {
			return fmt.Errorf("invalid base date %q (must be YYYY-MM-DD)", baseDate)
		}
		opts.BaseDate = t
	}

	if err := tracker.Build(opts); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	fmt.Printf("✅ Migration tracker generated: %s\n", opts.Output)
	fmt.Printf("   Sheets: %s\n", strings.Join(tracker.SheetNames(), ", "))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Run the inventory notebook to generate CSV exports")
	fmt.Println("  2. Paste CSV data into the 'Migration Inventory' sheet")
	fmt.Println("  3. Fill in owners, dates, and external dependencies")
	fmt.Println("  4. Share with stakeholders for review")
	return nil
}
