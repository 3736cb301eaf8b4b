package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/selwood/qcref/internal/reference"
	"github.com/selwood/qcref/internal/ris"
)

var importDryRun bool

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Show what would be imported without writing")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import references from a RIS file",
	Long: `Import RIS-formatted references from a .ris or .txt file.

Each imported reference is assigned the next free reference id.

Examples:
  qcref import refs.ris
  qcref import refs.ris --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResult represents the result of an import operation.
type ImportResult struct {
	Imported int           `json:"imported"`
	DryRun   bool          `json:"dry_run,omitempty"`
	Refs     []ImportedRef `json:"refs"`
}

// ImportedRef summarizes one imported reference.
type ImportedRef struct {
	RISID     int    `json:"risid"`
	Vancouver string `json:"vancouver"`
}

func runImport(cmd *cobra.Command, args []string) error {
	root := mustFindProject()

	f, err := os.Open(args[0])
	if err != nil {
		exitWithError(ExitError, "opening file: %v", err)
	}
	defer f.Close()

	db := mustOpenDB(root)
	defer db.Close()

	base, err := db.MaxRISID()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	records, err := ris.Parse(f, base)
	if err != nil {
		exitWithError(ExitDataError, "parsing RIS file: %v", err)
	}
	if len(records) == 0 {
		exitWithError(ExitDataError, "no references found in %s", args[0])
	}

	if !importDryRun {
		if err := db.InsertRecords(records); err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	result := ImportResult{Imported: len(records), DryRun: importDryRun}
	for _, rec := range records {
		result.Refs = append(result.Refs, ImportedRef{
			RISID:     rec.RISID,
			Vancouver: reference.Normalize(rec).Vancouver,
		})
	}

	if humanOutput {
		verb := "Imported"
		if importDryRun {
			verb = "Would import"
		}
		fmt.Printf("%s %d references:\n", verb, result.Imported)
		for _, r := range result.Refs {
			fmt.Printf("  %4d  %s\n", r.RISID, truncateString(r.Vancouver, VancouverMaxLen))
		}
	} else {
		outputJSON(result)
	}
	return nil
}
