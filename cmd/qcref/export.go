package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/selwood/qcref/internal/ris"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [risid]...",
	Short: "Export references as RIS text",
	Long: `Export references as RIS text, all of them or a selection by id.

Examples:
  qcref export
  qcref export 3 7 -o subset.ris`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	root := mustFindProject()
	db := mustOpenDB(root)
	defer db.Close()

	refs, err := db.References()
	if err != nil {
		exitWithError(ExitError, "loading references: %v", err)
	}

	var records []ris.Record
	if len(args) == 0 {
		for _, ref := range refs {
			records = append(records, ref.Record)
		}
	} else {
		ids, err := parseDocIDs(args)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		for _, id := range ids {
			rec, err := db.GetRecord(id)
			if err != nil {
				exitWithError(ExitDataError, "%v", err)
			}
			records = append(records, rec)
		}
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			exitWithError(ExitError, "creating output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	if err := ris.Write(out, records); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if exportOutput != "" && humanOutput {
		fmt.Printf("Exported %d references to %s\n", len(records), exportOutput)
	}
	return nil
}
