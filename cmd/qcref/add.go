package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/selwood/qcref/internal/pdf"
)

var addMemo string

func init() {
	addCmd.Flags().StringVar(&addMemo, "memo", "", "Memo to store with the document")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Register a source document",
	Long: `Register a source document in the project.

PDF files are scanned for a DOI; when one is found it is reported so
the matching reference can be fetched with "qcref fetch".

Examples:
  qcref add interview1.txt
  qcref add paper.pdf --memo "participant 3"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

// AddResult represents the result of registering a document.
type AddResult struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	DOI  string `json:"doi,omitempty"`
}

func runAdd(cmd *cobra.Command, args []string) error {
	root := mustFindProject()
	db := mustOpenDB(root)
	defer db.Close()

	path := args[0]
	name := filepath.Base(path)

	var doi, fulltext string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		found, err := pdf.ExtractDOI(path)
		if err != nil {
			exitWithError(ExitDataError, "reading PDF: %v", err)
		}
		doi = found
		// Best effort: an image-only PDF stores an empty text.
		fulltext, _ = pdf.ExtractText(path, 0)
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			exitWithError(ExitDataError, "reading file: %v", err)
		}
		fulltext = string(data)
	}

	id, err := db.AddDocument(name, addMemo, fulltext)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	result := AddResult{ID: id, Name: name, DOI: doi}
	if humanOutput {
		fmt.Printf("Added document %d: %s\n", result.ID, result.Name)
		if result.DOI != "" {
			fmt.Printf("Found DOI %s; fetch its reference with: qcref fetch %s\n", result.DOI, result.DOI)
		}
	} else {
		outputJSON(result)
	}
	return nil
}
