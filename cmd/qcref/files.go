package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var filesUnlinkedOnly bool

func init() {
	filesCmd.Flags().BoolVar(&filesUnlinkedOnly, "unlinked", false, "Show only documents with no linked reference")
	rootCmd.AddCommand(filesCmd)
}

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List source documents and their linked references",
	Long: `List source documents ordered by name, with the id of the linked
reference (if any) and the mirrored Ref_* attribute values.

Examples:
  qcref files
  qcref files --unlinked`,
	RunE: runFiles,
}

// FileEntry is one document in files output.
type FileEntry struct {
	ID         int               `json:"id"`
	Name       string            `json:"name"`
	RISID      *int              `json:"risid"`
	Memo       string            `json:"memo,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func runFiles(cmd *cobra.Command, args []string) error {
	root := mustFindProject()
	db := mustOpenDB(root)
	defer db.Close()

	docs, err := db.Documents()
	if err != nil {
		exitWithError(ExitError, "loading documents: %v", err)
	}

	entries := make([]FileEntry, 0, len(docs))
	for _, doc := range docs {
		if filesUnlinkedOnly && doc.RISID != nil {
			continue
		}
		attrs, err := db.Attributes(doc.ID)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		entries = append(entries, FileEntry{
			ID:         doc.ID,
			Name:       doc.Name,
			RISID:      doc.RISID,
			Memo:       doc.Memo,
			Attributes: attrs,
		})
	}

	if humanOutput {
		if len(entries) == 0 {
			fmt.Println("No documents in project")
			return nil
		}
		fmt.Printf("%d documents:\n\n", len(entries))
		for _, e := range entries {
			ref := "-"
			if e.RISID != nil {
				ref = fmt.Sprintf("%d", *e.RISID)
			}
			fmt.Printf("  %4d  %-6s %s\n", e.ID, ref, e.Name)
		}
	} else {
		outputJSON(entries)
	}
	return nil
}
