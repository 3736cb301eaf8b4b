package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/selwood/qcref/internal/storage"
)

var listUnlinkedOnly bool

func init() {
	listCmd.Flags().BoolVar(&listUnlinkedOnly, "unlinked", false, "Show only references with no linked documents")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all references",
	Long: `List all references, sorted by their details field.

Examples:
  qcref list
  qcref list --unlinked`,
	RunE: runList,
}

// RefListEntry is one reference in list output.
type RefListEntry struct {
	RISID     int    `json:"risid"`
	Vancouver string `json:"vancouver"`
	Type      string `json:"type_of_ref,omitempty"`
	Year      string `json:"year,omitempty"`
	Authors   string `json:"authors,omitempty"`
	Journal   string `json:"journal,omitempty"`
	Volume    string `json:"volume,omitempty"`
	Issue     string `json:"issue,omitempty"`
	Keywords  string `json:"keywords,omitempty"`
	LinkedTo  []int  `json:"linked_to,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	root := mustFindProject()
	db := mustOpenDB(root)
	defer db.Close()

	docs, refs, err := db.LoadAll()
	if err != nil {
		exitWithError(ExitError, "loading project data: %v", err)
	}

	linked := linkedDocuments(docs)
	entries := make([]RefListEntry, 0, len(refs))
	for _, ref := range refs {
		n := ref.Norm
		if listUnlinkedOnly && len(linked[n.RISID]) > 0 {
			continue
		}
		entries = append(entries, RefListEntry{
			RISID:     n.RISID,
			Vancouver: n.Vancouver,
			Type:      n.TypeOfRef,
			Year:      n.Year,
			Authors:   n.Authors,
			Journal:   n.Journal,
			Volume:    n.Volume,
			Issue:     n.Issue,
			Keywords:  n.Keywords,
			LinkedTo:  linked[n.RISID],
		})
	}

	if humanOutput {
		if len(entries) == 0 {
			fmt.Println("No references in project")
			return nil
		}
		fmt.Printf("%d references:\n\n", len(entries))
		for _, e := range entries {
			fmt.Printf("  %4d  %s\n", e.RISID, truncateString(oneLine(e.Vancouver), VancouverMaxLen))
		}
	} else {
		outputJSON(entries)
	}
	return nil
}

// linkedDocuments joins documents to references by risid.
func linkedDocuments(docs []storage.Document) map[int][]int {
	linked := make(map[int][]int)
	for _, doc := range docs {
		if doc.RISID != nil {
			linked[*doc.RISID] = append(linked[*doc.RISID], doc.ID)
		}
	}
	return linked
}
