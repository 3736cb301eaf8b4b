package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/selwood/qcref/internal/clipboard"
	"github.com/selwood/qcref/internal/reference"
	"github.com/selwood/qcref/internal/ris"
	"github.com/selwood/qcref/internal/storage"
)

var showCopy string

func init() {
	showCmd.Flags().StringVar(&showCopy, "copy", "", "Copy a citation to the clipboard (vancouver or apa)")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <risid>",
	Short: "Show one reference in full",
	Long: `Show one reference: its raw RIS tags and the derived Vancouver and
APA citation strings.

Example:
  qcref show 7`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// ShowResult is the full view of one reference.
type ShowResult struct {
	RISID     int               `json:"risid"`
	Tags      map[string]string `json:"tags"`
	Vancouver string            `json:"vancouver"`
	APA       string            `json:"apa"`
	Details   string            `json:"details"`
}

func runShow(cmd *cobra.Command, args []string) error {
	risid, err := strconv.Atoi(args[0])
	if err != nil {
		exitWithError(ExitError, "invalid reference id %q", args[0])
	}

	root := mustFindProject()
	db := mustOpenDB(root)
	defer db.Close()

	rec, err := db.GetRecord(risid)
	if err != nil {
		if errors.Is(err, storage.ErrMissingReference) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	n := reference.Normalize(rec)
	result := ShowResult{
		RISID:     n.RISID,
		Tags:      rec.Tags,
		Vancouver: n.Vancouver,
		APA:       n.APA,
		Details:   n.Details,
	}

	switch showCopy {
	case "":
	case "vancouver":
		if err := clipboard.CopyCitation(result.Vancouver); err != nil {
			exitWithError(ExitError, "copying citation: %v", err)
		}
	case "apa":
		if err := clipboard.CopyCitation(result.APA); err != nil {
			exitWithError(ExitError, "copying citation: %v", err)
		}
	default:
		exitWithError(ExitError, "unknown citation style %q (want vancouver or apa)", showCopy)
	}

	if humanOutput {
		fmt.Printf("Reference %d\n\n", result.RISID)
		for _, tag := range rec.TagList() {
			name := ris.TagName(tag)
			if name != "" {
				fmt.Printf("  %s  %-20s %s\n", tag, name, rec.Tags[tag])
			} else {
				fmt.Printf("  %s  %-20s %s\n", tag, "", rec.Tags[tag])
			}
		}
		fmt.Printf("\nVancouver: %s\n", oneLine(result.Vancouver))
		fmt.Printf("APA:       %s\n", oneLine(result.APA))
	} else {
		outputJSON(result)
	}
	return nil
}
