package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/selwood/qcref/internal/storage"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <risid> <tag> <value>",
	Short: "Edit one tag of a reference",
	Long: `Set a single RIS tag on a reference. Documents already linked to the
reference keep their current mirrored attributes; re-run "qcref link"
to refresh them.

Examples:
  qcref edit 7 TI "A better title"
  qcref edit 7 PY 2021`,
	Args: cobra.ExactArgs(3),
	RunE: runEdit,
}

// EditResult reports whether the edit changed anything.
type EditResult struct {
	RISID   int    `json:"risid"`
	Tag     string `json:"tag"`
	Changed bool   `json:"changed"`
}

func runEdit(cmd *cobra.Command, args []string) error {
	risid, err := strconv.Atoi(args[0])
	if err != nil {
		exitWithError(ExitError, "invalid reference id %q", args[0])
	}
	tag := strings.ToUpper(args[1])
	if len(tag) != 2 {
		exitWithError(ExitError, "invalid RIS tag %q (tags are two characters)", args[1])
	}

	root := mustFindProject()
	db := mustOpenDB(root)
	defer db.Close()

	changed, err := db.EditField(risid, tag, args[2])
	if err != nil {
		if errors.Is(err, storage.ErrMissingReference) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		if changed {
			fmt.Printf("Reference %d: %s updated\n", risid, tag)
		} else {
			fmt.Printf("Reference %d: %s unchanged\n", risid, tag)
		}
	} else {
		outputJSON(EditResult{RISID: risid, Tag: tag, Changed: changed})
	}
	return nil
}
