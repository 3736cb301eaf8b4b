package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/selwood/qcref/internal/linkage"
	"github.com/selwood/qcref/internal/storage"
)

func init() {
	rootCmd.AddCommand(linkCmd)
}

var linkCmd = &cobra.Command{
	Use:   "link <risid> <docid>...",
	Short: "Link documents to a reference",
	Long: `Link one or more documents to a reference. Each linked document's
risid and Ref_* attribute slots are overwritten with values derived
from the reference. Documents update independently; a failure on one
does not block the others.

Example:
  qcref link 7 1 2 3`,
	Args: cobra.MinimumNArgs(2),
	RunE: runLink,
}

func runLink(cmd *cobra.Command, args []string) error {
	risid, err := strconv.Atoi(args[0])
	if err != nil {
		exitWithError(ExitError, "invalid reference id %q", args[0])
	}
	docIDs, err := parseDocIDs(args[1:])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	root := mustFindProject()
	db := mustOpenDB(root)
	defer db.Close()

	engine := linkage.NewEngine(db)
	res, err := engine.Link(risid, docIDs)
	if err != nil {
		if errors.Is(err, storage.ErrMissingReference) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	reportResult("Linked", res)
	return nil
}

// reportResult prints a batch link/unlink result and exits non-zero
// when part of the batch failed.
func reportResult(verb string, res linkage.Result) {
	if humanOutput {
		fmt.Printf("%s %d documents\n", verb, len(res.Applied))
		for _, f := range res.Failed {
			fmt.Printf("  document %d failed: %s\n", f.DocID, f.Err)
		}
	} else {
		outputJSON(res)
	}
	if len(res.Failed) > 0 {
		// Applied documents stay applied; signal the partial failure.
		os.Exit(ExitError)
	}
}
