package main

import (
	"github.com/spf13/cobra"

	"github.com/selwood/qcref/internal/linkage"
)

func init() {
	rootCmd.AddCommand(unlinkCmd)
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink <docid>...",
	Short: "Unlink documents from their references",
	Long: `Remove the reference link from one or more documents. The mirrored
Ref_* attribute slots keep their values as historical copies.
Unlinking an already-unlinked document is a no-op.

Example:
  qcref unlink 1 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUnlink,
}

func runUnlink(cmd *cobra.Command, args []string) error {
	docIDs, err := parseDocIDs(args)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	root := mustFindProject()
	db := mustOpenDB(root)
	defer db.Close()

	engine := linkage.NewEngine(db)
	res, err := engine.Unlink(docIDs)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	reportResult("Unlinked", res)
	return nil
}
