package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/selwood/qcref/internal/linkage"
	"github.com/selwood/qcref/internal/storage"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <risid>",
	Short: "Delete a reference",
	Long: `Delete a reference. Every document linked to it is unlinked first;
their mirrored Ref_* attribute slots keep their values.

Example:
  qcref delete 7`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	risid, err := strconv.Atoi(args[0])
	if err != nil {
		exitWithError(ExitError, "invalid reference id %q", args[0])
	}

	root := mustFindProject()
	db := mustOpenDB(root)
	defer db.Close()

	engine := linkage.NewEngine(db)
	if err := engine.Delete(risid); err != nil {
		if errors.Is(err, storage.ErrMissingReference) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Deleted reference %d\n", risid)
	} else {
		outputJSON(StatusResponse{Status: "deleted"})
	}
	return nil
}
