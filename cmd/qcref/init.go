package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/selwood/qcref/internal/config"
	"github.com/selwood/qcref/internal/storage"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new qcref project",
	Long: `Initialize a new qcref project in the current directory.

Creates:
  .qcref/
  ├── config.yml    # Default config
  └── project.db    # Empty SQLite store`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getProjectStart()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsProject(root) {
		exitWithError(ExitError, "directory already contains a qcref project")
	}

	if err := os.MkdirAll(config.QcrefPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .qcref directory: %v", err)
	}

	cfg := &config.Config{}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "creating database: %v", err)
	}
	db.Close()

	if humanOutput {
		fmt.Printf("Initialized qcref project in %s\n", config.QcrefPath(root))
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: config.QcrefPath(root)})
	}
	return nil
}
