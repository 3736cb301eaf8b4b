// Package main provides the qcref CLI entry point.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/selwood/qcref/internal/config"
	"github.com/selwood/qcref/internal/storage"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qcref",
	Short: "RIS reference manager for qualitative research projects",
	Long: `qcref manages bibliographic references for a qualitative-research
project: it imports RIS citation files into a local SQLite store,
derives Vancouver and APA citation strings, and links references onto
source documents so that author/title/year/journal attributes travel
with each document.

All commands output JSON by default for easy scripting; pass --human
for readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getProjectStart returns the directory to search for a project from,
// honoring the QCREF_ROOT environment variable.
func getProjectStart() (string, int) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}

	if root := os.Getenv("QCREF_ROOT"); root != "" {
		cwd = root
	}

	return cwd, 0
}

// mustFindProject locates the project root or exits.
func mustFindProject() string {
	start, exitCode := getProjectStart()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	root, err := config.FindProject(start)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return root
}

// mustOpenDB opens the project database or exits.
func mustOpenDB(root string) *storage.DB {
	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// parseDocIDs converts command arguments to document ids.
func parseDocIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid document id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
