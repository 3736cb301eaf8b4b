package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/selwood/qcref/internal/config"
	"github.com/selwood/qcref/internal/crossref"
	"github.com/selwood/qcref/internal/pdf"
	"github.com/selwood/qcref/internal/reference"
	"github.com/selwood/qcref/internal/ris"
)

var (
	fetchPDF    string
	fetchDryRun bool
)

func init() {
	fetchCmd.Flags().StringVar(&fetchPDF, "pdf", "", "Extract the DOI from this PDF instead of passing it directly")
	fetchCmd.Flags().BoolVar(&fetchDryRun, "dry-run", false, "Show the fetched reference without importing it")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [doi]",
	Short: "Fetch a reference from Crossref by DOI",
	Long: `Look up a DOI on Crossref and import the resulting reference.

Set crossref_mailto in .qcref/config.yml (or CROSSREF_MAILTO in the
environment or a .env file) to use Crossref's polite pool.

Examples:
  qcref fetch 10.1038/s41586-020-2649-2
  qcref fetch --pdf paper.pdf
  qcref fetch 10.1000/xyz --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	root := mustFindProject()
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	doi, err := resolveDOI(args)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	client := crossref.NewClient(crossref.WithMailto(cfg.Mailto()))
	work, err := client.Work(context.Background(), doi)
	if err != nil {
		if errors.Is(err, crossref.ErrNotFound) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	db := mustOpenDB(root)
	defer db.Close()

	base, err := db.MaxRISID()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	rec := crossref.ToRecord(work, base+1)

	if !fetchDryRun {
		if err := db.InsertRecords([]ris.Record{rec}); err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	n := reference.Normalize(rec)
	result := ImportedRef{RISID: rec.RISID, Vancouver: n.Vancouver}
	if humanOutput {
		verb := "Fetched"
		if fetchDryRun {
			verb = "Would fetch"
		}
		fmt.Printf("%s reference %d: %s\n", verb, result.RISID, oneLine(result.Vancouver))
	} else {
		outputJSON(result)
	}
	return nil
}

// resolveDOI returns the DOI from the argument or from the --pdf file.
func resolveDOI(args []string) (string, error) {
	if fetchPDF != "" {
		doi, err := pdf.ExtractDOI(fetchPDF)
		if err != nil {
			return "", fmt.Errorf("reading PDF: %w", err)
		}
		if doi == "" {
			return "", fmt.Errorf("no DOI found in %s", fetchPDF)
		}
		return doi, nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("pass a DOI or --pdf")
	}
	return strings.TrimSpace(args[0]), nil
}
