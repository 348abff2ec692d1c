// Package importcsv handles the CSV import command
package importcsv

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"garagelog/cmd/common"
	"garagelog/cmd/root"
	"garagelog/internal/fileutils"
	"garagelog/internal/importer"
	"garagelog/internal/logging"
	"garagelog/internal/models"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import entries from a CSV file",
	Long: `Import fuel, expense or income entries from a CSV file.

Each row is validated independently; rows with problems are reported and
skipped while the rest of the batch is submitted. Rows closely matching an
already stored entry produce a warning but are imported anyway.

Example:
  garagelog import -k fuel -i fillups.csv`,
	Run: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) {
	kind, err := models.ParseEntryKind(root.SharedFlags.Kind)
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("An input file is required (-i)")
	}

	raw, err := fileutils.ReadTextFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	st, err := common.OpenStore(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Error opening store: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			root.Log.Warnf("Failed to close store: %v", err)
		}
	}()

	pipeline := &importer.Pipeline{
		Kind:     kind,
		Roster:   st.ListVehicles,
		Existing: st.ListEntries,
		Submit: func(ctx context.Context, entry models.Entry) error {
			return st.CreateEntry(ctx, entry)
		},
		Progress: func(p importer.Progress) {
			root.Log.Debugf("Import progress: %d%% (%s)", p.Percent, p.Label)
		},
		Defaults: common.BuildDefaults(root.Cfg, root.Log),
		Logger:   logging.NewLogrusAdapterFromLogger(root.Log),
	}

	report, err := pipeline.Run(cmd.Context(), raw)
	if err != nil {
		root.Log.Fatalf("Import failed: %v", err)
	}

	printReport(report)
}

func printReport(report importer.Report) {
	if report.Malformed > 0 {
		fmt.Printf("Skipped %d malformed line(s)\n", report.Malformed)
	}
	for _, e := range report.Errors {
		fmt.Println(e.String())
	}
	for _, w := range report.Warnings {
		fmt.Println(w.String())
	}

	rejected := report.Parsed - len(report.Candidates)
	fmt.Printf("Imported %d of %d row(s), %d failed, %d rejected by validation\n",
		report.Result.Success, report.Parsed, report.Result.Failed, rejected)
	for _, msg := range report.Result.Errors {
		fmt.Println(msg)
	}
}
