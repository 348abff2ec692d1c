// Package exportcsv handles the CSV export command
package exportcsv

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"garagelog/cmd/common"
	"garagelog/cmd/root"
	"garagelog/internal/dateutils"
	"garagelog/internal/exporter"
	"garagelog/internal/models"
	"garagelog/internal/validator"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries to a CSV file",
	Long: `Export fuel, expense or income entries to a CSV file using the same
column layout the import command reads, so exported files re-import
losslessly.

Example:
  garagelog export -k expense -o expenses.csv --vehicle "My Car" --from 2024-01-01`,
	Run: exportFunc,
}

var (
	vehicleName string
	fromDate    string
	toDate      string
	category    string
)

func init() {
	Cmd.Flags().StringVar(&vehicleName, "vehicle", "", "Only export entries for this vehicle name")
	Cmd.Flags().StringVar(&fromDate, "from", "", "Only export entries on or after this date (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&toDate, "to", "", "Only export entries on or before this date (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&category, "category", "", "Only export expense/income entries with this category")
}

func exportFunc(cmd *cobra.Command, args []string) {
	kind, err := models.ParseEntryKind(root.SharedFlags.Kind)
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
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

	ctx := cmd.Context()
	vehicles, err := st.ListVehicles(ctx)
	if err != nil {
		root.Log.Fatalf("Error listing vehicles: %v", err)
	}

	filter, err := buildFilter(vehicles)
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}

	entries, err := st.ListEntries(ctx, kind)
	if err != nil {
		root.Log.Fatalf("Error listing entries: %v", err)
	}

	if root.SharedFlags.Output == "" {
		if err := exporter.Export(os.Stdout, kind, entries, vehicles, filter); err != nil {
			root.Log.Fatalf("Export failed: %v", err)
		}
		return
	}

	if err := exporter.ExportToFile(root.SharedFlags.Output, kind, entries, vehicles, filter); err != nil {
		root.Log.Fatalf("Export failed: %v", err)
	}
	root.Log.Infof("Export written to %s", root.SharedFlags.Output)
}

func buildFilter(vehicles []models.Vehicle) (exporter.Filter, error) {
	var filter exporter.Filter
	filter.Category = category

	if vehicleName != "" {
		id, ok := validator.ResolveVehicle(vehicleName, vehicles)
		if !ok {
			return filter, fmt.Errorf("vehicle not found: %s", vehicleName)
		}
		filter.VehicleID = id
	}

	var err error
	if fromDate != "" {
		if filter.From, err = dateutils.ParseISODate(fromDate); err != nil {
			return filter, err
		}
	}
	if toDate != "" {
		if filter.To, err = dateutils.ParseISODate(toDate); err != nil {
			return filter, err
		}
	}
	return filter, nil
}
