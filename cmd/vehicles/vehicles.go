// Package vehicles handles the vehicle roster commands
package vehicles

import (
	"fmt"

	"github.com/spf13/cobra"

	"garagelog/cmd/common"
	"garagelog/cmd/root"
)

// Cmd represents the vehicles command
var Cmd = &cobra.Command{
	Use:   "vehicles",
	Short: "Manage the vehicle roster",
	Long: `List and add vehicles. Imported CSV rows reference vehicles by name,
so a vehicle must exist before entries can be imported for it.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all vehicles",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a vehicle",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	st, err := common.OpenStore(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Error opening store: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			root.Log.Warnf("Failed to close store: %v", err)
		}
	}()

	vehicles, err := st.ListVehicles(cmd.Context())
	if err != nil {
		root.Log.Fatalf("Error listing vehicles: %v", err)
	}

	if len(vehicles) == 0 {
		fmt.Println("No vehicles yet. Add one with: garagelog vehicles add <name>")
		return
	}
	for _, v := range vehicles {
		fmt.Printf("%s\t%s\n", v.ID, v.Name)
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	st, err := common.OpenStore(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Error opening store: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			root.Log.Warnf("Failed to close store: %v", err)
		}
	}()

	v, err := st.CreateVehicle(cmd.Context(), args[0])
	if err != nil {
		root.Log.Fatalf("Error creating vehicle: %v", err)
	}
	fmt.Printf("Created vehicle %q with id %s\n", v.Name, v.ID)
}
