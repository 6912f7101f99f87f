package properties

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nestimate/nestimate/cmd/cli/output"
	"github.com/nestimate/nestimate/cmd/cli/root"
	"github.com/nestimate/nestimate/internal/repo"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	propertiesCmd := &cobra.Command{
		Use:   "properties",
		Short: "Inspect submitted properties",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all properties with their owners",
		RunE:  runList,
	}

	propertiesCmd.AddCommand(listCmd)
	root.GetRoot().AddCommand(propertiesCmd)
}

// ==========================
// List Properties
// ==========================
func runList(cmd *cobra.Command, args []string) error {
	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	props, err := repo.NewPropertyRepo(db).ListWithOwners(context.Background())
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(props))
	for _, p := range props {
		rows = append(rows, []interface{}{
			p.ID, p.City, p.Pincode, p.Survey,
			fmt.Sprintf("%.2f", p.Price), fmt.Sprintf("%.2f", p.Area),
			p.OwnerUsername,
		})
	}
	output.RenderTable([]string{"ID", "City", "Pincode", "Survey", "Price", "Area", "Owner"}, rows)
	return nil
}
