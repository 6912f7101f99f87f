package predict

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nestimate/nestimate/cmd/cli/root"
	"github.com/nestimate/nestimate/internal/config"
	"github.com/nestimate/nestimate/internal/predictor"
)

var input predictor.Input

// ==========================
// CLI Command Init
// ==========================
func init() {
	predictCmd := &cobra.Command{
		Use:   "predict",
		Short: "Run one price estimate against the trained model",
		Long:  "Load the model artifact configured via MODEL_PATH / MODEL_COLUMNS_PATH and print one estimate.",
		RunE:  runPredict,
	}

	predictCmd.Flags().StringVar(&input.AreaType, "area-type", "", "area type category")
	predictCmd.Flags().StringVar(&input.Location, "location", "", "location category")
	predictCmd.Flags().Float64Var(&input.Size, "size", 0, "size in BHK")
	predictCmd.Flags().Float64Var(&input.TotalSqft, "total-sqft", 0, "total square feet")
	predictCmd.Flags().Float64Var(&input.Bath, "bath", 0, "number of bathrooms")
	predictCmd.Flags().Float64Var(&input.Balcony, "balcony", 0, "number of balconies")

	root.GetRoot().AddCommand(predictCmd)
}

// ==========================
// Predict
// ==========================
func runPredict(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg := config.Load()

	artifact, err := predictor.Load(cfg.ModelPath, cfg.ModelColumnsPath)
	if err != nil {
		return err
	}

	fmt.Printf("Estimated price: %.2f\n", artifact.Predict(input))
	return nil
}
