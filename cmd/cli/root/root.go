package root

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nestimate/nestimate/internal/config"
	"github.com/nestimate/nestimate/internal/db"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:   "nestimate",
	Short: "Nestimate operator CLI",
	Long:  "Operator command line for the Nestimate property price portal. Talks directly to the database.",
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Optional helper to return the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}

// OpenDB connects using the same environment configuration as the
// server. The caller closes the handle.
func OpenDB() (*sql.DB, error) {
	_ = godotenv.Load()
	cfg := config.Load()
	return db.Connect(cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPass)
}
