package users

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nestimate/nestimate/cmd/cli/output"
	"github.com/nestimate/nestimate/cmd/cli/root"
	"github.com/nestimate/nestimate/internal/auth"
	"github.com/nestimate/nestimate/internal/repo"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage registered users",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE:  runList,
	}

	createCmd := &cobra.Command{
		Use:   "create <username> <password>",
		Short: "Create a user",
		Long:  "Create a user directly in the database. Use this to bootstrap the admin account.",
		Args:  cobra.ExactArgs(2),
		RunE:  runCreate,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user and all of their properties",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	usersCmd.AddCommand(listCmd, createCmd, deleteCmd)
	root.GetRoot().AddCommand(usersCmd)
}

// ==========================
// List Users
// ==========================
func runList(cmd *cobra.Command, args []string) error {
	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	users, err := repo.NewUserRepo(db).List(context.Background())
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, []interface{}{u.ID, u.Username})
	}
	output.RenderTable([]string{"ID", "Username"}, rows)
	return nil
}

// ==========================
// Create User
// ==========================
func runCreate(cmd *cobra.Command, args []string) error {
	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	// No failure delay here; the CLI is an operator tool, not a login surface.
	svc := auth.NewService(repo.NewUserRepo(db), 0)
	user, err := svc.Register(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("Created user %d (%s).\n", user.ID, user.Username)
	return nil
}

// ==========================
// Delete User
// ==========================
func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id: %s", args[0])
	}

	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.NewUserRepo(db).Delete(context.Background(), id); err != nil {
		return err
	}

	fmt.Printf("Deleted user %d. Their properties were removed with them.\n", id)
	return nil
}
