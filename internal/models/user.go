package models

// AdminUsername is the literal username granted access to the admin
// panel. There is no roles table.
const AdminUsername = "admin"

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
