package models

// Property is a record submitted through the property form. Rows are
// owned by exactly one user and removed with them (FK cascade).
// There are no edit or delete endpoints; rows are insert-only.
type Property struct {
	ID      int     `json:"id"`
	City    string  `json:"city"`
	Pincode string  `json:"pincode"`
	Survey  string  `json:"survey"`
	Price   float64 `json:"price"`
	Area    float64 `json:"area"`
	UserID  int     `json:"user_id"`
}

// PropertyWithOwner is a property row joined with its owner's
// username, as listed on the admin panel.
type PropertyWithOwner struct {
	Property
	OwnerUsername string `json:"owner_username"`
}
