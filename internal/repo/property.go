package repo

import (
	"context"
	"database/sql"

	"github.com/nestimate/nestimate/internal/models"
)

// ==========================
// PropertyRepo
// ==========================
type PropertyRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewPropertyRepo(db *sql.DB) *PropertyRepo {
	return &PropertyRepo{DB: db}
}

// ==========================
// Create Property
// ==========================
func (r *PropertyRepo) Create(ctx context.Context, city, pincode, survey string, price, area float64, userID int) (*models.Property, error) {
	query := `
		INSERT INTO properties (city, pincode, survey, price, area, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	p := &models.Property{
		City:    city,
		Pincode: pincode,
		Survey:  survey,
		Price:   price,
		Area:    area,
		UserID:  userID,
	}

	if err := r.DB.QueryRowContext(ctx, query, city, pincode, survey, price, area, userID).Scan(&p.ID); err != nil {
		return nil, err
	}

	return p, nil
}

// ==========================
// List By User
// ==========================
func (r *PropertyRepo) ListByUser(ctx context.Context, userID int) ([]models.Property, error) {
	query := `
		SELECT id, city, pincode, survey, price, area, user_id
		FROM properties
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var props []models.Property
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(&p.ID, &p.City, &p.Pincode, &p.Survey, &p.Price, &p.Area, &p.UserID); err != nil {
			return nil, err
		}
		props = append(props, p)
	}

	return props, rows.Err()
}

// ==========================
// List With Owners (admin panel)
// ==========================
func (r *PropertyRepo) ListWithOwners(ctx context.Context) ([]models.PropertyWithOwner, error) {
	query := `
		SELECT properties.id, city, pincode, survey, price, area, users.username
		FROM properties
		JOIN users ON properties.user_id = users.id
		ORDER BY properties.id
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var props []models.PropertyWithOwner
	for rows.Next() {
		var p models.PropertyWithOwner
		if err := rows.Scan(&p.ID, &p.City, &p.Pincode, &p.Survey, &p.Price, &p.Area, &p.OwnerUsername); err != nil {
			return nil, err
		}
		props = append(props, p)
	}

	return props, rows.Err()
}
