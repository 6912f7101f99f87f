// Package property stores property form submissions for
// authenticated users.
package property

import (
	"context"
	"strconv"
	"strings"

	"github.com/nestimate/nestimate/internal/models"
	"github.com/nestimate/nestimate/internal/repo"
	"github.com/nestimate/nestimate/internal/shared"
)

type Service struct {
	Props *repo.PropertyRepo
}

func NewService(props *repo.PropertyRepo) *Service {
	return &Service{Props: props}
}

// Submit parses the raw form values and inserts one property row
// owned by userID. Price and area must parse as positive numbers;
// a parse failure returns before any store access.
func (s *Service) Submit(ctx context.Context, userID int, city, pincode, survey, price, area string) (*models.Property, error) {
	priceVal, err := parsePositive(price)
	if err != nil {
		return nil, err
	}
	areaVal, err := parsePositive(area)
	if err != nil {
		return nil, err
	}

	return s.Props.Create(ctx, city, pincode, survey, priceVal, areaVal, userID)
}

func parsePositive(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, shared.ErrNotPositiveNumber
	}
	return v, nil
}
