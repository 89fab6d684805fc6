package services

import (
	"errors"
	"testing"

	"github.com/nikhilpktcr/dietPlanner/models"
)

// Consumption entries may not point at soft-deleted catalog rows; those read
// as not-found, consistent with the default listing filter. A meal that is
// merely off the menu ("in active") stays loggable, since the user may well
// have eaten it.
func TestLoggableMeal(t *testing.T) {
	cases := []struct {
		status  string
		wantErr error
	}{
		{models.MealStatusActive, nil},
		{models.MealStatusInActive, nil},
		{models.MealStatusDeleted, ErrMealNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			meal := &models.Meal{Title: "oats bowl", Status: tc.status}
			err := loggableMeal(meal)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("loggableMeal(status=%q) = %v, want %v", tc.status, err, tc.wantErr)
			}
		})
	}
}
