package services

import (
	"testing"

	"github.com/nikhilpktcr/dietPlanner/models"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

// A partial update must only touch the fields it carries, and must report a
// body change whenever height or weight was present in the input.
func TestApplyProfileUpdateMerge(t *testing.T) {
	base := func() models.UserProfile {
		return models.UserProfile{
			UserID:             3,
			HeightCm:           170,
			WeightKg:           70,
			DietaryPreferences: "veg",
			ActivityLevel:      "moderate",
			HealthGoals:        "maintenance",
		}
	}

	cases := []struct {
		name            string
		in              UpdateProfileInput
		wantHeightCm    float64
		wantWeightKg    float64
		wantBodyChanged bool
	}{
		{"height only", UpdateProfileInput{HeightCm: f64(180)}, 180, 70, true},
		{"weight only", UpdateProfileInput{WeightKg: f64(82)}, 170, 82, true},
		{"both", UpdateProfileInput{HeightCm: f64(165), WeightKg: f64(60)}, 165, 60, true},
		{"same value still counts", UpdateProfileInput{WeightKg: f64(70)}, 170, 70, true},
		{"preferences only", UpdateProfileInput{DietaryPreferences: str("non veg")}, 170, 70, false},
		{"empty input", UpdateProfileInput{}, 170, 70, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := base()
			bodyChanged, err := applyProfileUpdate(&profile, tc.in)
			if err != nil {
				t.Fatalf("applyProfileUpdate: %v", err)
			}
			if bodyChanged != tc.wantBodyChanged {
				t.Errorf("bodyChanged = %v, want %v", bodyChanged, tc.wantBodyChanged)
			}
			if profile.HeightCm != tc.wantHeightCm {
				t.Errorf("HeightCm = %v, want %v", profile.HeightCm, tc.wantHeightCm)
			}
			if profile.WeightKg != tc.wantWeightKg {
				t.Errorf("WeightKg = %v, want %v", profile.WeightKg, tc.wantWeightKg)
			}
		})
	}
}

// A height-only update appends a log built from the merged pair: the stored
// weight carries over, the new height replaces the old, and bmi/category come
// from that combination. 70kg at 180cm → 70/1.8² = 21.6, normal.
func TestProfileUpdateLogUsesMergedValues(t *testing.T) {
	profile := models.UserProfile{UserID: 3, HeightCm: 170, WeightKg: 70}

	bodyChanged, err := applyProfileUpdate(&profile, UpdateProfileInput{HeightCm: f64(180)})
	if err != nil {
		t.Fatalf("applyProfileUpdate: %v", err)
	}
	if !bodyChanged {
		t.Fatal("height change must trigger a log append")
	}

	logRow := newBMILog(profile.UserID, profile.WeightKg, profile.HeightCm)
	if logRow.WeightKg != 70 {
		t.Errorf("log WeightKg = %v, want the stored 70", logRow.WeightKg)
	}
	if logRow.HeightCm != 180 {
		t.Errorf("log HeightCm = %v, want the updated 180", logRow.HeightCm)
	}
	if logRow.Bmi != 21.6 {
		t.Errorf("log Bmi = %v, want 21.6", logRow.Bmi)
	}
	if logRow.Category != models.BMICategoryNormal {
		t.Errorf("log Category = %q, want %q", logRow.Category, models.BMICategoryNormal)
	}
}

// Updates that touch neither height nor weight must not append a log.
func TestProfileUpdateNoBodyChangeNoLog(t *testing.T) {
	profile := models.UserProfile{UserID: 3, HeightCm: 170, WeightKg: 70}

	bodyChanged, err := applyProfileUpdate(&profile, UpdateProfileInput{
		ActivityLevel: str("active"),
		HealthGoals:   str("weightLoss"),
		Allergies:     []string{"peanut"},
	})
	if err != nil {
		t.Fatalf("applyProfileUpdate: %v", err)
	}
	if bodyChanged {
		t.Error("non-body fields must not trigger a log append")
	}
	if profile.ActivityLevel != "active" || profile.HealthGoals != "weightLoss" {
		t.Errorf("merge dropped fields: %+v", profile)
	}
	if string(profile.Allergies) != `["peanut"]` {
		t.Errorf("Allergies = %s, want [\"peanut\"]", profile.Allergies)
	}
}
