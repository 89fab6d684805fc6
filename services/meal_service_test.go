package services

import (
	"testing"
)

// orderClause must only ever emit whitelisted columns — sortBy comes straight
// off the query string.
func TestOrderClause(t *testing.T) {
	cases := []struct {
		sortBy    string
		sortOrder string
		want      string
	}{
		{"createdAt", "desc", "created_at DESC"},
		{"createdAt", "asc", "created_at ASC"},
		{"title", "ASC", "title ASC"},
		{"calories", "", "calories DESC"},
		{"mealInGrams", "asc", "meal_in_grams ASC"},
		{"", "", "created_at DESC"},
		{"drop table meals", "asc", "created_at ASC"},
		{"createdAt", "sideways", "created_at DESC"},
	}

	for _, tc := range cases {
		if got := orderClause(tc.sortBy, tc.sortOrder); got != tc.want {
			t.Errorf("orderClause(%q, %q) = %q, want %q", tc.sortBy, tc.sortOrder, got, tc.want)
		}
	}
}
