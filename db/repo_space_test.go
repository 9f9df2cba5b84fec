package db

import (
	"context"
	"strings"
	"testing"

	"spacerental/models"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func newDryRunRepo(t *testing.T) *Repo {
	t.Helper()
	gdb, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return NewRepo(gdb)
}

// Every order_by branch must land in the generated SQL; gorm drops
// unsupported Order arguments without erroring.
func TestSearchSpacesOrderBySQL(t *testing.T) {
	cases := []struct {
		name    string
		orderBy string
		want    string
	}{
		{"price ascending", "asc", "ORDER BY price_per_hour ASC"},
		{"price descending", "desc", "ORDER BY price_per_hour DESC"},
		{"most recent", "recent", "ORDER BY created_at DESC"},
		{"default rating", "", "ORDER BY (SELECT AVG(a.score) FROM assessments a WHERE a.space_id = spaces.id) DESC NULLS LAST"},
	}
	r := newDryRunRepo(t)
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var spaces []models.Space
			stmt := r.searchQuery(context.Background(), SpaceFilter{OrderBy: tt.orderBy}).
				Find(&spaces).Statement
			sql := stmt.SQL.String()
			if !strings.Contains(sql, tt.want) {
				t.Fatalf("generated SQL %q does not contain %q", sql, tt.want)
			}
		})
	}
}

func TestSearchSpacesFilterSQL(t *testing.T) {
	r := newDryRunRepo(t)
	min := 10.0
	var spaces []models.Space
	stmt := r.searchQuery(context.Background(), SpaceFilter{
		SpaceType: "auditorio",
		MinPrice:  &min,
		Amenities: []string{"wifi", "som"},
	}).Find(&spaces).Statement
	sql := stmt.SQL.String()

	for _, want := range []string{
		"space_type = ?",
		"price_per_hour >= ?",
		"space_amenities @> ?::jsonb",
	} {
		if !strings.Contains(sql, want) {
			t.Fatalf("generated SQL %q does not contain %q", sql, want)
		}
	}
	if want := `["wifi","som"]`; stmtVarsMissing(stmt.Vars, want) {
		t.Fatalf("statement vars %v do not carry %q", stmt.Vars, want)
	}
}

func stmtVarsMissing(vars []interface{}, want string) bool {
	for _, v := range vars {
		if s, ok := v.(string); ok && s == want {
			return false
		}
	}
	return true
}
