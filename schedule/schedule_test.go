package schedule

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	d := mustDate(t, "2024-03-10")
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 10 {
		t.Fatalf("got %v", d)
	}
	if _, err := ParseDate("10/03/2024"); err == nil {
		t.Fatal("expected error for non ISO input")
	}
	if _, err := ParseDate("2024-13-01"); err == nil {
		t.Fatal("expected error for month 13")
	}
}

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "09:45", "23:59"}
	invalid := []string{"24:00", "9:45", "12:60", "12h30", ""}
	for _, s := range valid {
		if !ValidClock(s) {
			t.Errorf("ValidClock(%q) = false", s)
		}
	}
	for _, s := range invalid {
		if ValidClock(s) {
			t.Errorf("ValidClock(%q) = true", s)
		}
	}
}

func TestDatesBetween(t *testing.T) {
	single := DatesBetween(mustDate(t, "2024-03-10"), mustDate(t, "2024-03-10"))
	if len(single) != 1 || FormatDate(single[0]) != "2024-03-10" {
		t.Fatalf("single-day expansion: %v", single)
	}

	span := DatesBetween(mustDate(t, "2024-01-30"), mustDate(t, "2024-02-02"))
	want := []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}
	if len(span) != len(want) {
		t.Fatalf("expected %d days got %d", len(want), len(span))
	}
	for i, w := range want {
		if FormatDate(span[i]) != w {
			t.Errorf("day %d: expected %s got %s", i, w, FormatDate(span[i]))
		}
	}
}

func TestDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-03-10", "2024-03-10", 1},
		{"2024-03-10", "2024-03-11", 2},
		{"2024-01-01", "2024-01-05", 5},
	}
	for _, tc := range cases {
		if got := Days(mustDate(t, tc.start), mustDate(t, tc.end)); got != tc.want {
			t.Errorf("Days(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestHours(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "17:00", 8},
		{"09:45", "10:15", 0.5},
		{"10:15", "10:45", 0.5},
		{"00:00", "23:59", 23.983333333333334},
	}
	for _, tc := range cases {
		if got := Hours(tc.start, tc.end); got != tc.want {
			t.Errorf("Hours(%s, %s) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestTotalValue(t *testing.T) {
	start := mustDate(t, "2024-01-01")
	end := mustDate(t, "2024-01-03")
	// 3 days * 4h * 50 = 600
	if got := TotalValue(start, end, "08:00", "12:00", 50); got != 600 {
		t.Fatalf("TotalValue = %v, want 600", got)
	}
	// minute borrow: 1 day * 0.5h * 100 = 50
	if got := TotalValue(start, start, "09:45", "10:15", 100); got != 50 {
		t.Fatalf("TotalValue = %v, want 50", got)
	}
}

func TestHasTimeConflict(t *testing.T) {
	d := func(s string) time.Time {
		v, err := ParseDate(s)
		if err != nil {
			t.Fatalf("bad date %q", s)
		}
		return v
	}

	cases := []struct {
		name                   string
		exStart, exEnd         string
		exST, exET             string
		newStart, newEnd       string
		newST, newET           string
		want                   bool
	}{
		{"disjoint ranges", "2024-01-01", "2024-01-02", "08:00", "18:00", "2024-01-05", "2024-01-06", "08:00", "18:00", false},
		{"adjacent days", "2024-01-01", "2024-01-02", "08:00", "18:00", "2024-01-03", "2024-01-03", "08:00", "18:00", false},
		{"same day overlapping windows", "2024-01-01", "2024-01-01", "10:00", "12:00", "2024-01-01", "2024-01-01", "11:00", "13:00", true},
		{"same day new inside existing", "2024-01-01", "2024-01-01", "08:00", "18:00", "2024-01-01", "2024-01-01", "10:00", "11:00", true},
		{"same day new contains existing", "2024-01-01", "2024-01-01", "10:00", "11:00", "2024-01-01", "2024-01-01", "08:00", "18:00", true},
		{"same day back to back", "2024-01-01", "2024-01-01", "10:00", "12:00", "2024-01-01", "2024-01-01", "12:00", "14:00", false},
		{"same day earlier window", "2024-01-01", "2024-01-01", "14:00", "16:00", "2024-01-01", "2024-01-01", "08:00", "10:00", false},
		{"multi-day overlap ignores time", "2024-01-01", "2024-01-03", "08:00", "10:00", "2024-01-03", "2024-01-05", "20:00", "22:00", true},
		{"single day inside multi-day", "2024-01-01", "2024-01-03", "08:00", "10:00", "2024-01-02", "2024-01-02", "20:00", "22:00", true},
		{"multi-day over single day", "2024-01-02", "2024-01-02", "08:00", "10:00", "2024-01-01", "2024-01-03", "20:00", "22:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HasTimeConflict(
				d(tc.exStart), d(tc.exEnd), tc.exST, tc.exET,
				d(tc.newStart), d(tc.newEnd), tc.newST, tc.newET,
			)
			if got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}
