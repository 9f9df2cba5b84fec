package models

import "testing"

func TestIsAllowedAmenity(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"wifi", true},
		{"piscina", true},
		{"banheiro_pcd", true},
		{"jacuzzi", false},
		{"", false},
		{"WIFI", false}, // amenities are matched verbatim, no case folding
	}
	for _, tt := range tests {
		if got := IsAllowedAmenity(tt.value); got != tt.want {
			t.Errorf("IsAllowedAmenity(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestIsAllowedWeekDayFoldsCase(t *testing.T) {
	for _, v := range []string{"segunda", "Segunda", "DOMINGO"} {
		if !IsAllowedWeekDay(v) {
			t.Errorf("IsAllowedWeekDay(%q) = false, want true", v)
		}
	}
	if IsAllowedWeekDay("monday") {
		t.Error("IsAllowedWeekDay(\"monday\") = true, want false")
	}
}

func TestInvalidAmenities(t *testing.T) {
	got := InvalidAmenities([]string{"wifi", "jacuzzi", "som", "heliponto"})
	want := []string{"jacuzzi", "heliponto"}
	if len(got) != len(want) {
		t.Fatalf("InvalidAmenities = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("InvalidAmenities = %v, want %v", got, want)
		}
	}

	if bad := InvalidAmenities([]string{"wifi", "som"}); bad != nil {
		t.Errorf("InvalidAmenities with all valid values = %v, want nil", bad)
	}
}

func TestInvalidRules(t *testing.T) {
	if bad := InvalidRules([]string{"nao_fumar", "sem_regras"}); len(bad) != 1 || bad[0] != "sem_regras" {
		t.Errorf("InvalidRules = %v, want [sem_regras]", bad)
	}
}

func TestHasDuplicates(t *testing.T) {
	tests := []struct {
		name string
		vs   []string
		want bool
	}{
		{"empty", nil, false},
		{"unique", []string{"wifi", "som"}, false},
		{"duplicate", []string{"wifi", "som", "wifi"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasDuplicates(tt.vs); got != tt.want {
				t.Errorf("HasDuplicates(%v) = %v, want %v", tt.vs, got, tt.want)
			}
		})
	}
}
