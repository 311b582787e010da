package handlers

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Men & Kids", "men-kids"},
		{"  Electronics  ", "electronics"},
		{"Home--Decor", "home-decor"},
		{"Déjà Vu", "d-j-vu"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := slugify(tt.name); got != tt.want {
			t.Fatalf("slugify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSlugPattern(t *testing.T) {
	valid := []string{"men-s-fashion", "electronics", "a1-b2"}
	for _, s := range valid {
		if !slugPattern.MatchString(s) {
			t.Fatalf("expected %q to be a valid slug", s)
		}
	}

	invalid := []string{"", "-leading", "trailing-", "UPPER", "sp ace", "a--b"}
	for _, s := range invalid {
		if slugPattern.MatchString(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}
