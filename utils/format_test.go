package utils

import "testing"

func TestCapitalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase words", "tukang kayu", "Tukang Kayu"},
		{"mixed case", "tUKANG kAYU", "Tukang Kayu"},
		{"extra whitespace", "  tukang   kayu  ", "Tukang Kayu"},
		{"single word", "les", "Les"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Capitalize(tc.in)
			if got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestCapitalizeFirstWord(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase sentence", "saya bisa memperbaiki meja dan kursi", "Saya bisa memperbaiki meja dan kursi"},
		{"already capitalized", "Sudah rapi", "Sudah rapi"},
		{"leading whitespace", "  jasa angkut", "Jasa angkut"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CapitalizeFirstWord(tc.in)
			if got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}
