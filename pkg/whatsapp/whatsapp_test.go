package whatsapp

import (
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"081234567890", "6281234567890"},
		{"6281234567890", "6281234567890"},
		{"81234567890", "6281234567890"},
		{"+62 812-3456-7890", "6281234567890"},
		{"(0812) 3456 7890", "6281234567890"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsValidNumber(t *testing.T) {
	valid := []string{"081234567890", "6281234567890", "+62 812 3456 7890"}
	for _, v := range valid {
		if !IsValidNumber(v) {
			t.Errorf("IsValidNumber(%q) = false, want true", v)
		}
	}

	invalid := []string{"", "12345", "628", "1234567890123456789"}
	for _, v := range invalid {
		if IsValidNumber(v) {
			t.Errorf("IsValidNumber(%q) = true, want false", v)
		}
	}
}

func TestLink(t *testing.T) {
	link := Link("6281234567890", "Halo, ada stok?")
	if !strings.HasPrefix(link, "https://wa.me/6281234567890?text=") {
		t.Errorf("link = %q, want wa.me prefix with phone", link)
	}
	if strings.Contains(link, " ") {
		t.Errorf("link must be percent-encoded: %q", link)
	}
}
