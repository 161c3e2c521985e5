package variant

import (
	"strings"
	"testing"

	"github.com/tokovape/tokovape_api/internal/models"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{55000, "Rp 55.000"},
		{1250000, "Rp 1.250.000"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(tc.amount); got != tc.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestOrderedSelection(t *testing.T) {
	types := []models.OptionType{
		{Name: "Nicotine Level", Position: 2},
		{Name: "Flavor", Position: 1},
	}
	sel := map[string]string{"Flavor": "Grape", "Nicotine Level": "3mg", "Stray": "x"}

	got := OrderedSelection(types, sel)
	if len(got) != 2 {
		t.Fatalf("got %d pairs, want 2", len(got))
	}
	// Declared option-type order wins, stray selection keys are dropped.
	if got[0].Name != "Nicotine Level" || got[1].Name != "Flavor" {
		t.Errorf("order = [%s, %s], want declared option order", got[0].Name, got[1].Name)
	}
}

func TestBuildOrderMessage(t *testing.T) {
	msg := BuildOrderMessage(
		"Pod X",
		[]SelectedOption{{Name: "Color", Value: "Blue"}},
		55000,
		"Jakarta",
		"6281234567890",
	)

	for _, want := range []string{"Pod X", "Color: Blue", "Rp 55.000", "Jakarta"} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("message text missing %q:\n%s", want, msg.Text)
		}
	}
	if !strings.HasPrefix(msg.URI, "https://wa.me/6281234567890?text=") {
		t.Errorf("uri = %q, want wa.me link for 6281234567890", msg.URI)
	}
}

func TestBuildOrderMessageOmitsEmptyVariantLine(t *testing.T) {
	msg := BuildOrderMessage("Cotton Bacon", nil, 45000, "Bandung", "628111222333")
	if strings.Contains(msg.Text, "Varian") {
		t.Errorf("variant line must be omitted for empty selection:\n%s", msg.Text)
	}
	if !strings.Contains(msg.Text, "Rp 45.000") {
		t.Errorf("message text missing price:\n%s", msg.Text)
	}
}
