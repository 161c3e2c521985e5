package variant

import (
	"testing"

	"github.com/tokovape/tokovape_api/internal/models"
)

func colorType(name string) models.OptionType {
	return models.OptionType{ID: "ot-" + name, Name: name, Position: 1}
}

func podSKUs() []models.SKU {
	return []models.SKU{
		{ID: "sku-a", ProductID: "p1", Attributes: models.Attributes{"Color": "Black"}, PriceIDR: 50000, IsActive: true},
		{ID: "sku-b", ProductID: "p1", Attributes: models.Attributes{"Color": "Blue"}, PriceIDR: 55000, IsActive: true},
	}
}

func TestResolveCompleteSelection(t *testing.T) {
	res := Resolve(podSKUs(), []models.OptionType{colorType("Color")}, map[string]string{"Color": "Blue"})
	if res.State != StateResolved {
		t.Fatalf("state = %s, want resolved", res.State)
	}
	if res.SKU.ID != "sku-b" {
		t.Errorf("resolved %s, want sku-b", res.SKU.ID)
	}
	if res.Ambiguous {
		t.Error("unexpected ambiguity flag")
	}
}

func TestResolveIncomplete(t *testing.T) {
	types := []models.OptionType{colorType("Color"), {ID: "ot-size", Name: "Size", Position: 2}}

	cases := []struct {
		name      string
		selection map[string]string
	}{
		{"no selection", nil},
		{"empty selection", map[string]string{}},
		{"one of two", map[string]string{"Color": "Blue"}},
		{"empty value", map[string]string{"Color": "Blue", "Size": ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if res := Resolve(podSKUs(), types, tc.selection); res.State != StateIncomplete {
				t.Errorf("state = %s, want incomplete", res.State)
			}
		})
	}
}

func TestResolveNoMatch(t *testing.T) {
	res := Resolve(podSKUs(), []models.OptionType{colorType("Color")}, map[string]string{"Color": "Red"})
	if res.State != StateNoMatch {
		t.Fatalf("state = %s, want no_match", res.State)
	}
	if res.SKU != nil {
		t.Error("no_match must not carry a SKU")
	}
}

func TestResolveSkipsInactiveSKUs(t *testing.T) {
	skus := podSKUs()
	skus[1].IsActive = false
	res := Resolve(skus, []models.OptionType{colorType("Color")}, map[string]string{"Color": "Blue"})
	if res.State != StateNoMatch {
		t.Errorf("state = %s, want no_match for inactive-only combination", res.State)
	}
}

func TestResolveNoOptionTypes(t *testing.T) {
	skus := []models.SKU{{ID: "sku-only", IsActive: true, PriceIDR: 30000}}

	// Selection content is irrelevant for variant-less products.
	for _, sel := range []map[string]string{nil, {"Whatever": "x"}} {
		res := Resolve(skus, nil, sel)
		if res.State != StateResolved || res.SKU.ID != "sku-only" {
			t.Errorf("Resolve(sel=%v) = %+v, want the only SKU", sel, res)
		}
	}

	if res := Resolve(nil, nil, nil); res.State != StateNoMatch {
		t.Errorf("empty SKU list should yield no_match, got %s", res.State)
	}
}

func TestResolveAmbiguousDuplicates(t *testing.T) {
	skus := []models.SKU{
		{ID: "sku-z", Attributes: models.Attributes{"Color": "Blue"}, IsActive: true},
		{ID: "sku-b", Attributes: models.Attributes{"Color": "Blue"}, IsActive: true},
	}
	res := Resolve(skus, []models.OptionType{colorType("Color")}, map[string]string{"Color": "Blue"})
	if res.State != StateResolved {
		t.Fatalf("state = %s, want resolved", res.State)
	}
	if !res.Ambiguous {
		t.Error("duplicate active attribute maps must set Ambiguous")
	}
	if res.SKU.ID != "sku-b" {
		t.Errorf("resolved %s, want lowest id sku-b", res.SKU.ID)
	}
}

func TestResolveIdempotent(t *testing.T) {
	skus := podSKUs()
	types := []models.OptionType{colorType("Color")}
	sel := map[string]string{"Color": "Black"}

	first := Resolve(skus, types, sel)
	second := Resolve(skus, types, sel)
	if first.State != second.State || first.SKU.ID != second.SKU.ID {
		t.Errorf("repeated resolution differs: %+v vs %+v", first, second)
	}
}
