package variant

import "testing"

func TestMatches(t *testing.T) {
	attrs := map[string]string{"Flavor": "Mango Ice", "Nicotine Level": "3mg"}

	cases := []struct {
		name      string
		selection map[string]string
		want      bool
	}{
		{"empty selection matches anything", map[string]string{}, true},
		{"nil selection matches anything", nil, true},
		{"subset match", map[string]string{"Flavor": "Mango Ice"}, true},
		{"full match", map[string]string{"Flavor": "Mango Ice", "Nicotine Level": "3mg"}, true},
		{"wrong value", map[string]string{"Flavor": "Grape"}, false},
		{"unknown key", map[string]string{"Color": "Black"}, false},
		{"case sensitive", map[string]string{"Flavor": "mango ice"}, false},
		{"no trimming", map[string]string{"Flavor": "Mango Ice "}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Matches(attrs, tc.selection); got != tc.want {
				t.Errorf("Matches(%v) = %v, want %v", tc.selection, got, tc.want)
			}
		})
	}
}

func TestMatchesEmptyAttributes(t *testing.T) {
	if Matches(nil, map[string]string{"Flavor": "Mango Ice"}) {
		t.Error("selection against empty attributes should not match")
	}
	if !Matches(nil, nil) {
		t.Error("empty against empty should match")
	}
}
