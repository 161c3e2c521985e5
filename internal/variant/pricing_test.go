package variant

import "testing"

func TestAdjust(t *testing.T) {
	cases := []struct {
		name           string
		base, percent  int
		wantDiscounted *int
	}{
		{"twenty percent off", 10000, 20, intp(8000)},
		{"no discount", 10000, 0, nil},
		{"negative percent treated as none", 10000, -5, nil},
		{"over one hundred clamps to free", 10000, 150, intp(0)},
		{"rounds half up", 999, 5, intp(949)}, // 949.05 -> 949
		{"rounds half up at boundary", 10, 5, intp(10)}, // 9.5 -> 10
		{"full discount", 55000, 100, intp(0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Adjust(tc.base, tc.percent)
			if got.Original != tc.base {
				t.Errorf("Original = %d, want %d", got.Original, tc.base)
			}
			switch {
			case tc.wantDiscounted == nil && got.Discounted != nil:
				t.Errorf("Discounted = %d, want nil", *got.Discounted)
			case tc.wantDiscounted != nil && got.Discounted == nil:
				t.Errorf("Discounted = nil, want %d", *tc.wantDiscounted)
			case tc.wantDiscounted != nil && *got.Discounted != *tc.wantDiscounted:
				t.Errorf("Discounted = %d, want %d", *got.Discounted, *tc.wantDiscounted)
			}
		})
	}
}

func intp(v int) *int { return &v }
