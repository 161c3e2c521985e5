package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Pod X Pro", "pod-x-pro"},
		{"  RELX Infinity 2  ", "relx-infinity-2"},
		{"Liquid Mangga (60ml)!", "liquid-mangga-60ml"},
		{"a---b", "a-b"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
