package tags

import "testing"

func TestFilterNamed(t *testing.T) {
	cases := []struct {
		name    string
		current []string
		remove  []string
		want    []string
	}{
		{"remove-one", []string{"Ann", "Bob"}, []string{"Bob"}, []string{"Ann"}},
		{"remove-none", []string{"Ann"}, []string{"Zed"}, []string{"Ann"}},
		{"remove-all", []string{"Ann", "Bob"}, []string{"Ann", "Bob"}, []string{}},
		{"exact-match-only", []string{"Ann Smith"}, []string{"Ann"}, []string{"Ann Smith"}},
		{"keeps-order", []string{"C", "A", "B"}, []string{"A"}, []string{"C", "B"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FilterNamed(c.current, c.remove)
			if len(got) != len(c.want) {
				t.Fatalf("期望 %v，实际 %v", c.want, got)
			}
			for i := range c.want {
				if got[i] != c.want[i] {
					t.Fatalf("期望 %v，实际 %v", c.want, got)
				}
			}
		})
	}
}
