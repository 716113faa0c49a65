package engine

import "testing"

func TestParseDay(t *testing.T) {
	cases := []struct {
		in   string
		want Day
	}{
		{"monday", Monday},
		{"Mon", Monday},
		{"tu", Tuesday},
		{"SAT", Saturday},
		{"sunday", Sunday},
	}
	for _, c := range cases {
		got, err := ParseDay(c.in)
		if err != nil {
			t.Fatalf("ParseDay(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseDay(%q)=%s, want %s", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "yesterday", "mondays"} {
		if _, err := ParseDay(bad); err == nil {
			t.Errorf("ParseDay(%q) expected error", bad)
		}
	}
}
