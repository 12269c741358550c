package format

import "testing"

func TestCurrencyFormatsUSD(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{1234.56, "$1,234.56"},
		{1000000, "$1,000,000.00"},
		{-42.1, "-$42.10"},
		{0.005, "$0.01"},
	}
	for _, tc := range cases {
		if got := Currency(tc.amount); got != tc.want {
			t.Fatalf("Currency(%v) = %s, want %s", tc.amount, got, tc.want)
		}
	}
}

func TestCompactCountAbbreviates(t *testing.T) {
	cases := []struct {
		count int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1260, "1.3K"},
		{999999, "1000.0K"},
		{1000000, "1.0M"},
		{3400000, "3.4M"},
	}
	for _, tc := range cases {
		if got := CompactCount(tc.count); got != tc.want {
			t.Fatalf("CompactCount(%d) = %s, want %s", tc.count, got, tc.want)
		}
	}
}
