package gm1356

import "testing"

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want Range
	}{
		{"30-130", Range30to130},
		{"30-80", Range30to80},
		{"50-100", Range50to100},
		{"60-110", Range60to110},
		{"80-130", Range80to130},
	}

	for _, tt := range tests {
		got, err := ParseRange(tt.in)
		if err != nil {
			t.Fatalf("ParseRange(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseRange(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRangeRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "30-130 dB", "40-90", "unknown"} {
		if _, err := ParseRange(in); err == nil {
			t.Errorf("ParseRange(%q): expected error", in)
		}
	}
}

func TestRangeString(t *testing.T) {
	if got := Range50to100.String(); got != "50-100 dB" {
		t.Errorf("unexpected string: %q", got)
	}
	if got := Range(9).String(); got != "unknown" {
		t.Errorf("out-of-band range string: %q", got)
	}
}

func TestParseWeighting(t *testing.T) {
	if w, err := ParseWeighting("dBA"); err != nil || w != WeightingDBA {
		t.Errorf("ParseWeighting(dBA) = %v, %v", w, err)
	}
	if w, err := ParseWeighting("dBC"); err != nil || w != WeightingDBC {
		t.Errorf("ParseWeighting(dBC) = %v, %v", w, err)
	}
	if _, err := ParseWeighting("dbz"); err == nil {
		t.Error("expected error for unknown weighting")
	}
}
