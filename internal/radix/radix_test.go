package radix

import "testing"

func TestParseFormatRoundTrip(t *testing.T) {
	tests := []struct {
		s     string
		radix int
		want  string
	}{
		{"0", 10, "0"},
		{"123456789012345678901234567890", 10, "123456789012345678901234567890"},
		{"-123456789012345678901234567890", 10, "-123456789012345678901234567890"},
		{"ff", 16, "FF"},
		{"-ff", 16, "-FF"},
		{"z", 36, "Z"},
		{"101010101010101010101010101010101010", 2, "101010101010101010101010101010101010"},
		{"+42", 10, "42"},
	}
	for _, tt := range tests {
		sign, mag, err := Parse(tt.s, tt.radix)
		if err != nil {
			t.Fatalf("Parse(%q,%d) error: %v", tt.s, tt.radix, err)
		}
		got, err := Format(sign, mag, tt.radix)
		if err != nil {
			t.Fatalf("Format error: %v", err)
		}
		if got != tt.want {
			t.Errorf("Parse/Format round trip: %q -> %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		s     string
		radix int
	}{
		{"", 10},
		{"12", 1},
		{"12", 37},
		{"g", 16},
		{"1-2", 10},
		{"--1", 10},
	}
	for _, tt := range tests {
		if _, _, err := Parse(tt.s, tt.radix); err == nil {
			t.Errorf("Parse(%q,%d) expected error, got nil", tt.s, tt.radix)
		}
	}
}

func TestParseLeadingZeros(t *testing.T) {
	sign, mag, err := Parse("00042", 10)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := Format(sign, mag, 10)
	if got != "42" {
		t.Errorf("Parse(00042) -> %q, want 42", got)
	}
}

func TestFormatZero(t *testing.T) {
	got, err := Format(0, nil, 10)
	if err != nil || got != "0" {
		t.Errorf("Format(0,nil,10) = %q, %v, want 0, nil", got, err)
	}
}

func TestParseFormatAcrossDigitGroups(t *testing.T) {
	// 21 base-10 digits split into groups of 3, 9 and 9 (digitsPerWord is
	// 9), exercising the MulAddWord grouping loop across a word carry.
	s := "999999999999999999999"
	sign, mag, err := Parse(s, 10)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Format(sign, mag, 10)
	if err != nil || got != s {
		t.Errorf("round trip of %q = %q, %v", s, got, err)
	}
}
