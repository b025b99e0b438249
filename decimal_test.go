package bignumberx

import "testing"

func dec(s string) BigDecimal {
	v, err := ParseBigDecimal(s, nil)
	if err != nil {
		panic(err)
	}
	return v
}

func TestParseFormatScientific(t *testing.T) {
	tests := []struct{ s, want string }{
		{"0", "0"},
		{"123.456", "123.456"},
		{"-123.456", "-123.456"},
		{"1e10", "1E+10"},
		{"1.5e-10", "1.5E-10"},
		{"0.0000001", "1E-7"},
		{"0.000001", "0.000001"},
		{"100", "100"},
		{"+42", "42"},
	}
	for _, tt := range tests {
		if got := dec(tt.s).String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{"", ".", "1.2.3", "1e", "abc", "1x"}
	for _, s := range tests {
		if _, err := ParseBigDecimal(s, nil); err == nil {
			t.Errorf("ParseBigDecimal(%q) expected error", s)
		}
	}
}

func TestToPlainString(t *testing.T) {
	tests := []struct{ s, want string }{
		{"1e10", "10000000000"},
		{"1.5e-10", "0.00000000015"},
		{"123.456", "123.456"},
		{"0", "0"},
	}
	for _, tt := range tests {
		if got := dec(tt.s).ToPlainString(nil); got != tt.want {
			t.Errorf("%s.ToPlainString() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestDecimalAdd(t *testing.T) {
	tests := []struct{ a, b, sum string }{
		{"1.1", "2.22", "3.32"},
		{"1", "0.001", "1.001"},
		{"-1.5", "1.5", "0.0"},
	}
	for _, tt := range tests {
		a, b := dec(tt.a), dec(tt.b)
		if got := a.Add(b).String(); got != tt.sum {
			t.Errorf("%s + %s = %s, want %s", tt.a, tt.b, got, tt.sum)
		}
	}
}

func TestAddExponentIsMin(t *testing.T) {
	a := NewBigDecimal(FromInt64(1), 2)   // 100
	b := NewBigDecimal(FromInt64(1), -3)  // 0.001
	sum := a.Add(b)
	if sum.Exponent() != -3 {
		t.Errorf("Add exponent = %d, want -3", sum.Exponent())
	}
}

func TestDecimalMul(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{"2.5", "4", "10.0"},
		{"0.1", "0.1", "0.01"},
		{"-2", "3", "-6"},
	}
	for _, tt := range tests {
		a, b := dec(tt.a), dec(tt.b)
		got, err := a.Mul(b)
		if err != nil {
			t.Fatal(err)
		}
		if got.String() != tt.want {
			t.Errorf("%s * %s = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCmpEqual(t *testing.T) {
	a := dec("1.0")
	b := dec("1.00")
	if a.Cmp(b) != 0 {
		t.Error("1.0 and 1.00 should compare equal")
	}
	if a.Equal(b) {
		t.Error("1.0 and 1.00 should NOT be Equal (different exponent)")
	}
	if !a.Equal(dec("1.0")) {
		t.Error("1.0 should Equal itself")
	}
}

func TestRescale(t *testing.T) {
	tests := []struct {
		s      string
		newExp int32
		mode   RoundingMode
		want   string
	}{
		{"1.2345", -2, HalfUp, "1.23"},
		{"1.235", -2, HalfUp, "1.24"},
		{"1.2", -4, Down, "1.2000"},
		{"9.99", -1, HalfUp, "10.0"},
	}
	for _, tt := range tests {
		got, err := Rescale(dec(tt.s), tt.newExp, tt.mode)
		if err != nil {
			t.Fatalf("Rescale(%s) error: %v", tt.s, err)
		}
		if got.String() != tt.want {
			t.Errorf("Rescale(%s, %d, %v) = %s, want %s", tt.s, tt.newExp, tt.mode, got, tt.want)
		}
	}
}

func TestRescaleUnnecessaryFailsOnLostDigits(t *testing.T) {
	if _, err := Rescale(dec("1.23"), -1, Unnecessary); !IsKind(err, Arithmetic) {
		t.Errorf("Rescale losing digits under Unnecessary error = %v, want Arithmetic", err)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		s    string
		ctx  MathContext
		want string
	}{
		{"123.456", MathContext{Precision: 4, Mode: HalfUp}, "123.5"},
		{"999", MathContext{Precision: 2, Mode: HalfUp}, "1.0E+3"},
		{"1.2345", MathContext{Precision: 0, Mode: HalfUp}, "1.2345"},
	}
	for _, tt := range tests {
		got, err := Round(dec(tt.s), tt.ctx)
		if err != nil {
			t.Fatalf("Round(%s) error: %v", tt.s, err)
		}
		if got.String() != tt.want {
			t.Errorf("Round(%s, %+v) = %s, want %s", tt.s, tt.ctx, got, tt.want)
		}
	}
}

func TestDivideContextOneThird(t *testing.T) {
	got, err := dec("1").DivideContext(dec("3"), MathContext{Precision: 5, Mode: HalfUp})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "0.33333" {
		t.Errorf("1/3 at precision 5 HalfUp = %s, want 0.33333", got)
	}
}

func TestDivideExact(t *testing.T) {
	got, err := dec("10").Divide(dec("4"))
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2.5" {
		t.Errorf("10/4 = %s, want 2.5", got)
	}
}

func TestDivideNonTerminatingFails(t *testing.T) {
	if _, err := dec("1").Divide(dec("3")); !IsKind(err, Arithmetic) {
		t.Errorf("1/3 exact divide error = %v, want Arithmetic", err)
	}
}

func TestDivideByZero(t *testing.T) {
	if _, err := dec("1").Divide(dec("0")); !IsKind(err, Arithmetic) {
		t.Errorf("1/0 error = %v, want Arithmetic", err)
	}
}

func TestDivideIntegerAndModulus(t *testing.T) {
	q, err := dec("10").DivideInteger(dec("3"))
	if err != nil || q.String() != "3" {
		t.Errorf("10 DivideInteger 3 = %s, %v, want 3", q, err)
	}
	m, err := dec("10").Modulus(dec("3"))
	if err != nil || m.String() != "1" {
		t.Errorf("10 Modulus 3 = %s, %v, want 1", m, err)
	}
}

func TestDecimalPower(t *testing.T) {
	got, err := dec("2").Power(10)
	if err != nil || got.String() != "1024" {
		t.Errorf("2^10 = %s, %v, want 1024", got, err)
	}
}

func TestPowerContextNegativeExponent(t *testing.T) {
	got, err := dec("2").PowerContext(-1, MathContext{Precision: 10, Mode: HalfUp})
	if err != nil || got.String() != "0.5" {
		t.Errorf("2^-1 = %s, %v, want 0.5", got, err)
	}
}

func TestStripTrailingZeros(t *testing.T) {
	got := NewBigDecimal(FromInt64(12300), 0).StripTrailingZeros()
	if got.Coefficient().String() != "123" || got.Exponent() != 2 {
		t.Errorf("StripTrailingZeros(12300) = %s*10^%d, want 123*10^2", got.Coefficient(), got.Exponent())
	}
}

func TestMovePoint(t *testing.T) {
	got, err := dec("1.23").MovePointRight(2)
	if err != nil || got.String() != "123" {
		t.Errorf("1.23 MovePointRight(2) = %s, %v, want 123", got, err)
	}
	got, err = dec("123").MovePointLeft(2)
	if err != nil || got.String() != "1.23" {
		t.Errorf("123 MovePointLeft(2) = %s, %v, want 1.23", got, err)
	}
}
