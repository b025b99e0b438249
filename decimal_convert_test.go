package bignumberx

import "testing"

func TestDecomposeComposeRoundTrip(t *testing.T) {
	tests := []string{"123.456", "-123.456", "0", "100000000000000000000.5", "-1"}
	for _, s := range tests {
		v := dec(s)
		form, negative, coefficient, exponent := v.Decompose(nil)
		if form != decomposeFormFinite {
			t.Fatalf("Decompose(%s) form = %d, want finite", s, form)
		}
		var back BigDecimal
		if err := back.Compose(form, negative, coefficient, exponent); err != nil {
			t.Fatalf("Compose(%s) error: %v", s, err)
		}
		if !back.Equal(v) {
			t.Errorf("round-trip %s: got %s", s, back.String())
		}
	}
}

func TestDecomposeSign(t *testing.T) {
	_, negative, _, _ := dec("-42").Decompose(nil)
	if !negative {
		t.Error("Decompose(-42) negative = false, want true")
	}
	_, negative, _, _ = dec("42").Decompose(nil)
	if negative {
		t.Error("Decompose(42) negative = true, want false")
	}
}

func TestComposeRejectsNonFinite(t *testing.T) {
	var v BigDecimal
	if err := v.Compose(decomposeFormNaN, false, nil, 0); !IsKind(err, Arithmetic) {
		t.Errorf("Compose(NaN form) error = %v, want Arithmetic", err)
	}
}

func TestComposeZeroCoefficient(t *testing.T) {
	var v BigDecimal
	if err := v.Compose(decomposeFormFinite, false, []byte{}, -2); err != nil {
		t.Fatal(err)
	}
	if !v.IsZero() || v.Exponent() != -2 {
		t.Errorf("Compose(zero coeff) = %s exp=%d, want zero at exp -2", v, v.Exponent())
	}
}
