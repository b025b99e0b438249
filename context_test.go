package bignumberx

import "testing"

func TestPredefinedContexts(t *testing.T) {
	tests := []struct {
		name string
		ctx  MathContext
		prec uint32
		mode RoundingMode
	}{
		{"BasicDefault", BasicDefault, 9, HalfUp},
		{"Decimal32", Decimal32, 7, HalfEven},
		{"Decimal64", Decimal64, 16, HalfEven},
		{"Decimal128", Decimal128, 34, HalfEven},
		{"Unlimited", Unlimited, 0, HalfUp},
	}
	for _, tt := range tests {
		if tt.ctx.Precision != tt.prec || tt.ctx.Mode != tt.mode {
			t.Errorf("%s = %+v, want {%d %v}", tt.name, tt.ctx, tt.prec, tt.mode)
		}
	}
}
