package magnitude

import "testing"

func TestTrim(t *testing.T) {
	tests := []struct {
		in  Mag
		out int // expected length
	}{
		{nil, 0},
		{Mag{0, 0, 0}, 0},
		{Mag{1, 0, 0}, 1},
		{Mag{1, 2, 0}, 2},
		{Mag{1, 2, 3}, 3},
	}
	for _, tt := range tests {
		got := Trim(tt.in)
		if len(got) != tt.out {
			t.Errorf("Trim(%v) length = %d, want %d", tt.in, len(got), tt.out)
		}
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		x, y Mag
		want int
	}{
		{nil, nil, 0},
		{Mag{1}, nil, 1},
		{nil, Mag{1}, -1},
		{Mag{5}, Mag{5}, 0},
		{Mag{1, 1}, Mag{0xFFFFFFFF}, 1},
		{Mag{0xFFFFFFFF}, Mag{1, 1}, -1},
	}
	for _, tt := range tests {
		if got := Cmp(tt.x, tt.y); got != tt.want {
			t.Errorf("Cmp(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAddSub(t *testing.T) {
	x := Mag{0xFFFFFFFF}
	y := Mag{1}
	sum := Add(x, y)
	if Cmp(sum, Mag{0, 1}) != 0 {
		t.Errorf("Add carry: got %v, want {0,1}", sum)
	}
	diff := Sub(sum, y)
	if Cmp(diff, x) != 0 {
		t.Errorf("Sub: got %v, want %v", diff, x)
	}
}

func TestSubUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on x < y")
		}
	}()
	Sub(Mag{1}, Mag{2})
}

func TestMul(t *testing.T) {
	// (2^32 - 1) * (2^32 - 1) = 2^64 - 2^33 + 1
	x := Mag{0xFFFFFFFF}
	got := Mul(x, x)
	want := Mag{1, 0xFFFFFFFE}
	if Cmp(got, want) != 0 {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}

func TestDivModWord(t *testing.T) {
	x := Mag{0, 1} // 2^32
	q, r := DivModWord(x, 10)
	if r != 6 || Cmp(q, Mag{429496729}) != 0 {
		t.Errorf("DivModWord(2^32,10) = (%v,%d), want (429496729,6)", q, r)
	}
}

func TestDivModKnuthD(t *testing.T) {
	// Divisor spans two words, forcing Algorithm D's multi-word path.
	u := Mag{0, 0, 1}                     // 2^64
	v := Mag{0xFFFFFFFF, 0xFFFFFFFF}      // 2^64 - 1
	q, r, err := DivMod(u, v)
	if err != nil {
		t.Fatal(err)
	}
	if Cmp(q, Mag{1}) != 0 {
		t.Errorf("quotient = %v, want 1", q)
	}
	if Cmp(r, Mag{1}) != 0 {
		t.Errorf("remainder = %v, want 1", r)
	}
	// Reconstruct: q*v + r should equal u.
	recon := Add(Mul(q, v), r)
	if Cmp(recon, u) != 0 {
		t.Errorf("q*v+r = %v, want %v", recon, u)
	}
}

func TestDivModByZero(t *testing.T) {
	_, _, err := DivMod(Mag{1}, nil)
	if err != ErrDivideByZero {
		t.Errorf("expected ErrDivideByZero, got %v", err)
	}
}

func TestShifts(t *testing.T) {
	x := Mag{1}
	got := LeftShift(x, 40)
	if BitLen(got) != 41 {
		t.Errorf("BitLen after LeftShift(1,40) = %d, want 41", BitLen(got))
	}
	back := RightShift(got, 40)
	if Cmp(back, x) != 0 {
		t.Errorf("RightShift undid LeftShift incorrectly: got %v", back)
	}
}

func TestBitOps(t *testing.T) {
	x := SetBit(nil, 70)
	if !TestBit(x, 70) {
		t.Fatal("SetBit(70) then TestBit(70) = false")
	}
	if TestBit(x, 69) || TestBit(x, 71) {
		t.Fatal("SetBit(70) set an unrelated bit")
	}
	x = ClearBit(x, 70)
	if TestBit(x, 70) {
		t.Fatal("ClearBit(70) did not clear it")
	}
}

func TestPopCountAndTrailingZeros(t *testing.T) {
	x := Mag{0b1010, 0b11}
	if PopCount(x) != 4 {
		t.Errorf("PopCount = %d, want 4", PopCount(x))
	}
	if TrailingZeroBits(x) != 1 {
		t.Errorf("TrailingZeroBits = %d, want 1", TrailingZeroBits(x))
	}
	if TrailingZeroBits(nil) != 0 {
		t.Errorf("TrailingZeroBits(nil) = %d, want 0", TrailingZeroBits(nil))
	}
}
