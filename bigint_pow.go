package bignumberx

import "github.com/izarchtech/bignumberx/internal/magnitude"

// Power returns x raised to the non-negative integer power exp. exp < 0
// fails with OutOfRange. Power(0) is One even when x is Zero.
func (x BigInt) Power(exp int) (BigInt, error) {
	if exp < 0 {
		return BigInt{}, newErr(OutOfRange, "Power", "negative exponent %d", exp)
	}
	if exp == 0 {
		return One, nil
	}
	result := One
	base := x
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result, nil
}

// ModPow returns (x^exp) mod m, reducing modulo m after every multiply so
// intermediate magnitudes stay bounded by m regardless of exp's size.
// exp < 0 fails with OutOfRange; m == 0 fails with DivideByZero.
func (x BigInt) ModPow(exp int, m BigInt) (BigInt, error) {
	if exp < 0 {
		return BigInt{}, newErr(OutOfRange, "ModPow", "negative exponent %d", exp)
	}
	if m.sign == 0 {
		return BigInt{}, newErr(DivideByZero, "ModPow", "modulus is zero")
	}
	if m.Abs().Equal(One) {
		return Zero, nil
	}
	result := One
	base, err := x.Rem(m)
	if err != nil {
		return BigInt{}, err
	}
	if base.sign < 0 {
		base = base.Add(m.Abs())
	}
	for exp > 0 {
		if exp&1 == 1 {
			result, err = result.Mul(base).Rem(m)
			if err != nil {
				return BigInt{}, err
			}
		}
		base, err = base.Mul(base).Rem(m)
		if err != nil {
			return BigInt{}, err
		}
		exp >>= 1
	}
	return result, nil
}

// Gcd returns the non-negative greatest common divisor of x and y via the
// binary (Stein's) algorithm: strip the common power of two from both
// operands (k = min of each operand's own trailing-zero count), then
// repeatedly halve the even one and subtract-and-halve the odd pair, finally
// restoring the shared factor of two.
func (x BigInt) Gcd(y BigInt) BigInt {
	a := x.Abs()
	b := y.Abs()
	if a.sign == 0 {
		return b
	}
	if b.sign == 0 {
		return a
	}

	s1 := magnitude.TrailingZeroBits(a.mag)
	s2 := magnitude.TrailingZeroBits(b.mag)
	k := s1
	if s2 < k {
		k = s2
	}
	a = a.RightShift(s1)
	b = b.RightShift(s2)

	for {
		if a.Cmp(b) > 0 {
			a, b = b, a
		}
		b = b.Sub(a)
		if b.sign == 0 {
			break
		}
		b = b.RightShift(magnitude.TrailingZeroBits(b.mag))
	}
	return a.LeftShift(k)
}
