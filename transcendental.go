package bignumberx

import (
	"math"
	"strconv"
)

// All transcendental operations are driven by a target scale (digits right
// of the decimal point) and rescale every internal intermediate so that
// working precision never explodes across iterations.

func validateScale(op string, scale, min int) error {
	if scale < min {
		return newErr(OutOfRange, op, "scale %d must be >= %d", scale, min)
	}
	return nil
}

func decimalFromInt(n int) BigDecimal { return NewBigDecimal(FromInt64(int64(n)), 0) }

func mulRescale(a, b BigDecimal, exp int32, mode RoundingMode) (BigDecimal, error) {
	m, err := a.Mul(b)
	if err != nil {
		return BigDecimal{}, err
	}
	return Rescale(m, exp, mode)
}

// CDivide returns dividend/divisor rounded to exponent -scale under mode:
// q = round(dividend.coeff * 10^shift / divisor.coeff), where shift is
// chosen so that q*10^-scale approximates the true quotient.
func CDivide(dividend, divisor BigDecimal, scale int, mode RoundingMode) (BigDecimal, error) {
	if divisor.coeff.IsZero() {
		return BigDecimal{}, newErr(Arithmetic, "CDivide", "division by zero")
	}
	shift := int64(dividend.exp) - int64(divisor.exp) + int64(scale)
	numerator := dividend.coeff
	denominator := divisor.coeff
	if shift >= 0 {
		numerator = numerator.Mul(pow10(shift))
	} else {
		denominator = denominator.Mul(pow10(-shift))
	}
	q, err := DivideWithRounding(numerator, denominator, mode)
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{coeff: q, exp: int32(-scale)}, nil
}

// IntPower returns x^n rescaled to exponent -scale (HalfEven) after every
// multiply in a binary-exponentiation loop, so intermediate precision never
// grows past one extra digit per step. Unlike BigDecimal.Power, n may be
// any int64 (Exp reaches it through intPowerBig, with n possibly far larger
// than math.MaxInt32); larger exponents are chunked by intPowerBig.
func IntPower(x BigDecimal, n int64, scale int) (BigDecimal, error) {
	if err := validateScale("IntPower", scale, 0); err != nil {
		return BigDecimal{}, err
	}
	if n < 0 {
		p, err := IntPower(x, -n, scale)
		if err != nil {
			return BigDecimal{}, err
		}
		return CDivide(DecimalOne, p, scale, HalfEven)
	}
	negExp := int32(-scale)
	power := DecimalOne
	base := x
	e := n
	var err error
	for e > 0 {
		if e&1 == 1 {
			power, err = mulRescale(power, base, negExp, HalfEven)
			if err != nil {
				return BigDecimal{}, err
			}
		}
		e >>= 1
		if e > 0 {
			base, err = mulRescale(base, base, negExp, HalfEven)
			if err != nil {
				return BigDecimal{}, err
			}
		}
	}
	return power, nil
}

// intPowerBig is IntPower for an exponent too large to fit an int64,
// chunking the binary exponentiation into math.MaxInt64-sized pieces.
func intPowerBig(t BigDecimal, n BigInt, scale int) (BigDecimal, error) {
	if n.Sign() == 0 {
		return DecimalOne, nil
	}
	result := DecimalOne
	remaining := n
	maxChunk := FromInt64(math.MaxInt64)
	negExp := int32(-scale)
	for remaining.Sign() > 0 {
		chunk := remaining
		if chunk.Cmp(maxChunk) > 0 {
			chunk = maxChunk
		}
		chunkN, _ := chunk.AsInt64()
		partial, err := IntPower(t, chunkN, scale)
		if err != nil {
			return BigDecimal{}, err
		}
		result, err = mulRescale(result, partial, negExp, HalfEven)
		if err != nil {
			return BigDecimal{}, err
		}
		remaining = remaining.Sub(chunk)
	}
	return result, nil
}

// IntRoot returns the idx-th root of n to scale digits of precision, via
// Newton iteration at an elevated scale+1 working precision:
// x <- ((n + (idx-1)*x^idx) / (idx*x^(idx-1))), terminating once successive
// iterates differ by no more than 5*10^-(scale+1).
func IntRoot(n BigDecimal, idx, scale int) (BigDecimal, error) {
	if err := validateScale("IntRoot", scale, 1); err != nil {
		return BigDecimal{}, err
	}
	if n.Sign() < 0 {
		return BigDecimal{}, newErr(Arithmetic, "IntRoot", "negative argument")
	}
	if n.IsZero() {
		return NewBigDecimal(Zero, int32(-scale)), nil
	}
	sp1 := scale + 1
	negSp1 := int32(-sp1)
	idxDec := decimalFromInt(idx)
	idxMinus1Dec := decimalFromInt(idx - 1)
	tolerance := NewBigDecimal(Five, int32(-sp1))

	x, err := CDivide(n, idxDec, sp1, HalfEven)
	if err != nil {
		return BigDecimal{}, err
	}
	maxIterations := 10 + 20*sp1
	for i := 0; i < maxIterations; i++ {
		xPowIdx, err := IntPower(x, int64(idx), sp1)
		if err != nil {
			return BigDecimal{}, err
		}
		xPowIdxMinus1, err := IntPower(x, int64(idx-1), sp1)
		if err != nil {
			return BigDecimal{}, err
		}
		term, err := mulRescale(idxMinus1Dec, xPowIdx, negSp1, HalfEven)
		if err != nil {
			return BigDecimal{}, err
		}
		numerator, err := Rescale(n.Add(term), negSp1, HalfEven)
		if err != nil {
			return BigDecimal{}, err
		}
		denom, err := mulRescale(idxDec, xPowIdxMinus1, negSp1, HalfEven)
		if err != nil {
			return BigDecimal{}, err
		}
		xNext, err := CDivide(numerator, denom, sp1, Down)
		if err != nil {
			return BigDecimal{}, err
		}
		diff := xNext.Sub(x)
		if diff.Sign() < 0 {
			diff = diff.Neg()
		}
		x = xNext
		if diff.Cmp(tolerance) <= 0 {
			return Rescale(x, int32(-scale), Down)
		}
	}
	return BigDecimal{}, newErr(Arithmetic, "IntRoot", "did not converge after %d iterations", maxIterations)
}

// Sqrt returns the square root of x to scale digits, via integer Newton
// iteration on n = x*10^(2*scale): initial guess 1 << ceil(bitlen(n)/2),
// an overestimate of sqrt(n) so the iterates decrease monotonically from
// the start, then ix <- (ix + n/ix) >> 1 until the iterate stops decreasing.
func Sqrt(x BigDecimal, scale int) (BigDecimal, error) {
	if err := validateScale("Sqrt", scale, 1); err != nil {
		return BigDecimal{}, err
	}
	if x.Sign() < 0 {
		return BigDecimal{}, newErr(Arithmetic, "Sqrt", "negative argument")
	}
	if x.IsZero() {
		return NewBigDecimal(Zero, int32(-scale)), nil
	}
	shifted, err := x.MovePointRight(2 * scale)
	if err != nil {
		return BigDecimal{}, err
	}
	truncated, err := Rescale(shifted, 0, Down)
	if err != nil {
		return BigDecimal{}, err
	}
	n := truncated.coeff

	shift := (n.BitLength() + 1) / 2
	ix := One.LeftShift(shift)
	for {
		q, err := n.Div(ix)
		if err != nil {
			return BigDecimal{}, err
		}
		next := ix.Add(q).RightShift(1)
		if next.Cmp(ix) >= 0 {
			break
		}
		ix = next
	}
	return NewBigDecimal(ix, int32(-scale)), nil
}

// expTaylor accumulates sum = 1 + x + x^2/2! + x^3/3! + ..., rescaling every
// term and partial sum to exponent -scale under HalfEven, stopping once the
// sum stops changing.
func expTaylor(x BigDecimal, scale int) (BigDecimal, error) {
	negExp := int32(-scale)
	sum, err := Rescale(DecimalOne, negExp, HalfEven)
	if err != nil {
		return BigDecimal{}, err
	}
	term := sum
	loop := newConvergenceLoop("expTaylor", scale, 20)
	for i := 1; ; i++ {
		done, err := loop.done(sum)
		if err != nil {
			return BigDecimal{}, err
		}
		if done {
			return sum, nil
		}
		term, err = term.Mul(x)
		if err != nil {
			return BigDecimal{}, err
		}
		term, err = CDivide(term, decimalFromInt(i), scale, HalfEven)
		if err != nil {
			return BigDecimal{}, err
		}
		sum = sum.Add(term)
	}
}

// Exp returns e^x to scale digits: x=0 -> 1, x<0 -> 1/Exp(-x,scale).
// Otherwise splits x into integer part xw and fractional remainder xf,
// computes a Taylor series on a reduced argument z = 1+xf/xw and raises it
// to the xw-th power via IntPower (chunked for xw beyond int64 range).
func Exp(x BigDecimal, scale int) (BigDecimal, error) {
	if err := validateScale("Exp", scale, 1); err != nil {
		return BigDecimal{}, err
	}
	if x.IsZero() {
		return DecimalOne, nil
	}
	if x.Sign() < 0 {
		e, err := Exp(x.Neg(), scale)
		if err != nil {
			return BigDecimal{}, err
		}
		return CDivide(DecimalOne, e, scale, HalfEven)
	}
	xw, err := Rescale(x, 0, Down)
	if err != nil {
		return BigDecimal{}, err
	}
	if xw.IsZero() {
		return expTaylor(x, scale)
	}
	xf := x.Sub(xw)
	frac, err := CDivide(xf, xw, scale+1, HalfEven)
	if err != nil {
		return BigDecimal{}, err
	}
	z := DecimalOne.Add(frac)
	t, err := expTaylor(z, scale)
	if err != nil {
		return BigDecimal{}, err
	}
	return intPowerBig(t, xw.coeff, scale)
}

// integerDigitCount returns the number of digits to the left of the
// decimal point in x (0 if |x| < 1).
func integerDigitCount(x BigDecimal) int {
	adjusted := int(x.exp) + x.Precision() - 1
	if adjusted < 0 {
		return 0
	}
	return adjusted + 1
}

// Ln returns the natural log of x to scale digits. Values with three or
// more integer digits are reduced via IntRoot (ln(x) = k*ln(x^(1/k))) until
// a direct Newton iteration on e^y - x = 0 converges quickly.
func Ln(x BigDecimal, scale int) (BigDecimal, error) {
	if err := validateScale("Ln", scale, 1); err != nil {
		return BigDecimal{}, err
	}
	if x.Sign() <= 0 {
		return BigDecimal{}, newErr(Arithmetic, "Ln", "argument must be positive")
	}
	mag := integerDigitCount(x)
	if mag >= 3 {
		root, err := IntRoot(x, mag, scale+1)
		if err != nil {
			return BigDecimal{}, err
		}
		lnRoot, err := Ln(root, scale+1)
		if err != nil {
			return BigDecimal{}, err
		}
		return mulRescale(decimalFromInt(mag), lnRoot, int32(-scale), HalfEven)
	}
	return lnNewton(x, scale)
}

func lnNewton(n BigDecimal, scale int) (BigDecimal, error) {
	sp1 := scale + 1
	negSp1 := int32(-sp1)
	tolerance := NewBigDecimal(Five, int32(-sp1))

	seed := math.Log(decimalToFloat64(n))
	if math.IsNaN(seed) || math.IsInf(seed, 0) {
		seed = 0
	}
	y, err := bigDecimalFromFloat64(seed, negSp1)
	if err != nil {
		return BigDecimal{}, err
	}

	loop := newConvergenceLoop("Ln", sp1, 20)
	for {
		ey, err := Exp(y, sp1)
		if err != nil {
			return BigDecimal{}, err
		}
		numerator := ey.Sub(n)
		term, err := CDivide(numerator, ey, sp1, Down)
		if err != nil {
			return BigDecimal{}, err
		}
		y = y.Sub(term)
		absTerm := term
		if absTerm.Sign() < 0 {
			absTerm = absTerm.Neg()
		}
		if absTerm.Cmp(tolerance) <= 0 {
			return Rescale(y, int32(-scale), HalfEven)
		}
		if done, err := loop.done(y); err != nil {
			return BigDecimal{}, err
		} else if done {
			return Rescale(y, int32(-scale), HalfEven)
		}
	}
}

// decimalToFloat64 and bigDecimalFromFloat64 are only used to seed Newton's
// method with a rough starting estimate; the iteration itself refines to
// full requested precision regardless of seed accuracy.
func decimalToFloat64(v BigDecimal) float64 {
	f, _ := strconv.ParseFloat(v.ToScientificString(nil), 64)
	return f
}

func bigDecimalFromFloat64(f float64, exp int32) (BigDecimal, error) {
	s := strconv.FormatFloat(f, 'f', 17, 64)
	d, err := ParseBigDecimal(s, nil)
	if err != nil {
		return BigDecimal{}, err
	}
	return Rescale(d, exp, HalfEven)
}
