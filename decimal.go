// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bignumberx

import (
	"math"
	"strings"
)

// BigDecimal is an immutable arbitrary-precision decimal. Its value is
// Coefficient * 10^Exponent. The zero value is 0 at exponent 0.
type BigDecimal struct {
	coeff BigInt
	exp   int32
}

// DecimalZero is the BigDecimal 0 at exponent 0.
var DecimalZero = BigDecimal{coeff: Zero, exp: 0}

// DecimalOne is the BigDecimal 1 at exponent 0.
var DecimalOne = BigDecimal{coeff: One, exp: 0}

// NewBigDecimal constructs coeff * 10^exp directly, with no rounding.
func NewBigDecimal(coeff BigInt, exp int32) BigDecimal {
	return BigDecimal{coeff: coeff, exp: exp}
}

// Coefficient returns v's unscaled coefficient.
func (v BigDecimal) Coefficient() BigInt { return v.coeff }

// Exponent returns v's exponent.
func (v BigDecimal) Exponent() int32 { return v.exp }

// Sign returns -1, 0, or +1.
func (v BigDecimal) Sign() int { return v.coeff.Sign() }

// IsZero reports whether v is 0.
func (v BigDecimal) IsZero() bool { return v.coeff.IsZero() }

// Precision returns the number of decimal digits in the coefficient; it is
// always recomputed from the coefficient rather than cached, so that the
// value remains trivially safe to share across goroutines without any
// interior mutation.
func (v BigDecimal) Precision() int { return v.coeff.Precision() }

// clampExponent evaluates a candidate exponent as i64 and narrows to i32.
// Narrowing that would change the value fails with Overflow, except when
// the coefficient is zero, in which case the exponent clamps to
// math.MinInt32/MaxInt32 with the sign of the candidate.
func clampExponent(op string, candidate int64, coeffIsZero bool) (int32, error) {
	if candidate >= math.MinInt32 && candidate <= math.MaxInt32 {
		return int32(candidate), nil
	}
	if coeffIsZero {
		if candidate > 0 {
			return math.MaxInt32, nil
		}
		return math.MinInt32, nil
	}
	return 0, newErr(Overflow, op, "exponent %d overflows int32", candidate)
}

// pow10 returns 10^n for n >= 0.
func pow10(n int64) BigInt {
	if n <= 0 {
		return One
	}
	result, err := Ten.Power(int(n))
	if err != nil {
		panic(err) // unreachable: n is always non-negative here
	}
	return result
}

func ceilDiv(a, b int64) int64 { return (a + b - 1) / b }

func decimalDigitsOf(n int) int { return FromInt64(int64(n)).Precision() }

// align rescales the operand with the larger exponent up to match the
// smaller, returning both coefficients and the shared exponent.
func align(a, b BigDecimal) (ca, cb BigInt, exp int32) {
	if a.exp <= b.exp {
		cb = b.coeff.Mul(pow10(int64(b.exp) - int64(a.exp)))
		return a.coeff, cb, a.exp
	}
	ca = a.coeff.Mul(pow10(int64(a.exp) - int64(b.exp)))
	return ca, b.coeff, b.exp
}

// Add returns a+b. The result's exponent is min(a.exp, b.exp).
func (a BigDecimal) Add(b BigDecimal) BigDecimal {
	ca, cb, exp := align(a, b)
	return BigDecimal{coeff: ca.Add(cb), exp: exp}
}

// Sub returns a-b.
func (a BigDecimal) Sub(b BigDecimal) BigDecimal {
	return a.Add(b.Neg())
}

// Neg returns -a.
func (a BigDecimal) Neg() BigDecimal {
	return BigDecimal{coeff: a.coeff.Neg(), exp: a.exp}
}

// Abs returns |a|.
func (a BigDecimal) Abs() BigDecimal {
	if a.coeff.Sign() < 0 {
		return a.Neg()
	}
	return a
}

// Mul returns a*b exactly: no alignment, no rounding. (a*b).exp = a.exp+b.exp.
func (a BigDecimal) Mul(b BigDecimal) (BigDecimal, error) {
	coeff := a.coeff.Mul(b.coeff)
	exp, err := clampExponent("Mul", int64(a.exp)+int64(b.exp), coeff.IsZero())
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{coeff: coeff, exp: exp}, nil
}

// MulContext returns Round(a.Mul(b), ctx): the context-governed multiply
// used internally by PowerContext's binary exponentiation.
func (a BigDecimal) MulContext(b BigDecimal, ctx MathContext) (BigDecimal, error) {
	m, err := a.Mul(b)
	if err != nil {
		return BigDecimal{}, err
	}
	return Round(m, ctx)
}

// Cmp compares a and b by value (after exponent alignment): -1, 0, +1.
func (a BigDecimal) Cmp(b BigDecimal) int {
	ca, cb, _ := align(a, b)
	return ca.Cmp(cb)
}

// Equal reports value AND exponent equality, so 1.0 != 1.00.
func (a BigDecimal) Equal(b BigDecimal) bool {
	return a.exp == b.exp && a.coeff.Equal(b.coeff)
}

// Rescale returns v adjusted to exponent newExp, rounding under mode if
// digits would be lost. Identity when newExp == v.exp.
func Rescale(v BigDecimal, newExp int32, mode RoundingMode) (BigDecimal, error) {
	if newExp == v.exp {
		return v, nil
	}
	if v.coeff.IsZero() {
		return BigDecimal{coeff: Zero, exp: newExp}, nil
	}
	if newExp > v.exp {
		// Losing digits: divide the coefficient down by the power of ten
		// that separates the two exponents, rounding under mode. This also
		// correctly handles the case where the decrease exceeds v's own
		// precision (RoundingEngine naturally produces 0 or +-1).
		decrease := int64(newExp) - int64(v.exp)
		q, err := DivideWithRounding(v.coeff, pow10(decrease), mode)
		if err != nil {
			return BigDecimal{}, err
		}
		return BigDecimal{coeff: q, exp: newExp}, nil
	}
	// Gaining digits: multiply up, exact, no rounding possible.
	delta := int64(v.exp) - int64(newExp)
	return BigDecimal{coeff: v.coeff.Mul(pow10(delta)), exp: newExp}, nil
}

// Quantize returns a rescaled to b's exponent.
func Quantize(a, b BigDecimal, mode RoundingMode) (BigDecimal, error) {
	return Rescale(a, b.exp, mode)
}

// Round drops least-significant decimal digits from v's coefficient until
// its precision no longer exceeds ctx.Precision (a no-op when ctx.Precision
// is 0, meaning unlimited).
func Round(v BigDecimal, ctx MathContext) (BigDecimal, error) {
	if ctx.Precision == 0 {
		return v, nil
	}
	prec := int64(v.Precision())
	if prec <= int64(ctx.Precision) {
		return v, nil
	}
	drop := prec - int64(ctx.Precision)
	coeff, err := DivideWithRounding(v.coeff, pow10(drop), ctx.Mode)
	if err != nil {
		return BigDecimal{}, err
	}
	exp, err := clampExponent("Round", int64(v.exp)+drop, coeff.IsZero())
	if err != nil {
		return BigDecimal{}, err
	}
	result := BigDecimal{coeff: coeff, exp: exp}
	// Rounding can promote the digit count (e.g. 999 -> 1000): recurse once
	// more to drop the carried-out digit.
	if int64(result.Precision()) > int64(ctx.Precision) {
		return Round(result, ctx)
	}
	return result, nil
}

// StripTrailingZeros repeatedly divides the coefficient by ten while the
// remainder is zero, incrementing the exponent each time.
func (v BigDecimal) StripTrailingZeros() BigDecimal {
	result := v
	for {
		stripped, ok := tryStripOneZero(result)
		if !ok {
			return result
		}
		result = stripped
	}
}

func tryStripOneZero(v BigDecimal) (BigDecimal, bool) {
	if v.coeff.IsZero() {
		return v, false
	}
	q, r, err := v.coeff.DivRem(Ten)
	if err != nil || !r.IsZero() {
		return v, false
	}
	exp, err := clampExponent("StripTrailingZeros", int64(v.exp)+1, q.IsZero())
	if err != nil {
		return v, false
	}
	return BigDecimal{coeff: q, exp: exp}, true
}

// MovePointRight returns v with its decimal point moved n places right
// (exponent increases by n); n may be negative to move left.
func (v BigDecimal) MovePointRight(n int) (BigDecimal, error) {
	exp, err := clampExponent("MovePointRight", int64(v.exp)+int64(n), v.coeff.IsZero())
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{coeff: v.coeff, exp: exp}, nil
}

// MovePointLeft returns v with its decimal point moved n places left.
func (v BigDecimal) MovePointLeft(n int) (BigDecimal, error) {
	return v.MovePointRight(-n)
}

func workingDivisionPrecision(xprec, yprec int) uint32 {
	v := int64(xprec) + ceilDiv(int64(yprec)*10, 3)
	if v > math.MaxInt32 {
		v = math.MaxInt32
	}
	if v < 1 {
		v = 1
	}
	return uint32(v)
}

// Divide returns a/b with no caller-supplied context: an exact result at
// the preferred exponent (a.exp - b.exp), rescaled down from an elevated
// working precision. Fails with Arithmetic if the division does not
// terminate in that working precision (a non-terminating decimal
// expansion) or if b is zero.
func (a BigDecimal) Divide(b BigDecimal) (BigDecimal, error) {
	if b.coeff.IsZero() {
		return BigDecimal{}, newErr(Arithmetic, "Divide", "division by zero")
	}
	preferredExp, err := clampExponent("Divide", int64(a.exp)-int64(b.exp), false)
	if err != nil {
		return BigDecimal{}, err
	}
	working := MathContext{Precision: workingDivisionPrecision(a.Precision(), b.Precision()), Mode: Unnecessary}
	result, err := a.DivideContext(b, working)
	if err != nil {
		if IsKind(err, Arithmetic) {
			return BigDecimal{}, newErr(Arithmetic, "Divide", "non-terminating decimal expansion; no exact representable result")
		}
		return BigDecimal{}, err
	}
	if int64(result.exp) > int64(preferredExp) {
		result, err = Rescale(result, preferredExp, Unnecessary)
		if err != nil {
			return BigDecimal{}, err
		}
	}
	return result, nil
}

func lessScaled(xAbs, yAbs BigInt, xprec, yprec int) bool {
	switch {
	case xprec < yprec:
		return xAbs.Mul(pow10(int64(yprec - xprec))).Cmp(yAbs) < 0
	case yprec < xprec:
		return xAbs.Cmp(yAbs.Mul(pow10(int64(xprec - yprec)))) < 0
	default:
		return xAbs.Cmp(yAbs) < 0
	}
}

// DivideContext returns a/b rounded under ctx. A zero ctx.Precision
// delegates to the exact, context-free Divide.
func (a BigDecimal) DivideContext(b BigDecimal, ctx MathContext) (BigDecimal, error) {
	if b.coeff.IsZero() {
		return BigDecimal{}, newErr(Arithmetic, "Divide", "division by zero")
	}
	if ctx.Precision == 0 {
		return a.Divide(b)
	}

	xprec := a.Precision()
	yprec := b.Precision()
	x := a.coeff
	y := b.coeff
	adjust := int64(0)
	if !lessScaled(x.Abs(), y.Abs(), xprec, yprec) {
		y = y.Mul(Ten)
		adjust = 1
	}
	delta := int64(ctx.Precision) - (int64(xprec) - int64(yprec))
	if delta > 0 {
		x = x.Mul(pow10(delta))
	} else if delta < 0 {
		y = y.Mul(pow10(-delta))
	}

	q, err := DivideWithRounding(x, y, ctx.Mode)
	if err != nil {
		return BigDecimal{}, err
	}

	preferredRaw := int64(a.exp) - int64(b.exp)
	exp, err := clampExponent("Divide", preferredRaw-delta+adjust, q.IsZero())
	if err != nil {
		return BigDecimal{}, err
	}
	result := BigDecimal{coeff: q, exp: exp}

	result, err = Round(result, ctx)
	if err != nil {
		return BigDecimal{}, err
	}

	if product, merr := result.Mul(b); merr == nil && product.Cmp(a) == 0 {
		for int64(result.exp) < preferredRaw {
			stripped, ok := tryStripOneZero(result)
			if !ok {
				break
			}
			result = stripped
		}
	}
	return result, nil
}

// DivideInteger returns the truncated integer part of a/b at exponent 0,
// except that when the preferred exponent a.exp-b.exp is positive, trailing
// zeros are stripped to raise the exponent toward it.
func (a BigDecimal) DivideInteger(b BigDecimal) (BigDecimal, error) {
	if b.coeff.IsZero() {
		return BigDecimal{}, newErr(Arithmetic, "DivideInteger", "division by zero")
	}
	xprec := int64(a.Precision())
	yprec := int64(b.Precision())
	diffExp := int64(a.exp) - int64(b.exp)
	if diffExp < 0 {
		diffExp = -diffExp
	}
	wp := ceilDiv(yprec*10, 3) + xprec + diffExp
	if wp > math.MaxInt32 {
		wp = math.MaxInt32
	}
	if wp < 1 {
		wp = 1
	}
	q, err := a.DivideContext(b, MathContext{Precision: uint32(wp), Mode: Down})
	if err != nil {
		return BigDecimal{}, err
	}
	result, err := Rescale(q, 0, Down)
	if err != nil {
		return BigDecimal{}, err
	}
	preferredRaw := int64(a.exp) - int64(b.exp)
	for int64(result.exp) < preferredRaw {
		stripped, ok := tryStripOneZero(result)
		if !ok {
			break
		}
		result = stripped
	}
	return result, nil
}

// Modulus returns a - (a.DivideInteger(b) * b).
func (a BigDecimal) Modulus(b BigDecimal) (BigDecimal, error) {
	q, err := a.DivideInteger(b)
	if err != nil {
		return BigDecimal{}, err
	}
	prod, err := q.Mul(b)
	if err != nil {
		return BigDecimal{}, err
	}
	return a.Sub(prod), nil
}

// Power returns v^n exactly (no context): 0 <= n <= 999999999.
func (v BigDecimal) Power(n int) (BigDecimal, error) {
	if n < 0 || n > 999999999 {
		return BigDecimal{}, newErr(OutOfRange, "Power", "exponent %d out of range [0, 999999999]", n)
	}
	coeff, err := v.coeff.Power(n)
	if err != nil {
		return BigDecimal{}, err
	}
	exp, err := clampExponent("Power", int64(v.exp)*int64(n), coeff.IsZero())
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{coeff: coeff, exp: exp}, nil
}

// PowerContext returns v^n rounded under ctx, n in [-999999999, 999999999].
// Negative n returns 1/v^|n| at an elevated working precision. Binary
// exponentiation multiplies under ctx's rounding mode at that elevated
// precision so intermediate digit growth stays bounded.
func (v BigDecimal) PowerContext(n int, ctx MathContext) (BigDecimal, error) {
	absN := n
	if absN < 0 {
		absN = -absN
	}
	if absN > 999999999 {
		return BigDecimal{}, newErr(OutOfRange, "Power", "exponent magnitude %d exceeds 999999999", absN)
	}
	digitsN := decimalDigitsOf(absN)
	if ctx.Precision > 0 && uint32(digitsN) > ctx.Precision {
		return BigDecimal{}, newErr(OutOfRange, "Power", "exponent requires %d digits, exceeds context precision %d", digitsN, ctx.Precision)
	}
	working := MathContext{Precision: ctx.Precision + uint32(digitsN) + 1, Mode: ctx.Mode}

	acc := DecimalOne
	base := v
	e := absN
	var err error
	for e > 0 {
		if e&1 == 1 {
			acc, err = acc.MulContext(base, working)
			if err != nil {
				return BigDecimal{}, err
			}
		}
		e >>= 1
		if e > 0 {
			base, err = base.MulContext(base, working)
			if err != nil {
				return BigDecimal{}, err
			}
		}
	}
	if n < 0 {
		acc, err = DecimalOne.DivideContext(acc, working)
		if err != nil {
			return BigDecimal{}, err
		}
	}
	return Round(acc, ctx)
}

// ParseBigDecimal parses s as [+-]?INT(.FRAC)?([eE][+-]?EXP)?, with the
// decimal separator supplied by loc (nil uses DotLocale).
func ParseBigDecimal(s string, loc Locale) (BigDecimal, error) {
	sep := separatorOf(loc)
	i := 0
	sign := ""
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = "-"
		}
		i++
	}
	intStart := i
	for i < len(s) && isDecDigit(s[i]) {
		i++
	}
	intPart := s[intStart:i]

	fracPart := ""
	if strings.HasPrefix(s[i:], sep) {
		i += len(sep)
		fracStart := i
		for i < len(s) && isDecDigit(s[i]) {
			i++
		}
		fracPart = s[fracStart:i]
	}

	if intPart == "" && fracPart == "" {
		return BigDecimal{}, newErr(Format, "Parse", "no digits in %q", s)
	}

	var explicitExp int64
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expSign := int64(1)
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				expSign = -1
			}
			i++
		}
		expStart := i
		for i < len(s) && isDecDigit(s[i]) {
			i++
		}
		if i == expStart {
			return BigDecimal{}, newErr(Format, "Parse", "missing exponent digits in %q", s)
		}
		expVal, err := ParseBigInt(s[expStart:i], 10)
		if err != nil {
			return BigDecimal{}, wrapErr(Format, "Parse", err, "invalid exponent")
		}
		ev, ok := expVal.AsInt64()
		if !ok {
			return BigDecimal{}, newErr(Overflow, "Parse", "exponent too large in %q", s)
		}
		explicitExp = expSign * ev
	}

	if i != len(s) {
		return BigDecimal{}, newErr(Format, "Parse", "unexpected trailing characters in %q", s)
	}

	coeff, err := ParseBigInt(sign+intPart+fracPart, 10)
	if err != nil {
		return BigDecimal{}, wrapErr(Format, "Parse", err, "invalid coefficient")
	}

	intCount := int64(len(intPart))
	totalPrecision := intCount + int64(len(fracPart))
	exp, err := clampExponent("Parse", intCount-totalPrecision+explicitExp, coeff.IsZero())
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{coeff: coeff, exp: exp}, nil
}

func isDecDigit(b byte) bool { return b >= '0' && b <= '9' }

// ToScientificString formats v per §4.5: plain notation when exponent <= 0
// and the adjusted exponent is >= -6, otherwise exponential notation with
// exactly one digit before the separator.
func (v BigDecimal) ToScientificString(loc Locale) string {
	sep := separatorOf(loc)
	sign := ""
	if v.coeff.Sign() < 0 {
		sign = "-"
	}
	digits := v.coeff.Abs().String()
	l := int64(len(digits))
	e := int64(v.exp)
	adjusted := e + l - 1

	if e <= 0 && adjusted >= -6 {
		negExp := -e
		if negExp == 0 {
			return sign + digits
		}
		pointPos := l - negExp
		if pointPos > 0 {
			return sign + digits[:pointPos] + sep + digits[pointPos:]
		}
		return sign + "0" + sep + strings.Repeat("0", int(-pointPos)) + digits
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte(digits[0])
	if l > 1 {
		b.WriteString(sep)
		b.WriteString(digits[1:])
	}
	b.WriteByte('E')
	if adjusted >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(FromInt64(adjusted).String())
	return b.String()
}

// ToPlainString formats v without ever using exponential notation.
func (v BigDecimal) ToPlainString(loc Locale) string {
	sep := separatorOf(loc)
	sign := ""
	if v.coeff.Sign() < 0 {
		sign = "-"
	}
	digits := v.coeff.Abs().String()
	e := int64(v.exp)
	if e >= 0 {
		return sign + digits + strings.Repeat("0", int(e))
	}
	l := int64(len(digits))
	negExp := -e
	pointPos := l - negExp
	if pointPos > 0 {
		return sign + digits[:pointPos] + sep + digits[pointPos:]
	}
	return sign + "0" + sep + strings.Repeat("0", int(-pointPos)) + digits
}

// String formats v via ToScientificString with the default locale.
func (v BigDecimal) String() string {
	return v.ToScientificString(nil)
}
