package bignumberx

// RoundingMode selects how DivideWithRounding and
// BigDecimal's context-governed operations resolve a non-terminating or
// over-precise division.
type RoundingMode int

const (
	// Up rounds away from zero.
	Up RoundingMode = iota
	// Down rounds toward zero (truncation).
	Down
	// Ceiling rounds toward +infinity.
	Ceiling
	// Floor rounds toward -infinity.
	Floor
	// HalfUp rounds to the nearest neighbor, ties away from zero.
	HalfUp
	// HalfDown rounds to the nearest neighbor, ties toward zero.
	HalfDown
	// HalfEven rounds to the nearest neighbor, ties to the even neighbor.
	HalfEven
	// Unnecessary asserts that no rounding is required; a non-zero
	// remainder fails with Arithmetic.
	Unnecessary
)

func (m RoundingMode) String() string {
	switch m {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Ceiling:
		return "Ceiling"
	case Floor:
		return "Floor"
	case HalfUp:
		return "HalfUp"
	case HalfDown:
		return "HalfDown"
	case HalfEven:
		return "HalfEven"
	case Unnecessary:
		return "Unnecessary"
	default:
		return "Unknown"
	}
}

// DivideWithRounding computes q0, r = divrem(x, y), then increments |q0|
// away from zero according to mode whenever r is non-zero. This is the
// single decision point shared by BigInt's rounding division and
// BigDecimal's division path.
func DivideWithRounding(x, y BigInt, mode RoundingMode) (BigInt, error) {
	q0, r, err := x.DivRem(y)
	if err != nil {
		return BigInt{}, err
	}
	if r.sign == 0 {
		return q0, nil
	}

	inc, err := shouldIncrement(q0, r, y, mode)
	if err != nil {
		return BigInt{}, err
	}
	if !inc {
		return q0, nil
	}
	if q0.sign < 0 || (q0.sign == 0 && int(x.sign)*int(y.sign) < 0) {
		return q0.Sub(One), nil
	}
	return q0.Add(One), nil
}

func shouldIncrement(q0, r, y BigInt, mode RoundingMode) (bool, error) {
	switch mode {
	case Unnecessary:
		return false, newErr(Arithmetic, "DivideWithRounding", "rounding necessary under Unnecessary mode")
	case Ceiling:
		// r carries x's sign, so r.sign*y.sign is the sign of the exact
		// quotient, even when the truncated q0 is zero.
		return int(r.sign)*int(y.sign) > 0, nil
	case Floor:
		return int(r.sign)*int(y.sign) < 0, nil
	case Down:
		return false, nil
	case Up:
		return true, nil
	case HalfDown, HalfUp, HalfEven:
		abs2r := r.Abs().LeftShift(1)
		absY := y.Abs()
		cmp := abs2r.Cmp(absY)
		switch mode {
		case HalfDown:
			return cmp > 0, nil
		case HalfUp:
			return cmp >= 0, nil
		default: // HalfEven
			if cmp > 0 {
				return true, nil
			}
			if cmp < 0 {
				return false, nil
			}
			return isOddMagnitude(q0), nil
		}
	default:
		return false, newErr(InvalidOperation, "DivideWithRounding", "unknown rounding mode %d", mode)
	}
}

func isOddMagnitude(x BigInt) bool {
	if len(x.mag) == 0 {
		return false
	}
	return x.mag[0]&1 == 1
}
