package bignumberx

// DecimalChain carries a running BigDecimal value through a sequence of
// operations, collecting the first error and skipping every operation after
// it. Intended for call sites that perform many operations in a row and
// want a single error check at the end, rather than threading (value, err)
// through each step by hand.
type DecimalChain struct {
	Value BigDecimal
	Err   error
}

// NewDecimalChain starts a chain at v.
func NewDecimalChain(v BigDecimal) *DecimalChain {
	return &DecimalChain{Value: v}
}

func (c *DecimalChain) Add(x BigDecimal) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value = c.Value.Add(x)
	return c
}

func (c *DecimalChain) Sub(x BigDecimal) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value = c.Value.Sub(x)
	return c
}

func (c *DecimalChain) Neg() *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value = c.Value.Neg()
	return c
}

func (c *DecimalChain) Abs() *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value = c.Value.Abs()
	return c
}

func (c *DecimalChain) Mul(x BigDecimal) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = c.Value.Mul(x)
	return c
}

func (c *DecimalChain) MulContext(x BigDecimal, ctx MathContext) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = c.Value.MulContext(x, ctx)
	return c
}

func (c *DecimalChain) Divide(x BigDecimal) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = c.Value.Divide(x)
	return c
}

func (c *DecimalChain) DivideContext(x BigDecimal, ctx MathContext) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = c.Value.DivideContext(x, ctx)
	return c
}

func (c *DecimalChain) DivideInteger(x BigDecimal) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = c.Value.DivideInteger(x)
	return c
}

func (c *DecimalChain) Modulus(x BigDecimal) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = c.Value.Modulus(x)
	return c
}

func (c *DecimalChain) Power(n int) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = c.Value.Power(n)
	return c
}

func (c *DecimalChain) PowerContext(n int, ctx MathContext) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = c.Value.PowerContext(n, ctx)
	return c
}

func (c *DecimalChain) Round(ctx MathContext) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = Round(c.Value, ctx)
	return c
}

func (c *DecimalChain) Rescale(newExp int32, mode RoundingMode) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = Rescale(c.Value, newExp, mode)
	return c
}

func (c *DecimalChain) Sqrt(scale int) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = Sqrt(c.Value, scale)
	return c
}

func (c *DecimalChain) IntRoot(idx, scale int) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = IntRoot(c.Value, idx, scale)
	return c
}

func (c *DecimalChain) Exp(scale int) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = Exp(c.Value, scale)
	return c
}

func (c *DecimalChain) Ln(scale int) *DecimalChain {
	if c.Err != nil {
		return c
	}
	c.Value, c.Err = Ln(c.Value, scale)
	return c
}

// Cmp returns 0 if Err is already set, else c.Value.Cmp(x).
func (c *DecimalChain) Cmp(x BigDecimal) int {
	if c.Err != nil {
		return 0
	}
	return c.Value.Cmp(x)
}
