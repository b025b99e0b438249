// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file is adapted from https://github.com/robpike/ivy/blob/master/value/loop.go.

package bignumberx

// convergenceLoop is the stall/iteration-budget guard shared by Exp and Ln:
// it stops once successive iterates stop changing (or oscillate between the
// same two values, which happens near the precision limit), and fails if
// neither happens within a budget scaled to the target precision.
type convergenceLoop struct {
	name          string
	maxIterations int
	i             int
	started       bool
	havePrevDelta bool
	prevZ         BigDecimal
	prevDelta     BigDecimal
	stallCount    int
}

// newConvergenceLoop returns a loop checker budgeted for itersPerDigit
// iterations per digit of scale, plus a small constant floor.
func newConvergenceLoop(name string, scale int, itersPerDigit int) *convergenceLoop {
	return &convergenceLoop{
		name:          name,
		maxIterations: 10 + itersPerDigit*scale,
	}
}

// done reports whether z has converged. If it has not converged within the
// iteration budget, it returns an error.
func (l *convergenceLoop) done(z BigDecimal) (bool, error) {
	if !l.started {
		l.started = true
		l.prevZ = z
		l.i++
		return false, nil
	}

	delta := z.Sub(l.prevZ)
	if delta.IsZero() {
		return true, nil
	}
	if delta.Sign() < 0 {
		delta = delta.Neg()
	}
	if l.havePrevDelta && delta.Equal(l.prevDelta) {
		// Convergence can oscillate between the same two values when the
		// calculation is nearly done and precision is exhausted.
		l.stallCount++
		if l.stallCount > 3 {
			return true, nil
		}
	} else {
		l.stallCount = 0
	}

	l.i++
	if l.i >= l.maxIterations {
		return false, newErr(Arithmetic, l.name, "did not converge after %d iterations", l.maxIterations)
	}
	l.prevDelta = delta
	l.havePrevDelta = true
	l.prevZ = z
	return false, nil
}
