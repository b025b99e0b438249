package bignumberx

import "github.com/izarchtech/bignumberx/internal/magnitude"

// Bitwise operations treat BigInt as an infinite two's-complement bit
// stream: non-negative values sign-extend with 0 bits, negative values
// sign-extend with 1 bits. twosComplementWords materializes n little-endian
// words of that stream.
func twosComplementWords(x BigInt, n int) []uint32 {
	out := make([]uint32, n)
	if x.sign >= 0 {
		for i := 0; i < n && i < len(x.mag); i++ {
			out[i] = x.mag[i]
		}
		return out
	}
	seenNonZero := false
	for i := 0; i < n; i++ {
		var w uint32
		if i < len(x.mag) {
			w = x.mag[i]
		}
		if !seenNonZero {
			if w != 0 {
				w = -w
				seenNonZero = true
			}
		} else {
			w = ^w
		}
		out[i] = w
	}
	return out
}

// twosComplementWordAt returns the i-th little-endian two's-complement word
// of a negative value's magnitude without materializing the whole stream,
// used by TestBit for arbitrarily large bit indices.
func twosComplementWordAt(mag magnitude.Mag, i int) uint32 {
	firstNZ := -1
	for idx, w := range mag {
		if w != 0 {
			firstNZ = idx
			break
		}
	}
	if firstNZ == -1 || i < firstNZ {
		return 0
	}
	if i == firstNZ {
		return -mag[i]
	}
	if i < len(mag) {
		return ^mag[i]
	}
	return 0xFFFFFFFF
}

// fromTwosComplementWords rebuilds a BigInt from a little-endian
// two's-complement word stream whose final word is a pure sign-extension
// word (all zero or all one), i.e. the caller reserved a guard word beyond
// anything it mutated.
func fromTwosComplementWords(words []uint32) BigInt {
	top := words[len(words)-1]
	if top>>31 == 0 {
		return normalize(1, magnitude.Trim(magnitude.Mag(words)))
	}
	inv := make(magnitude.Mag, len(words))
	for i, w := range words {
		inv[i] = ^w
	}
	mag := magnitude.Add(inv, magnitude.Mag{1})
	return normalize(-1, mag)
}

func bitwiseCombine(a, b BigInt, op func(x, y uint32) uint32, negOp func(aNeg, bNeg bool) bool) BigInt {
	n := len(a.mag)
	if len(b.mag) > n {
		n = len(b.mag)
	}
	n++ // guard word for sign detection
	wa := twosComplementWords(a, n)
	wb := twosComplementWords(b, n)
	out := make([]uint32, n)
	for i := range out {
		out[i] = op(wa[i], wb[i])
	}
	if !negOp(a.sign < 0, b.sign < 0) {
		return normalize(1, magnitude.Trim(magnitude.Mag(out)))
	}
	inv := make(magnitude.Mag, n)
	for i, w := range out {
		inv[i] = ^w
	}
	mag := magnitude.Add(inv, magnitude.Mag{1})
	return normalize(-1, mag)
}

// And returns the bitwise AND of x and y under two's-complement semantics.
func (x BigInt) And(y BigInt) BigInt {
	return bitwiseCombine(x, y, func(a, b uint32) uint32 { return a & b }, func(a, b bool) bool { return a && b })
}

// Or returns the bitwise OR of x and y.
func (x BigInt) Or(y BigInt) BigInt {
	return bitwiseCombine(x, y, func(a, b uint32) uint32 { return a | b }, func(a, b bool) bool { return a || b })
}

// Xor returns the bitwise XOR of x and y.
func (x BigInt) Xor(y BigInt) BigInt {
	return bitwiseCombine(x, y, func(a, b uint32) uint32 { return a ^ b }, func(a, b bool) bool { return a != b })
}

// AndNot returns x & ^y.
func (x BigInt) AndNot(y BigInt) BigInt {
	return bitwiseCombine(x, y, func(a, b uint32) uint32 { return a &^ b }, func(a, b bool) bool { return a && !b })
}

// Not returns ^x, i.e. -(x+1).
func (x BigInt) Not() BigInt {
	return x.Add(One).Neg()
}

// TestBit reports whether bit n (0-based, LSB first, two's-complement view)
// is set. n < 0 fails with Arithmetic.
func (x BigInt) TestBit(n int) (bool, error) {
	if n < 0 {
		return false, newErr(Arithmetic, "TestBit", "negative bit index %d", n)
	}
	word := n / 32
	if x.sign >= 0 {
		if word >= len(x.mag) {
			return false, nil
		}
		return x.mag[word]&(1<<uint(n%32)) != 0, nil
	}
	w := twosComplementWordAt(x.mag, word)
	return w&(1<<uint(n%32)) != 0, nil
}

func (x BigInt) bitMutate(n int, mutate func(words []uint32, word, bit int)) (BigInt, error) {
	if n < 0 {
		return BigInt{}, newErr(Arithmetic, "bit index", "negative bit index %d", n)
	}
	word := n / 32
	size := word + 1
	if len(x.mag)+1 > size {
		size = len(x.mag) + 1
	}
	size++ // guard word, never mutated
	words := twosComplementWords(x, size)
	mutate(words, word, n%32)
	return fromTwosComplementWords(words), nil
}

// SetBit returns x with bit n set. n < 0 fails with Arithmetic.
func (x BigInt) SetBit(n int) (BigInt, error) {
	return x.bitMutate(n, func(words []uint32, word, bit int) {
		words[word] |= 1 << uint(bit)
	})
}

// ClearBit returns x with bit n cleared. n < 0 fails with Arithmetic.
func (x BigInt) ClearBit(n int) (BigInt, error) {
	return x.bitMutate(n, func(words []uint32, word, bit int) {
		words[word] &^= 1 << uint(bit)
	})
}

// FlipBit returns x with bit n flipped. n < 0 fails with Arithmetic.
func (x BigInt) FlipBit(n int) (BigInt, error) {
	return x.bitMutate(n, func(words []uint32, word, bit int) {
		words[word] ^= 1 << uint(bit)
	})
}

// BitLength returns the number of bits in the minimal two's-complement
// representation of x, excluding the sign bit (0 for zero). Negative values
// that are an exact power of two return one less than the corresponding
// positive value.
func (x BigInt) BitLength() int {
	bl := magnitude.BitLen(x.mag)
	if x.sign < 0 && magnitude.PopCount(x.mag) == 1 {
		bl--
	}
	return bl
}

// BitCount returns the population count of x's two's-complement
// representation: the number of set bits for non-negative x, or
// popcount(magnitude) + trailingZeroBits - 1 for negative x (the number of
// zero bits is what's finite in that case, mirrored here per the spec).
func (x BigInt) BitCount() int {
	if x.sign >= 0 {
		return magnitude.PopCount(x.mag)
	}
	return magnitude.PopCount(x.mag) + magnitude.TrailingZeroBits(x.mag) - 1
}

// LeftShift returns x << bits (bits >= 0; negative bits delegates to
// RightShift).
func (x BigInt) LeftShift(bits int) BigInt {
	if bits < 0 {
		return x.RightShift(-bits)
	}
	if bits == 0 || x.sign == 0 {
		return x
	}
	return normalize(int(x.sign), magnitude.LeftShift(x.mag, uint(bits)))
}

// RightShift returns x >> bits, arithmetic (sign-preserving): a negative x
// shifted by at least its bit length yields -1, matching two's-complement
// right shift. Negative bits delegates to LeftShift.
func (x BigInt) RightShift(bits int) BigInt {
	if bits < 0 {
		return x.LeftShift(-bits)
	}
	if bits == 0 || x.sign == 0 {
		return x
	}
	if x.sign > 0 {
		return normalize(1, magnitude.RightShift(x.mag, uint(bits)))
	}
	// Negative: shift the two's-complement view, which is equivalent to
	// ~((~x) >> bits) since ~x is non-negative.
	return x.Not().RightShift(bits).Not()
}
