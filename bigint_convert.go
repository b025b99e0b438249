package bignumberx

import (
	"math"

	"github.com/izarchtech/bignumberx/internal/magnitude"
)

// FromInt64 constructs a BigInt from a signed 64-bit integer.
func FromInt64(v int64) BigInt {
	if v == 0 {
		return BigInt{}
	}
	sign := 1
	u := uint64(v)
	if v < 0 {
		sign = -1
		u = uint64(-(v + 1)) + 1 // avoids overflow on math.MinInt64
	}
	return normalize(sign, magFromUint64(u))
}

// FromUint64 constructs a BigInt from an unsigned 64-bit integer.
func FromUint64(v uint64) BigInt {
	if v == 0 {
		return BigInt{}
	}
	return normalize(1, magFromUint64(v))
}

// FromInt32 constructs a BigInt from a signed 32-bit integer.
func FromInt32(v int32) BigInt { return FromInt64(int64(v)) }

// FromUint32 constructs a BigInt from an unsigned 32-bit integer.
func FromUint32(v uint32) BigInt { return FromUint64(uint64(v)) }

func magFromUint64(u uint64) magnitude.Mag {
	if u == 0 {
		return nil
	}
	lo := uint32(u)
	hi := uint32(u >> 32)
	if hi == 0 {
		return magnitude.Mag{lo}
	}
	return magnitude.Mag{lo, hi}
}

// FromBytesTwosComplement constructs a BigInt from a big-endian two's
// complement byte sequence, the same input shape as math/big.Int.SetBytes
// paired with an explicit sign would require, except the sign here is
// taken from the representation itself (bit 7 of the first byte).
func FromBytesTwosComplement(b []byte) BigInt {
	if len(b) == 0 {
		return BigInt{}
	}
	negative := b[0]&0x80 != 0
	if !negative {
		return normalize(1, bytesToMag(b))
	}
	// Two's complement negative: invert then add one to recover the
	// magnitude.
	inv := make([]byte, len(b))
	for i, v := range b {
		inv[i] = ^v
	}
	m := bytesToMag(inv)
	m = magnitude.Add(m, magnitude.Mag{1})
	return normalize(-1, m)
}

func bytesToMag(b []byte) magnitude.Mag {
	// b is big-endian bytes; build a little-endian word magnitude.
	n := len(b)
	words := (n + 3) / 4
	m := make(magnitude.Mag, words)
	for i := 0; i < n; i++ {
		byteFromEnd := n - 1 - i
		wordIdx := byteFromEnd / 4
		shift := uint(byteFromEnd%4) * 8
		m[wordIdx] |= uint32(b[i]) << shift
	}
	return magnitude.Trim(m)
}

// FromFloat64 constructs the exact integer truncation of f's underlying
// IEEE-754 representation: the significand (with its implicit leading bit
// restored), shifted by the biased exponent minus 1075. NaN and ±Infinity
// fail with Overflow.
func FromFloat64(f float64) (BigInt, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return BigInt{}, newErr(Overflow, "FromFloat64", "NaN/Infinity has no integer value")
	}
	bits := math.Float64bits(f)
	sign := 1
	if bits>>63 != 0 {
		sign = -1
	}
	biasedExp := int((bits >> 52) & 0x7FF)
	significand := bits & ((1 << 52) - 1)

	if significand == 0 && biasedExp == 0 {
		return BigInt{}, nil
	}

	significand |= 1 << 52
	base := FromUint64(significand)

	shift := biasedExp - 1075
	var v BigInt
	if shift >= 0 {
		v = normalize(1, magnitude.LeftShift(base.mag, uint(shift)))
	} else {
		v = normalize(1, magnitude.RightShift(base.mag, uint(-shift)))
	}
	if v.IsZero() {
		return BigInt{}, nil
	}
	return normalize(sign, v.mag), nil
}

const (
	maxInt64AsU64   = uint64(math.MaxInt64)
	minInt64MagAsU64 = uint64(math.MaxInt64) + 1
)

func magAsUint64(m magnitude.Mag) (uint64, bool) {
	m = magnitude.Trim(m)
	if len(m) > 2 {
		return 0, false
	}
	var v uint64
	if len(m) > 0 {
		v = uint64(m[0])
	}
	if len(m) > 1 {
		v |= uint64(m[1]) << 32
	}
	return v, true
}

func magAsUint32(m magnitude.Mag) (uint32, bool) {
	m = magnitude.Trim(m)
	if len(m) > 1 {
		return 0, false
	}
	if len(m) == 0 {
		return 0, true
	}
	return m[0], true
}

// AsUint64 returns x's value as a uint64 and true if it fits exactly.
func (x BigInt) AsUint64() (uint64, bool) {
	if x.sign < 0 {
		return 0, false
	}
	return magAsUint64(x.mag)
}

// AsInt64 returns x's value as an int64 and true if it fits exactly,
// including the asymmetric range of a signed 64-bit type (math.MinInt64 is
// representable as a negative magnitude of exactly 2^63).
func (x BigInt) AsInt64() (int64, bool) {
	u, ok := magAsUint64(x.mag)
	if !ok {
		return 0, false
	}
	if x.sign >= 0 {
		if u > maxInt64AsU64 {
			return 0, false
		}
		return int64(u), true
	}
	if u > minInt64MagAsU64 {
		return 0, false
	}
	if u == minInt64MagAsU64 {
		return math.MinInt64, true
	}
	return -int64(u), true
}

// AsUint32 returns x's value as a uint32 and true if it fits exactly.
func (x BigInt) AsUint32() (uint32, bool) {
	if x.sign < 0 {
		return 0, false
	}
	return magAsUint32(x.mag)
}

// AsInt32 returns x's value as an int32 and true if it fits exactly,
// including math.MinInt32 as a negative magnitude of exactly 2^31.
func (x BigInt) AsInt32() (int32, bool) {
	u, ok := magAsUint32(x.mag)
	if !ok {
		return 0, false
	}
	if x.sign >= 0 {
		if u > math.MaxInt32 {
			return 0, false
		}
		return int32(u), true
	}
	const minInt32MagAsU32 = uint32(math.MaxInt32) + 1
	if u > minInt32MagAsU32 {
		return 0, false
	}
	if u == minInt32MagAsU32 {
		return math.MinInt32, true
	}
	return -int32(u), true
}
