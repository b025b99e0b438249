// Package radix implements super-radix chunked parsing and formatting for
// arbitrary bases 2..36, the RadixIO component of the numeric core.
package radix

import (
	"math"

	"github.com/pkg/errors"

	"github.com/izarchtech/bignumberx/internal/magnitude"
)

const (
	// MinRadix and MaxRadix bound the supported radixes.
	MinRadix = 2
	MaxRadix = 36

	digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// digitsPerWord[r] is floor(log_r(2^32 - 1)): the number of base-r digits
// that always fit in a single 32-bit word.
var digitsPerWord [MaxRadix + 1]int

// superRadix[r] is r^digitsPerWord[r], the largest power of r that fits in
// a uint32.
var superRadix [MaxRadix + 1]uint32

// bitsPerDigitX1024[r] is ceil(1024 * log2(r)). Parse does not read it:
// its result grows word by word through MulAddWord.
var bitsPerDigitX1024 [MaxRadix + 1]int64

func init() {
	for r := MinRadix; r <= MaxRadix; r++ {
		digits := 0
		var pow uint64 = 1
		for pow*uint64(r) <= math.MaxUint32 {
			pow *= uint64(r)
			digits++
		}
		digitsPerWord[r] = digits
		superRadix[r] = uint32(pow)
		bitsPerDigitX1024[r] = int64(math.Ceil(1024 * math.Log2(float64(r))))
	}
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// Parse parses s (optionally signed) as a base-radix integer and returns its
// sign (-1, 0, +1) and magnitude. radix must be in [MinRadix, MaxRadix].
func Parse(s string, radix int) (sign int, mag magnitude.Mag, err error) {
	if radix < MinRadix || radix > MaxRadix {
		return 0, nil, errors.Errorf("radix: radix %d out of range [%d, %d]", radix, MinRadix, MaxRadix)
	}
	if s == "" {
		return 0, nil, errors.New("radix: empty string")
	}
	sign = 1
	i := 0
	switch s[0] {
	case '+':
		i = 1
	case '-':
		sign = -1
		i = 1
	}
	digits := s[i:]
	if digits == "" {
		return 0, nil, errors.Errorf("radix: no digits in %q", s)
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] == '+' || digits[i] == '-' {
			return 0, nil, errors.Errorf("radix: misplaced sign in %q", s)
		}
	}
	// Skip leading zeros.
	start := 0
	for start < len(digits)-1 && digits[start] == '0' {
		start++
	}
	digits = digits[start:]

	numDigits := len(digits)
	for i := 0; i < numDigits; i++ {
		v, ok := digitValue(digits[i])
		if !ok || v >= radix {
			return 0, nil, errors.Errorf("radix: invalid digit %q for radix %d", digits[i], radix)
		}
	}

	if numDigits == 1 && digits[0] == '0' {
		return 0, nil, nil
	}

	dpw := digitsPerWord[radix]
	sr := superRadix[radix]

	firstGroupLen := numDigits % dpw
	if firstGroupLen == 0 {
		firstGroupLen = dpw
	}

	group, err := parseDigitGroup(digits[:firstGroupLen], radix)
	if err != nil {
		return 0, nil, err
	}
	mag = magnitude.Mag{group}
	pos := firstGroupLen
	for pos < numDigits {
		group, err = parseDigitGroup(digits[pos:pos+dpw], radix)
		if err != nil {
			return 0, nil, err
		}
		mag = magnitude.MulAddWord(mag, sr, group)
		pos += dpw
	}
	mag = magnitude.Trim(mag)
	if len(mag) == 0 {
		return 0, nil, nil
	}
	return sign, mag, nil
}

// parseDigitGroup converts a short run of digits (length <= digitsPerWord)
// into a single super-digit via simple positional accumulation.
func parseDigitGroup(s string, radix int) (uint32, error) {
	var v uint64
	for i := 0; i < len(s); i++ {
		d, _ := digitValue(s[i])
		v = v*uint64(radix) + uint64(d)
	}
	if v > math.MaxUint32 {
		return 0, errors.Errorf("radix: digit group %q overflows a word", s)
	}
	return uint32(v), nil
}

// Format renders sign/mag in the given radix: a leading '-' for negative
// values, "0" for zero, otherwise the most-significant super-digit
// unpadded followed by each remaining super-digit zero-padded to
// digitsPerWord[radix] using the 0-9A-Z alphabet.
func Format(sign int, mag magnitude.Mag, radix int) (string, error) {
	if radix < MinRadix || radix > MaxRadix {
		return "", errors.Errorf("radix: radix %d out of range [%d, %d]", radix, MinRadix, MaxRadix)
	}
	mag = magnitude.Trim(mag)
	if len(mag) == 0 || sign == 0 {
		return "0", nil
	}

	dpw := digitsPerWord[radix]
	sr := superRadix[radix]

	work := magnitude.Clone(mag)
	var groups []uint32
	for !magnitude.IsZero(work) {
		var rem uint32
		work, rem = magnitude.DivModWord(work, sr)
		groups = append(groups, rem)
	}
	if len(groups) == 0 {
		groups = []uint32{0}
	}

	var out []byte
	if sign < 0 {
		out = append(out, '-')
	}
	out = append(out, formatSuperDigit(groups[len(groups)-1], radix, 0)...)
	for i := len(groups) - 2; i >= 0; i-- {
		out = append(out, formatSuperDigit(groups[i], radix, dpw)...)
	}
	return string(out), nil
}

// formatSuperDigit renders v in the given radix, left-padded with '0' to
// width digits (width 0 means no padding).
func formatSuperDigit(v uint32, radix, width int) []byte {
	var buf [64]byte
	i := len(buf)
	if v == 0 {
		i--
		buf[i] = '0'
	}
	for v > 0 {
		i--
		buf[i] = digitAlphabet[v%uint32(radix)]
		v /= uint32(radix)
	}
	for len(buf)-i < width {
		i--
		buf[i] = '0'
	}
	return buf[i:]
}

