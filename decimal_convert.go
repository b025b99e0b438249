package bignumberx

// Decompose/Compose implement the database/sql decimal interop contract
// (the same shape as the standard decimalDecompose/decimalCompose pair):
// form 0 is finite, 1 is infinite, 2 is NaN. BigDecimal has no
// representation for the latter two, so Decompose always reports finite
// and Compose rejects anything else.
const (
	decomposeFormFinite = 0
	decomposeFormInfinite = 1
	decomposeFormNaN = 2
)

// Decompose returns v's sign, big-endian coefficient magnitude bytes, and
// exponent. If buf is large enough it is used to hold the coefficient;
// otherwise a new slice is allocated. This never returns form Infinite or
// NaN, since BigDecimal cannot represent either.
func (v BigDecimal) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	negative = v.coeff.Sign() < 0
	words := v.coeff.Words()
	n := len(words) * 4
	if cap(buf) >= n {
		coefficient = buf[:n]
	} else {
		coefficient = make([]byte, n)
	}
	for i, w := range words {
		coefficient[i*4] = byte(w >> 24)
		coefficient[i*4+1] = byte(w >> 16)
		coefficient[i*4+2] = byte(w >> 8)
		coefficient[i*4+3] = byte(w)
	}
	// Trim leading zero bytes so coefficient is the minimal big-endian
	// magnitude representation, matching the shape database/sql callers
	// expect from decimalDecompose.
	i := 0
	for i < len(coefficient)-1 && coefficient[i] == 0 {
		i++
	}
	coefficient = coefficient[i:]
	return decomposeFormFinite, negative, coefficient, v.exp
}

// Compose sets v from a decomposed sign, coefficient, and exponent. Only
// form Finite is supported.
func (v *BigDecimal) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	if form != decomposeFormFinite {
		return newErr(Arithmetic, "Compose", "BigDecimal cannot represent form %d", form)
	}
	sign := 1
	allZero := true
	for _, b := range coefficient {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		*v = NewBigDecimal(Zero, exponent)
		return nil
	}
	if negative {
		sign = -1
	}
	mag, err := Of(sign, bytesToBigEndianWords(coefficient))
	if err != nil {
		return err
	}
	*v = NewBigDecimal(mag, exponent)
	return nil
}

func bytesToBigEndianWords(b []byte) []uint32 {
	n := len(b)
	nWords := (n + 3) / 4
	words := make([]uint32, nWords)
	// Pad on the left so the byte slice's length is a multiple of 4.
	padded := make([]byte, nWords*4)
	copy(padded[nWords*4-n:], b)
	for i := 0; i < nWords; i++ {
		words[i] = uint32(padded[i*4])<<24 | uint32(padded[i*4+1])<<16 | uint32(padded[i*4+2])<<8 | uint32(padded[i*4+3])
	}
	return words
}
