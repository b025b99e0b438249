package bignumberx

import (
	"math"
	"testing"
)

func TestFromInt64RoundTrip(t *testing.T) {
	tests := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, 1 << 40, -(1 << 40)}
	for _, v := range tests {
		got, ok := FromInt64(v).AsInt64()
		if !ok || got != v {
			t.Errorf("FromInt64(%d).AsInt64() = (%d,%v), want (%d,true)", v, got, ok, v)
		}
	}
}

func TestAsInt64OutOfRange(t *testing.T) {
	v := big("99999999999999999999999999")
	if _, ok := v.AsInt64(); ok {
		t.Error("AsInt64 on an oversized value reported ok")
	}
	if _, ok := big("-1").AsUint64(); ok {
		t.Error("AsUint64(-1) reported ok")
	}
}

func TestFromUint64RoundTrip(t *testing.T) {
	tests := []uint64{0, 1, math.MaxUint64}
	for _, v := range tests {
		got, ok := FromUint64(v).AsUint64()
		if !ok || got != v {
			t.Errorf("FromUint64(%d).AsUint64() = (%d,%v)", v, got, ok)
		}
	}
}

func TestFromInt32AndUint32(t *testing.T) {
	got, ok := FromInt32(math.MinInt32).AsInt32()
	if !ok || got != math.MinInt32 {
		t.Errorf("FromInt32(MinInt32).AsInt32() = (%d,%v)", got, ok)
	}
	if _, ok := big("4294967296").AsUint32(); ok {
		t.Error("AsUint32(2^32) reported ok")
	}
}

func TestFromFloat64(t *testing.T) {
	v, err := FromFloat64(1.5)
	if err != nil || v.String() != "1" {
		t.Errorf("FromFloat64(1.5) = %s, %v, want 1", v, err)
	}
	v, err = FromFloat64(1024.0)
	if err != nil || v.String() != "1024" {
		t.Errorf("FromFloat64(1024) = %s, %v, want 1024", v, err)
	}
	if _, err := FromFloat64(math.NaN()); !IsKind(err, Overflow) {
		t.Errorf("FromFloat64(NaN) error = %v, want Overflow", err)
	}
	if _, err := FromFloat64(math.Inf(1)); !IsKind(err, Overflow) {
		t.Errorf("FromFloat64(+Inf) error = %v, want Overflow", err)
	}
}

func TestFromBytesTwosComplement(t *testing.T) {
	tests := []struct {
		b    []byte
		want string
	}{
		{[]byte{0x00}, "0"},
		{[]byte{0x7F}, "127"},
		{[]byte{0xFF}, "-1"},
		{[]byte{0x80}, "-128"},
		{[]byte{0x01, 0x00}, "256"},
	}
	for _, tt := range tests {
		if got := FromBytesTwosComplement(tt.b).String(); got != tt.want {
			t.Errorf("FromBytesTwosComplement(%v) = %s, want %s", tt.b, got, tt.want)
		}
	}
}
