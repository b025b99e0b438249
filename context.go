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

// MathContext is an immutable (precision, rounding mode) pair governing
// BigDecimal's context-governed operations. A Precision of 0 means exact /
// unlimited: no digit dropped, no rounding performed.
type MathContext struct {
	Precision uint32
	Mode      RoundingMode
}

// Predefined contexts matching common IEEE-754-decimal-like working sets.
var (
	// BasicDefault is a reasonable general-purpose context.
	BasicDefault = MathContext{Precision: 9, Mode: HalfUp}
	// Decimal32 matches the IEEE 754-2008 decimal32 format's precision.
	Decimal32 = MathContext{Precision: 7, Mode: HalfEven}
	// Decimal64 matches the IEEE 754-2008 decimal64 format's precision.
	Decimal64 = MathContext{Precision: 16, Mode: HalfEven}
	// Decimal128 matches the IEEE 754-2008 decimal128 format's precision.
	Decimal128 = MathContext{Precision: 34, Mode: HalfEven}
	// Unlimited performs no rounding.
	Unlimited = MathContext{Precision: 0, Mode: HalfUp}
)
