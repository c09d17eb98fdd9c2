// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package amount

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Amount is an unsigned 256-bit account balance. The zero value is a valid
// amount of zero. Amounts are immutable; arithmetic produces new values and
// is always checked, there is no wrapping variant.
type Amount struct {
	internal uint256.Int
}

// New creates an amount from up to four uint64 arguments given in big-endian
// order, i.e. New(1, 0) is 1 << 64.
func New(args ...uint64) Amount {
	if len(args) > 4 {
		panic(fmt.Sprintf("too many arguments for amount.New: %d", len(args)))
	}
	var padded [4]uint64
	copy(padded[4-len(args):], args)
	return Amount{internal: uint256.Int{padded[3], padded[2], padded[1], padded[0]}}
}

// NewFromUint256 creates an amount from an uint256 value.
func NewFromUint256(value *uint256.Int) Amount {
	return Amount{internal: *value}
}

// NewFromBytes creates an amount from up to 32 bytes given in big-endian
// order.
func NewFromBytes(bytes ...byte) Amount {
	if len(bytes) > 32 {
		panic(fmt.Sprintf("too many bytes for amount.NewFromBytes: %d", len(bytes)))
	}
	res := Amount{}
	res.internal.SetBytes(bytes)
	return res
}

// Max returns the largest representable amount.
func Max() Amount {
	max := uint256.Int{}
	return Amount{internal: *max.Not(&max)}
}

// Uint64 returns the low 64 bits of the amount.
func (a Amount) Uint64() uint64 {
	return a.internal.Uint64()
}

// IsZero returns true if the amount is zero.
func (a Amount) IsZero() bool {
	return a.internal.IsZero()
}

// IsUint64 returns true if the amount fits into a uint64.
func (a Amount) IsUint64() bool {
	return a.internal.IsUint64()
}

// Bytes32 returns the amount as a 32-byte big-endian array.
func (a Amount) Bytes32() [32]byte {
	return a.internal.Bytes32()
}

// Cmp compares two amounts, returning -1, 0, or 1.
func (a Amount) Cmp(b Amount) int {
	return a.internal.Cmp(&b.internal)
}

func (a Amount) String() string {
	return a.internal.Dec()
}

// Add returns the sum of the two amounts. The second return value is true if
// the sum does not fit into 256 bits; the returned amount is unspecified in
// that case.
func Add(a, b Amount) (sum Amount, overflow bool) {
	_, overflow = sum.internal.AddOverflow(&a.internal, &b.internal)
	return sum, overflow
}

// Sub returns the difference of the two amounts. The second return value is
// true if b exceeds a; the returned amount is unspecified in that case.
func Sub(a, b Amount) (diff Amount, underflow bool) {
	_, underflow = diff.internal.SubOverflow(&a.internal, &b.internal)
	return diff, underflow
}
