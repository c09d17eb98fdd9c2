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
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestAmount_NewProducesExpectedValues(t *testing.T) {
	require := require.New(t)

	require.Equal(uint64(0), New().Uint64())
	require.Equal(uint64(42), New(42).Uint64())
	require.True(New().IsZero())
	require.False(New(1).IsZero())

	// Arguments are given in big-endian order.
	high := New(1, 0)
	require.False(high.IsUint64())
	require.Equal(high, NewFromUint256(uint256.NewInt(0).Lsh(uint256.NewInt(1), 64)))
}

func TestAmount_NewFromBytesIsBigEndian(t *testing.T) {
	require := require.New(t)

	require.Equal(New(0x0102), NewFromBytes(0x01, 0x02))

	bytes := New(0x0102).Bytes32()
	require.Equal(byte(0x01), bytes[30])
	require.Equal(byte(0x02), bytes[31])
}

func TestAmount_AddReportsOverflow(t *testing.T) {
	require := require.New(t)

	sum, overflow := Add(New(2), New(3))
	require.False(overflow)
	require.Equal(New(5), sum)

	_, overflow = Add(Max(), New(1))
	require.True(overflow)

	sum, overflow = Add(Max(), New())
	require.False(overflow)
	require.Equal(Max(), sum)
}

func TestAmount_SubReportsUnderflow(t *testing.T) {
	require := require.New(t)

	diff, underflow := Sub(New(5), New(3))
	require.False(underflow)
	require.Equal(New(2), diff)

	_, underflow = Sub(New(3), New(5))
	require.True(underflow)

	diff, underflow = Sub(New(3), New(3))
	require.False(underflow)
	require.True(diff.IsZero())
}

func TestAmount_CmpOrdersValues(t *testing.T) {
	require := require.New(t)

	require.Equal(-1, New(1).Cmp(New(2)))
	require.Equal(0, New(2).Cmp(New(2)))
	require.Equal(1, New(1, 0).Cmp(New(2)))
}
