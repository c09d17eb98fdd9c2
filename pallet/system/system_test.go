// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package system

import (
	"testing"

	"github.com/chainkit/statemachine/common"
	"github.com/stretchr/testify/require"
)

func TestPallet_StartsAtBlockZeroWithEmptyNonces(t *testing.T) {
	require := require.New(t)

	pallet := NewPallet()
	require.Equal(uint64(0), pallet.BlockNumber())
	require.Equal(common.ToNonce(0), pallet.GetNonce(common.Address{1}))
}

func TestPallet_IncrementBlockNumberAdvancesByOne(t *testing.T) {
	require := require.New(t)

	pallet := NewPallet()
	for i := uint64(1); i <= 5; i++ {
		pallet.IncrementBlockNumber()
		require.Equal(i, pallet.BlockNumber())
	}
}

func TestPallet_IncrementNonceIsPerAccount(t *testing.T) {
	require := require.New(t)

	alice := common.Address{1}
	bob := common.Address{2}

	pallet := NewPallet()
	pallet.IncrementNonce(alice)
	pallet.IncrementNonce(alice)
	pallet.IncrementNonce(bob)

	require.Equal(common.ToNonce(2), pallet.GetNonce(alice))
	require.Equal(common.ToNonce(1), pallet.GetNonce(bob))
	require.Equal(common.ToNonce(0), pallet.GetNonce(common.Address{3}))
}

func TestPallet_MemoryFootprintGrowsWithAccounts(t *testing.T) {
	require := require.New(t)

	pallet := NewPallet()
	empty := uint64(pallet.GetMemoryFootprint().Total())
	pallet.IncrementNonce(common.Address{1})
	require.Greater(uint64(pallet.GetMemoryFootprint().Total()), empty)
}
