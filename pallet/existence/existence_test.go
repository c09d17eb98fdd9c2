// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package existence

import (
	"testing"

	"github.com/chainkit/statemachine/common"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.Address{1}
	bob   = common.Address{2}
)

func TestPallet_UnclaimedContentHasNoOwner(t *testing.T) {
	require := require.New(t)

	pallet := NewPallet()
	_, found := pallet.GetClaim(common.Keccak256([]byte("Hello, world!")))
	require.False(found)
}

func TestPallet_ContentCanOnlyBeClaimedOnce(t *testing.T) {
	require := require.New(t)

	content := common.Keccak256([]byte("Hello, world!"))

	pallet := NewPallet()
	require.NoError(pallet.CreateClaim(alice, content))
	require.ErrorIs(pallet.CreateClaim(bob, content), ErrAlreadyClaimed)

	owner, found := pallet.GetClaim(content)
	require.True(found)
	require.Equal(alice, owner)
}

func TestPallet_RevokingRequiresOwnership(t *testing.T) {
	require := require.New(t)

	content := common.Keccak256([]byte("Hello, world!"))

	pallet := NewPallet()
	require.ErrorIs(pallet.RevokeClaim(alice, content), ErrClaimNotFound)

	require.NoError(pallet.CreateClaim(alice, content))
	require.ErrorIs(pallet.RevokeClaim(bob, content), ErrNotOwner)

	// A failed revoke leaves the claim in place.
	owner, found := pallet.GetClaim(content)
	require.True(found)
	require.Equal(alice, owner)
}

func TestPallet_RevokedContentCanBeClaimedAgain(t *testing.T) {
	require := require.New(t)

	content := common.Keccak256([]byte("Hello, world!"))

	pallet := NewPallet()
	require.NoError(pallet.CreateClaim(alice, content))
	require.NoError(pallet.RevokeClaim(alice, content))

	_, found := pallet.GetClaim(content)
	require.False(found)

	require.NoError(pallet.CreateClaim(bob, content))
	owner, found := pallet.GetClaim(content)
	require.True(found)
	require.Equal(bob, owner)
}

func TestPallet_ClaimsAreListedInByteOrder(t *testing.T) {
	require := require.New(t)

	pallet := NewPallet()
	require.Empty(pallet.Claims())

	require.NoError(pallet.CreateClaim(alice, common.Hash{3}))
	require.NoError(pallet.CreateClaim(alice, common.Hash{1}))
	require.NoError(pallet.CreateClaim(bob, common.Hash{2}))

	require.Equal([]common.Hash{{1}, {2}, {3}}, pallet.Claims())
}
