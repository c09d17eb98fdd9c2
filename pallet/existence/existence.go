// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package existence implements a proof-of-existence registry. Accounts claim
// ownership of content, identified by its hash, and each piece of content
// has at most one owner at a time.
package existence

import (
	"errors"

	"github.com/chainkit/statemachine/common"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrAlreadyClaimed is returned when creating a claim on content that
// already has an owner.
var ErrAlreadyClaimed = errors.New("content is already claimed")

// ErrClaimNotFound is returned when revoking a claim on content that has no
// owner.
var ErrClaimNotFound = errors.New("claim not found")

// ErrNotOwner is returned when revoking a claim owned by another account.
var ErrNotOwner = errors.New("claim is owned by another account")

// Pallet is the claim state of the runtime, mapping content hashes to the
// account currently owning them. Absence of an entry means the content is
// free to claim.
type Pallet struct {
	claims map[common.Hash]common.Address
}

// NewPallet creates an empty claim state.
func NewPallet() *Pallet {
	return &Pallet{
		claims: make(map[common.Hash]common.Address),
	}
}

// GetClaim returns the owner of the given content, if any.
func (p *Pallet) GetClaim(claim common.Hash) (common.Address, bool) {
	owner, found := p.claims[claim]
	return owner, found
}

// CreateClaim records the caller as the owner of the given content. It fails
// with ErrAlreadyClaimed if the content already has an owner.
func (p *Pallet) CreateClaim(caller common.Address, claim common.Hash) error {
	if _, found := p.claims[claim]; found {
		return ErrAlreadyClaimed
	}
	p.claims[claim] = caller
	return nil
}

// RevokeClaim removes the caller's claim on the given content. It fails with
// ErrClaimNotFound if the content has no owner and with ErrNotOwner if the
// stored owner is a different account.
func (p *Pallet) RevokeClaim(caller common.Address, claim common.Hash) error {
	owner, found := p.claims[claim]
	if !found {
		return ErrClaimNotFound
	}
	if owner != caller {
		return ErrNotOwner
	}
	delete(p.claims, claim)
	return nil
}

// Claims lists all currently claimed content hashes in byte order.
func (p *Pallet) Claims() []common.Hash {
	claims := maps.Keys(p.claims)
	slices.SortFunc(claims, common.Hash.Compare)
	return claims
}

// GetMemoryFootprint returns the approximate memory usage of this pallet.
func (p *Pallet) GetMemoryFootprint() *common.MemoryFootprint {
	res := common.NewMemoryFootprint(0)
	res.AddChild("claims", common.FootprintOfMap(p.claims))
	return res
}
