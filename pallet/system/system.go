// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package system tracks the low-level bookkeeping state of the runtime: the
// current block height and a per-account extrinsic counter.
package system

import (
	"github.com/chainkit/statemachine/common"
)

// Pallet is the system state of the runtime. It owns the block counter and
// the nonce of every account that has ever authored an extrinsic. Accounts
// without an entry have a nonce of zero.
type Pallet struct {
	blockNumber uint64
	nonces      map[common.Address]common.Nonce
}

// NewPallet creates an empty system state at block height zero.
func NewPallet() *Pallet {
	return &Pallet{
		nonces: make(map[common.Address]common.Nonce),
	}
}

// BlockNumber returns the current block height.
func (p *Pallet) BlockNumber() uint64 {
	return p.blockNumber
}

// IncrementBlockNumber advances the block height by one. It is called exactly
// once per block, before any of the block's extrinsics are processed.
func (p *Pallet) IncrementBlockNumber() {
	p.blockNumber++
}

// GetNonce returns the stored nonce of the given account.
func (p *Pallet) GetNonce(address common.Address) common.Nonce {
	return p.nonces[address]
}

// IncrementNonce advances the nonce of the given account by one. It is called
// exactly once per extrinsic for the extrinsic's caller, before the call is
// dispatched and regardless of the call's outcome.
func (p *Pallet) IncrementNonce(address common.Address) {
	p.nonces[address] = common.ToNonce(p.nonces[address].ToUint64() + 1)
}

// GetMemoryFootprint returns the approximate memory usage of this pallet.
func (p *Pallet) GetMemoryFootprint() *common.MemoryFootprint {
	res := common.NewMemoryFootprint(8)
	res.AddChild("nonces", common.FootprintOfMap(p.nonces))
	return res
}
