// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package runtime composes the individual pallets into a single deterministic
// state-transition function executing blocks of extrinsics.
package runtime

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/chainkit/statemachine/common"
	"github.com/chainkit/statemachine/common/amount"
	"github.com/chainkit/statemachine/pallet/balances"
	"github.com/chainkit/statemachine/pallet/existence"
	"github.com/chainkit/statemachine/pallet/system"
)

// ErrUnexpectedBlockNumber is returned when a block's declared height is not
// the successor of the runtime's current height. No state is modified in
// that case.
var ErrUnexpectedBlockNumber = errors.New("unexpected block number")

// Runtime owns one instance of every pallet and executes blocks against
// them. It is not safe for concurrent use; an embedder running blocks from
// multiple sources must serialize them externally.
type Runtime struct {
	system    *system.Pallet
	balances  *balances.Pallet
	existence *existence.Pallet

	// dispatcher routes calls during block execution; it is the runtime
	// itself unless replaced for testing.
	dispatcher Dispatcher
}

// New creates a runtime with empty state at block height zero.
func New() *Runtime {
	res := &Runtime{
		system:    system.NewPallet(),
		balances:  balances.NewPallet(),
		existence: existence.NewPallet(),
	}
	res.dispatcher = res
	return res
}

// ExecuteBlock replays the given block against the runtime's state. The
// block's height must be the successor of the current height. The caller
// nonce of every processed extrinsic is incremented before its call is
// dispatched, regardless of the call's outcome. The first failing call
// aborts the block with a *BlockExecutionError; effects of earlier
// extrinsics and the failing extrinsic's nonce increment are retained,
// later extrinsics are never executed.
func (r *Runtime) ExecuteBlock(block Block) error {
	want := r.system.BlockNumber() + 1
	if got := block.Header.BlockNumber; got != want {
		return fmt.Errorf("%w: got %d, want %d", ErrUnexpectedBlockNumber, got, want)
	}
	r.system.IncrementBlockNumber()
	for i, extrinsic := range block.Extrinsics {
		r.system.IncrementNonce(extrinsic.Caller)
		if err := r.dispatcher.Dispatch(extrinsic.Caller, extrinsic.Call); err != nil {
			return &BlockExecutionError{
				Block: block.Header.BlockNumber,
				Index: i,
				Err:   err,
			}
		}
	}
	return nil
}

// --- Genesis Seeding ---

// SetBalance overwrites an account balance outside of block execution. It is
// intended for genesis seeding and does not touch the account's nonce.
func (r *Runtime) SetBalance(address common.Address, value amount.Amount) {
	r.balances.SetBalance(address, value)
}

// --- Introspection ---

// BlockNumber returns the height of the last executed block.
func (r *Runtime) BlockNumber() uint64 {
	return r.system.BlockNumber()
}

// GetBalance returns the balance of the given account.
func (r *Runtime) GetBalance(address common.Address) amount.Amount {
	return r.balances.GetBalance(address)
}

// GetNonce returns the number of extrinsics authored by the given account.
func (r *Runtime) GetNonce(address common.Address) common.Nonce {
	return r.system.GetNonce(address)
}

// GetClaim returns the owner of the given content hash, if any.
func (r *Runtime) GetClaim(claim common.Hash) (common.Address, bool) {
	return r.existence.GetClaim(claim)
}

// Accounts lists all accounts with a stored balance in address order.
func (r *Runtime) Accounts() []common.Address {
	return r.balances.Accounts()
}

// Claims lists all currently claimed content hashes in byte order.
func (r *Runtime) Claims() []common.Hash {
	return r.existence.Claims()
}

// GetMemoryFootprint returns the approximate memory usage of the runtime
// and its pallets.
func (r *Runtime) GetMemoryFootprint() *common.MemoryFootprint {
	res := common.NewMemoryFootprint(unsafe.Sizeof(*r))
	res.AddChild("system", r.system.GetMemoryFootprint())
	res.AddChild("balances", r.balances.GetMemoryFootprint())
	res.AddChild("existence", r.existence.GetMemoryFootprint())
	return res
}
