// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package balances manages the token balances of accounts and allows them to
// transfer tokens to one another.
package balances

import (
	"errors"

	"github.com/chainkit/statemachine/common"
	"github.com/chainkit/statemachine/common/amount"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrInsufficientFunds is returned by a transfer whose sender does not hold
// the requested amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrOverflow is returned by a transfer that would push the receiver's
// balance beyond the representable range.
var ErrOverflow = errors.New("balance overflow")

// Pallet is the balance state of the runtime, mapping accounts to their
// token balance. Accounts without an entry have a balance of zero.
type Pallet struct {
	balances map[common.Address]amount.Amount
}

// NewPallet creates an empty balance state.
func NewPallet() *Pallet {
	return &Pallet{
		balances: make(map[common.Address]amount.Amount),
	}
}

// SetBalance overwrites the balance of the given account unconditionally.
// It is intended for genesis-style seeding and is not reachable through
// dispatched calls.
func (p *Pallet) SetBalance(address common.Address, value amount.Amount) {
	p.balances[address] = value
}

// GetBalance returns the balance of the given account.
func (p *Pallet) GetBalance(address common.Address) amount.Amount {
	return p.balances[address]
}

// Transfer moves value from one account to another. It fails with
// ErrInsufficientFunds if the sender's balance is too low and with
// ErrOverflow if the receiver's balance would exceed the representable
// range. On failure no balance is modified. A transfer from an account to
// itself that passes both checks leaves the balance unchanged.
func (p *Pallet) Transfer(from, to common.Address, value amount.Amount) error {
	fromBalance := p.GetBalance(from)
	toBalance := p.GetBalance(to)

	newFromBalance, underflow := amount.Sub(fromBalance, value)
	if underflow {
		return ErrInsufficientFunds
	}
	newToBalance, overflow := amount.Add(toBalance, value)
	if overflow {
		return ErrOverflow
	}

	if from == to {
		return nil
	}

	p.balances[from] = newFromBalance
	p.balances[to] = newToBalance
	return nil
}

// Accounts lists all accounts with a stored balance in address order.
func (p *Pallet) Accounts() []common.Address {
	accounts := maps.Keys(p.balances)
	slices.SortFunc(accounts, common.Address.Compare)
	return accounts
}

// GetMemoryFootprint returns the approximate memory usage of this pallet.
func (p *Pallet) GetMemoryFootprint() *common.MemoryFootprint {
	res := common.NewMemoryFootprint(0)
	res.AddChild("balances", common.FootprintOfMap(p.balances))
	return res
}
