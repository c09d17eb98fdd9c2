// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package runtime

import (
	"github.com/chainkit/statemachine/common"
	"github.com/chainkit/statemachine/common/amount"
)

// Call is one dispatchable operation of the runtime, tagged with the
// arguments of the target pallet method. The set of implementations is
// closed: only the variants defined in this package satisfy the interface.
// Adding a pallet operation means adding a variant here and a routing arm
// in the runtime's Dispatch method.
type Call interface {
	isCall()
}

// Transfer moves the given amount from the caller to another account.
type Transfer struct {
	To     common.Address
	Amount amount.Amount
}

// CreateClaim registers the caller as the owner of the given content hash.
type CreateClaim struct {
	Claim common.Hash
}

// RevokeClaim removes the caller's ownership of the given content hash.
type RevokeClaim struct {
	Claim common.Hash
}

func (Transfer) isCall()    {}
func (CreateClaim) isCall() {}
func (RevokeClaim) isCall() {}
