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
	"errors"
	"fmt"

	"github.com/chainkit/statemachine/common"
)

//go:generate mockgen -source dispatch.go -destination dispatch_mock.go -package runtime

// ErrUnknownCall is returned when a call value is none of the variants
// defined in this package.
var ErrUnknownCall = errors.New("unknown call")

// Dispatcher routes a call to the pallet method implementing it. Routing is
// stateless; all block and nonce bookkeeping is handled by the execution
// loop, never by the dispatcher.
type Dispatcher interface {
	Dispatch(caller common.Address, call Call) error
}

// Dispatch routes the given call to the owning pallet and returns the
// pallet's result unchanged. It covers every Call variant; a value of any
// other type yields ErrUnknownCall.
func (r *Runtime) Dispatch(caller common.Address, call Call) error {
	switch call := call.(type) {
	case Transfer:
		return r.balances.Transfer(caller, call.To, call.Amount)
	case CreateClaim:
		return r.existence.CreateClaim(caller, call.Claim)
	case RevokeClaim:
		return r.existence.RevokeClaim(caller, call.Claim)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCall, call)
	}
}
