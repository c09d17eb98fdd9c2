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
	"fmt"

	"github.com/chainkit/statemachine/common"
)

// Header carries the metadata of a block. The block number must be the
// successor of the runtime's current block height for the block to be
// accepted.
type Header struct {
	BlockNumber uint64
}

// Extrinsic is one externally supplied instruction: a call together with the
// account issuing it. The caller is trusted input; signature verification
// happens outside this runtime.
type Extrinsic struct {
	Caller common.Address
	Call   Call
}

// Block is an ordered batch of extrinsics with a height header. Intake is
// atomic, application is not: see Runtime.ExecuteBlock.
type Block struct {
	Header     Header
	Extrinsics []Extrinsic
}

// BlockExecutionError reports the first extrinsic failure encountered while
// executing a block, identifying the block height and extrinsic index along
// with the underlying pallet error.
type BlockExecutionError struct {
	Block uint64
	Index int
	Err   error
}

func (e *BlockExecutionError) Error() string {
	return fmt.Sprintf("block %d: extrinsic %d: %v", e.Block, e.Index, e.Err)
}

func (e *BlockExecutionError) Unwrap() error {
	return e.Err
}
