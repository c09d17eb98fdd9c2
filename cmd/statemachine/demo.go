// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/chainkit/statemachine/common"
	"github.com/chainkit/statemachine/common/amount"
	"github.com/chainkit/statemachine/runtime"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pbnjay/memory"
	"github.com/urfave/cli/v2"
)

var Demo = cli.Command{
	Action: demo,
	Name:   "demo",
	Usage:  "executes a sequence of showcase blocks and dumps the resulting state",
	Flags: []cli.Flag{
		&keepGoingFlag,
		&diagnosticsFlag,
	},
}

var (
	keepGoingFlag = cli.BoolFlag{
		Name:  "keep-going",
		Usage: "continue executing blocks after a block failed",
	}
	diagnosticsFlag = cli.BoolFlag{
		Name:  "diagnostics",
		Usage: "report memory usage after the run",
	}
)

func demo(context *cli.Context) error {
	var (
		alice   = common.Address{1}
		bob     = common.Address{2}
		charlie = common.Address{3}
	)
	content := common.Keccak256([]byte("Hello, world!"))

	rt := runtime.New()
	rt.SetBalance(alice, amount.New(100))

	blocks := []runtime.Block{
		{
			Header: runtime.Header{BlockNumber: 1},
			Extrinsics: []runtime.Extrinsic{
				{Caller: alice, Call: runtime.Transfer{To: bob, Amount: amount.New(20)}},
				{Caller: alice, Call: runtime.Transfer{To: charlie, Amount: amount.New(20)}},
			},
		},
		{
			// Bob's duplicate claim makes this block fail; the effects of
			// Alice's claim before it are retained.
			Header: runtime.Header{BlockNumber: 2},
			Extrinsics: []runtime.Extrinsic{
				{Caller: alice, Call: runtime.CreateClaim{Claim: content}},
				{Caller: bob, Call: runtime.CreateClaim{Claim: content}},
			},
		},
		{
			Header: runtime.Header{BlockNumber: 3},
			Extrinsics: []runtime.Extrinsic{
				{Caller: alice, Call: runtime.RevokeClaim{Claim: content}},
				{Caller: bob, Call: runtime.CreateClaim{Claim: content}},
			},
		},
	}

	for _, block := range blocks {
		fmt.Printf("Executing block %d with %d extrinsics ...\n",
			block.Header.BlockNumber, len(block.Extrinsics))
		if err := rt.ExecuteBlock(block); err != nil {
			fmt.Printf("Block %d failed: %v\n", block.Header.BlockNumber, err)
			if !context.Bool(keepGoingFlag.Name) {
				break
			}
		}
	}

	dumpState(rt)

	if context.Bool(diagnosticsFlag.Name) {
		fmt.Printf("\nMemory footprint:\n%s", rt.GetMemoryFootprint())
		fmt.Printf("Total system memory: %d bytes\n", memory.TotalMemory())
	}
	return nil
}

func dumpState(rt *runtime.Runtime) {
	fmt.Printf("\nState after block %d:\n", rt.BlockNumber())
	for _, address := range rt.Accounts() {
		fmt.Printf("  %s: balance=%s nonce=%d\n",
			hexutil.Encode(address[:]),
			rt.GetBalance(address),
			rt.GetNonce(address).ToUint64())
	}
	for _, claim := range rt.Claims() {
		owner, _ := rt.GetClaim(claim)
		fmt.Printf("  claim %s owned by %s\n",
			hexutil.Encode(claim[:]),
			hexutil.Encode(owner[:]))
	}
}
