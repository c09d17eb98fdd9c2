// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Address identifies an account in the state machine. Addresses are opaque
// identifiers compared by value; the runtime does not derive them from keys.
type Address [20]byte

// Hash identifies a piece of claimable content. Claims are keyed by the
// Keccak-256 hash of the content rather than the content itself.
type Hash [32]byte

// Nonce is the per-account extrinsic counter, stored in big-endian byte order.
type Nonce [8]byte

// ToNonce converts a counter value into its byte representation.
func ToNonce(value uint64) Nonce {
	var nonce Nonce
	binary.BigEndian.PutUint64(nonce[:], value)
	return nonce
}

// ToUint64 returns the counter value encoded in this nonce.
func (n Nonce) ToUint64() uint64 {
	return binary.BigEndian.Uint64(n[:])
}

// Compare orders two addresses lexicographically.
func (a Address) Compare(other Address) int {
	return bytes.Compare(a[:], other[:])
}

// Compare orders two hashes lexicographically.
func (h Hash) Compare(other Hash) int {
	return bytes.Compare(h[:], other[:])
}

// Keccak256 computes the Keccak-256 hash of the given data.
func Keccak256(data []byte) Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}
