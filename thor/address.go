// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package thor holds the money and key primitives shared by the staking
// contract: fixed-width addresses, overflow-checked coins, and opaque
// validator keys. None of these are protocol novelties — they are the
// boring bedrock every operation in package staking is built on.
package thor

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// AddressLength is the length of an Address in bytes.
const AddressLength = common.AddressLength

// Address is a fixed-width opaque staker/validator identifier with a total
// order (byte-lexicographic), used for both map keys and the tie-break in
// ActiveStake's sort order.
type Address common.Address

// ZeroAddress is the all-zero address, never a valid staker or recipient.
var ZeroAddress Address

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// Bytes returns a's bytes.
func (a Address) Bytes() []byte {
	return a[:]
}

// Cmp returns -1, 0 or 1 depending on whether a is byte-lexicographically
// less than, equal to, or greater than b.
func (a Address) Cmp(b Address) int {
	return bytes.Compare(a[:], b[:])
}

// Less reports whether a sorts strictly before b.
func (a Address) Less(b Address) bool {
	return a.Cmp(b) < 0
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ParseAddress parses a hex-encoded address, with or without the 0x prefix.
func ParseAddress(s string) (Address, error) {
	var addr Address
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		s = s[2:]
	}
	if len(s) != AddressLength*2 {
		return addr, errors.New("thor: invalid address length")
	}
	if _, err := hex.Decode(addr[:], []byte(s)); err != nil {
		return addr, err
	}
	return addr, nil
}

// BytesToAddress copies b, left-padded/truncated, into an Address.
func BytesToAddress(b []byte) Address {
	var addr Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(addr[AddressLength-len(b):], b)
	return addr
}
