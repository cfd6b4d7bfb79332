// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import "encoding/hex"

// ValidatorKeyLength is the size in bytes of a compressed BLS12-381 G2
// public key, the wire size the original staking contract this spec was
// distilled from uses for its validator_key field. The internals of the BLS
// key type are explicitly out of scope (spec §1) — this package only needs
// equality and a canonical, fixed-size encoding.
const ValidatorKeyLength = 96

// ValidatorKey is an opaque validator public key. Its cryptographic meaning
// is a collaborator concern; here it is a comparable, fixed-width value.
type ValidatorKey [ValidatorKeyLength]byte

// Equal reports whether two validator keys are byte-identical.
func (k ValidatorKey) Equal(other ValidatorKey) bool {
	return k == other
}

// Bytes returns the key's canonical encoding.
func (k ValidatorKey) Bytes() []byte {
	return k[:]
}

// String renders the key as lowercase hex.
func (k ValidatorKey) String() string {
	return hex.EncodeToString(k[:])
}

// ValidatorKeyFromBytes copies b into a ValidatorKey. b must be exactly
// ValidatorKeyLength bytes long.
func ValidatorKeyFromBytes(b []byte) (ValidatorKey, bool) {
	var k ValidatorKey
	if len(b) != ValidatorKeyLength {
		return k, false
	}
	copy(k[:], b)
	return k, true
}
