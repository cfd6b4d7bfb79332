// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import (
	"errors"
	"math/bits"
)

// Coin is a non-negative, fixed-point quantity of stake. Zero is valid.
// All arithmetic is overflow-checked; there is no implicit wraparound.
type Coin uint64

// ZeroCoin is the additive identity.
const ZeroCoin Coin = 0

// ErrCoinOverflow is returned when an addition would exceed the Coin range.
var ErrCoinOverflow = errors.New("thor: coin overflow")

// ErrCoinUnderflow is returned when a subtraction would go negative.
var ErrCoinUnderflow = errors.New("thor: coin underflow")

// Add returns a+b, or ErrCoinOverflow if the sum does not fit in a Coin.
// Overflow detection uses the carry bit from math/bits.Add64, the same
// technique the teacher's native staker contract uses in its own stake-sum
// bound check (builtin/staker/staker.go's checkStake).
func (a Coin) Add(b Coin) (Coin, error) {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		return 0, ErrCoinOverflow
	}
	return Coin(sum), nil
}

// Sub returns a-b, or ErrCoinUnderflow if b > a.
func (a Coin) Sub(b Coin) (Coin, error) {
	diff, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		return 0, ErrCoinUnderflow
	}
	return Coin(diff), nil
}

// IsZero reports whether the coin amount is zero.
func (a Coin) IsZero() bool {
	return a == 0
}

// Sufficient reports whether a >= required.
func (a Coin) Sufficient(required Coin) bool {
	return a >= required
}
