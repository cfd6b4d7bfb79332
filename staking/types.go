// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "github.com/albatross-go/staking/thor"

// ActiveStake is stake eligible for validator selection in the current or
// next epoch. Its total order is descending by Balance, tie-broken
// ascending by StakerAddress (spec §3); equality ignores ValidatorKey and
// RewardAddress, since a balance-changing mutation is always a remove then
// reinsert of the whole tuple, never an in-place field edit (spec §9).
type ActiveStake struct {
	StakerAddress thor.Address
	Balance       thor.Coin
	ValidatorKey  thor.ValidatorKey
	RewardAddress *thor.Address // nil if unset
}

// withBalance returns a copy of a with Balance replaced, leaving the other
// fields untouched. Ported from the original contract's ActiveStake::
// with_balance helper, used by unpark's fee deduction so a single-field
// change doesn't have to restate every other field at the call site.
func (a ActiveStake) withBalance(balance thor.Coin) ActiveStake {
	a.Balance = balance
	return a
}

// equalKey reports whether two ActiveStake values share the ordering key
// (address, balance) the spec defines equality over.
func (a ActiveStake) equalKey(b ActiveStake) bool {
	return a.StakerAddress == b.StakerAddress && a.Balance == b.Balance
}

// less implements the total order from spec §3: descending by balance,
// ascending by address on ties.
func (a ActiveStake) less(b ActiveStake) bool {
	if a.Balance != b.Balance {
		return a.Balance > b.Balance
	}
	return a.StakerAddress.Less(b.StakerAddress)
}

// InactiveStake is stake that has been retired and is counting down toward
// withdrawal eligibility.
type InactiveStake struct {
	Balance    thor.Coin
	RetireTime uint32
}

// ActiveStakeReceipt restores the prior validator key/reward address when a
// Stake or Retire-sender commit is reverted.
type ActiveStakeReceipt struct {
	ValidatorKey  thor.ValidatorKey
	RewardAddress *thor.Address
}

// InactiveStakeReceipt restores the prior retire_time when a Retire-
// recipient or Unstake commit is reverted.
type InactiveStakeReceipt struct {
	RetireTime uint32
}

// UnparkReceipt records which parking sets an address was removed from, so
// revert can reinsert it into exactly those sets.
type UnparkReceipt struct {
	WasInCurrent  bool
	WasInPrevious bool
}

// SlashReceipt records whether a Slash inherent actually added a new
// element to current_parking (it may be a harmless repeat slash).
type SlashReceipt struct {
	NewlySlashed bool
}
