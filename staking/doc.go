// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package staking implements the validator stake lifecycle contract: the
// state-transition engine that block processing calls into for every
// staking transaction and inherent in a block.
//
// Here's an explanation of how the operations work:
//
//  1. Stake: a transaction from a staking address to the contract. Transfers
//     value into a new or existing ActiveStake entry. An existing entry is
//     updated with the new validator key and reward address. A normal
//     transaction, signed by the staking/sender address.
//
//  2. Retire: a self-transaction (contract to itself, in two phases).
//     Removes a balance from a staker's ActiveStake — possibly removing the
//     entry entirely — and moves it into InactiveStake, recording the
//     block height. Retiring again adds to the existing inactive entry and
//     resets its retire_time, extending the unstaking delay.
//
//  3. Unpark: a self-transaction that clears a slashed staker from the
//     parking sets once a fee has been paid by routing the staker's
//     entire active balance through the transaction.
//
//  4. Unstake: a transaction from the contract to an external address.
//     Once block_height >= macro_block_after(retire_time) + UNSTAKING_DELAY,
//     transfers value out of the InactiveStake entry.
//
//  5. Slash / FinalizeEpoch: inherents emitted by block production rather
//     than by a user transaction, driving the parking lifecycle.
//
// Since every mutation must be revertible, each commit may return opaque
// receipt bytes; the matching revert consumes them to restore the exact
// prior state. FinalizeEpoch is the one exception — it is not revertible.
//
// Objects:
//   - ActiveStake: stake considered for validator selection, keyed by
//     staker address.
//   - InactiveStake: stake ignored for selection, counting down to
//     withdrawal eligibility.
//
// Internal lookups required:
//   - Stake and Retire need staker address -> ActiveStake.
//   - Retire and Unstake need staker address -> InactiveStake.
//   - Validator selection needs the list of ActiveStake ordered by balance,
//     descending.
package staking
