// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "errors"

// The error taxonomy below is deliberately small and flat (spec §7): every
// operation fails with exactly one of these, wrapped with fmt.Errorf for
// call-site context and matched with errors.Is. This is the same shape as
// the teacher's builtin/staker/reverts package, adapted from a single
// generic revert error to the five-way split this contract's spec actually
// requires, since "sender lacks balance" and "receipt is inconsistent" are
// not the same failure to a caller deciding whether to retry.
var (
	// ErrInvalidForSender: sender-side precondition failed (missing entry,
	// insufficient balance, unstake timing not yet met).
	ErrInvalidForSender = errors.New("staking: invalid for sender")

	// ErrInvalidForRecipient: recipient-side invariant failed (e.g. unpark
	// of an address that isn't parked).
	ErrInvalidForRecipient = errors.New("staking: invalid for recipient")

	// ErrInvalidForTarget: operation not supported by this contract (direct
	// contract creation, the Reward inherent, malformed self-tx payload).
	ErrInvalidForTarget = errors.New("staking: invalid for target")

	// ErrInvalidInherent: malformed inherent input.
	ErrInvalidInherent = errors.New("staking: invalid inherent")

	// ErrInvalidReceipt: a revert's preconditions were violated — a missing,
	// extraneous, or state-inconsistent receipt.
	ErrInvalidReceipt = errors.New("staking: invalid receipt")
)
