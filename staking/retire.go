// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"fmt"

	"github.com/albatross-go/staking/thor"
)

// RetireSenderInput is the outgoing side of a Retire self-transaction.
type RetireSenderInput struct {
	Staker     thor.Address
	TotalValue thor.Coin
}

// CommitRetireSender deducts TotalValue from the contract balance and the
// staker's ActiveStake. If the remaining balance is zero the entry is
// removed entirely and a receipt carrying its key/reward is returned so
// RevertRetireSender can re-create it; a partial deduction carries no
// receipt.
func (c *Contract) CommitRetireSender(in RetireSenderInput) (*ActiveStakeReceipt, error) {
	logger.Debug("commit retire sender", "staker", in.Staker, "total_value", in.TotalValue)

	existing, ok := c.active.Get(in.Staker)
	if !ok {
		logger.Info("commit retire sender failed", "staker", in.Staker, "err", "no active stake")
		return nil, fmt.Errorf("%w: no active stake for %s", ErrInvalidForSender, in.Staker)
	}
	if !existing.Balance.Sufficient(in.TotalValue) {
		logger.Info("commit retire sender failed", "staker", in.Staker, "err", "insufficient balance")
		return nil, fmt.Errorf("%w: insufficient active balance for %s", ErrInvalidForSender, in.Staker)
	}

	remaining, err := existing.Balance.Sub(in.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForSender, err)
	}
	total, err := c.totalBalance.Sub(in.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForSender, err)
	}
	c.totalBalance = total

	if remaining.IsZero() {
		c.active.Remove(in.Staker)
		return &ActiveStakeReceipt{
			ValidatorKey:  existing.ValidatorKey,
			RewardAddress: existing.RewardAddress,
		}, nil
	}
	c.active.Replace(in.Staker, existing.withBalance(remaining))
	return nil, nil
}

// RevertRetireSender inverts CommitRetireSender: a non-nil receipt means the
// entry was fully removed and must be re-created at exactly TotalValue; a
// nil receipt means the entry survived and TotalValue is added back.
func (c *Contract) RevertRetireSender(in RetireSenderInput, receipt *ActiveStakeReceipt) error {
	logger.Debug("revert retire sender", "staker", in.Staker, "total_value", in.TotalValue)

	total, err := c.totalBalance.Add(in.TotalValue)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}

	if receipt != nil {
		if _, ok := c.active.Get(in.Staker); ok {
			return fmt.Errorf("%w: active stake unexpectedly present for %s", ErrInvalidReceipt, in.Staker)
		}
		c.active.Insert(ActiveStake{
			StakerAddress: in.Staker,
			Balance:       in.TotalValue,
			ValidatorKey:  receipt.ValidatorKey,
			RewardAddress: receipt.RewardAddress,
		})
		c.totalBalance = total
		return nil
	}

	existing, ok := c.active.Get(in.Staker)
	if !ok {
		return fmt.Errorf("%w: no active stake for %s", ErrInvalidReceipt, in.Staker)
	}
	restored, err := existing.Balance.Add(in.TotalValue)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	c.active.Replace(in.Staker, existing.withBalance(restored))
	c.totalBalance = total
	return nil
}

// RetireRecipientInput is the incoming side of a Retire self-transaction.
// Value equals TotalValue minus the fee.
type RetireRecipientInput struct {
	Staker      thor.Address
	Value       thor.Coin
	BlockHeight uint32
}

// CommitRetireRecipient adds Value to the contract balance and merges it
// into the staker's InactiveStake, creating the entry with retire_time set
// to BlockHeight if absent. If present, retire_time is reset to
// BlockHeight — extending the unstaking delay — and a receipt carrying the
// prior retire_time is returned.
func (c *Contract) CommitRetireRecipient(in RetireRecipientInput) (*InactiveStakeReceipt, error) {
	logger.Debug("commit retire recipient", "staker", in.Staker, "value", in.Value)

	total, err := c.totalBalance.Add(in.Value)
	if err != nil {
		logger.Info("commit retire recipient failed", "staker", in.Staker, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidForRecipient, err)
	}

	existing, ok := c.inactive[in.Staker]
	if !ok {
		c.inactive[in.Staker] = InactiveStake{Balance: in.Value, RetireTime: in.BlockHeight}
		c.totalBalance = total
		return nil, nil
	}

	newBalance, err := existing.Balance.Add(in.Value)
	if err != nil {
		logger.Info("commit retire recipient failed", "staker", in.Staker, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidForRecipient, err)
	}
	receipt := &InactiveStakeReceipt{RetireTime: existing.RetireTime}
	c.inactive[in.Staker] = InactiveStake{Balance: newBalance, RetireTime: in.BlockHeight}
	c.totalBalance = total
	return receipt, nil
}

// RevertRetireRecipient inverts CommitRetireRecipient. A non-nil receipt
// restores the prior retire_time after subtracting Value; a nil receipt
// means the entry was created fresh and must be fully removed.
func (c *Contract) RevertRetireRecipient(in RetireRecipientInput, receipt *InactiveStakeReceipt) error {
	logger.Debug("revert retire recipient", "staker", in.Staker, "value", in.Value)

	existing, ok := c.inactive[in.Staker]
	if !ok {
		return fmt.Errorf("%w: no inactive stake for %s", ErrInvalidReceipt, in.Staker)
	}
	total, err := c.totalBalance.Sub(in.Value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}

	if receipt == nil {
		if existing.Balance != in.Value {
			return fmt.Errorf("%w: inactive stake revert balance mismatch for %s", ErrInvalidReceipt, in.Staker)
		}
		delete(c.inactive, in.Staker)
		c.totalBalance = total
		return nil
	}

	newBalance, err := existing.Balance.Sub(in.Value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	c.inactive[in.Staker] = InactiveStake{Balance: newBalance, RetireTime: receipt.RetireTime}
	c.totalBalance = total
	return nil
}
