// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"fmt"

	"github.com/albatross-go/staking/thor"
)

// UnstakeInput is the payload of an Unstake transaction: sender != recipient,
// the sender is the staker, and the contract is the outgoing side.
type UnstakeInput struct {
	Staker      thor.Address
	TotalValue  thor.Coin
	BlockHeight uint32
}

// CommitUnstake requires block_height >= macro_block_after(retire_time) +
// UNSTAKING_DELAY, then removes TotalValue from the staker's InactiveStake.
// Zeroing the entry removes it and returns a receipt carrying the old
// retire_time; a partial withdrawal carries no receipt.
func (c *Contract) CommitUnstake(in UnstakeInput) (*InactiveStakeReceipt, error) {
	logger.Debug("commit unstake", "staker", in.Staker, "total_value", in.TotalValue)

	existing, ok := c.inactive[in.Staker]
	if !ok {
		logger.Info("commit unstake failed", "staker", in.Staker, "err", "no inactive stake")
		return nil, fmt.Errorf("%w: no inactive stake for %s", ErrInvalidForSender, in.Staker)
	}

	eligible := c.policy.MacroBlockAfter(existing.RetireTime) + c.policy.UnstakingDelay
	if in.BlockHeight < eligible {
		logger.Info("commit unstake failed", "staker", in.Staker, "err", "unstaking delay not elapsed")
		return nil, fmt.Errorf("%w: unstaking delay not elapsed for %s (eligible at %d, got %d)",
			ErrInvalidForSender, in.Staker, eligible, in.BlockHeight)
	}
	if !existing.Balance.Sufficient(in.TotalValue) {
		logger.Info("commit unstake failed", "staker", in.Staker, "err", "insufficient inactive balance")
		return nil, fmt.Errorf("%w: insufficient inactive balance for %s", ErrInvalidForSender, in.Staker)
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
	metricUnstakeCommitted.Add(1)
	c.reportGauges()

	if remaining.IsZero() {
		delete(c.inactive, in.Staker)
		return &InactiveStakeReceipt{RetireTime: existing.RetireTime}, nil
	}
	c.inactive[in.Staker] = InactiveStake{Balance: remaining, RetireTime: existing.RetireTime}
	return nil, nil
}

// RevertUnstake is symmetric to CommitUnstake: a non-nil receipt means the
// entry was fully removed and must be re-created at exactly TotalValue; a
// nil receipt means TotalValue is added back to the surviving entry.
func (c *Contract) RevertUnstake(in UnstakeInput, receipt *InactiveStakeReceipt) error {
	logger.Debug("revert unstake", "staker", in.Staker, "total_value", in.TotalValue)

	total, err := c.totalBalance.Add(in.TotalValue)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}

	if receipt != nil {
		if _, ok := c.inactive[in.Staker]; ok {
			return fmt.Errorf("%w: inactive stake unexpectedly present for %s", ErrInvalidReceipt, in.Staker)
		}
		c.inactive[in.Staker] = InactiveStake{Balance: in.TotalValue, RetireTime: receipt.RetireTime}
		c.totalBalance = total
		return nil
	}

	existing, ok := c.inactive[in.Staker]
	if !ok {
		return fmt.Errorf("%w: no inactive stake for %s", ErrInvalidReceipt, in.Staker)
	}
	restored, err := existing.Balance.Add(in.TotalValue)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	c.inactive[in.Staker] = InactiveStake{Balance: restored, RetireTime: existing.RetireTime}
	c.totalBalance = total
	return nil
}
