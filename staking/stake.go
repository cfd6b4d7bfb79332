// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"fmt"

	"github.com/albatross-go/staking/log"
	"github.com/albatross-go/staking/thor"
)

var logger = log.WithContext("pkg", "staking")

// StakeInput is the payload of a Stake transaction: sender != recipient,
// the sender is the staker.
type StakeInput struct {
	Staker        thor.Address
	Value         thor.Coin
	ValidatorKey  thor.ValidatorKey
	RewardAddress *thor.Address
}

// CommitStake applies a Stake transaction (spec §4.F). If the staker already
// has an ActiveStake, its balance grows by Value and its validator key and
// reward address are overwritten by the new ones, and a receipt carrying the
// prior key/reward is returned so RevertStake can restore them. A brand new
// entry carries no receipt.
func (c *Contract) CommitStake(in StakeInput) (*ActiveStakeReceipt, error) {
	logger.Debug("commit stake", "staker", in.Staker, "value", in.Value)

	existing, ok := c.active.Get(in.Staker)
	if !ok {
		c.active.Insert(ActiveStake{
			StakerAddress: in.Staker,
			Balance:       in.Value,
			ValidatorKey:  in.ValidatorKey,
			RewardAddress: in.RewardAddress,
		})
		total, err := c.totalBalance.Add(in.Value)
		if err != nil {
			c.active.Remove(in.Staker)
			logger.Info("commit stake failed", "staker", in.Staker, "err", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidForRecipient, err)
		}
		c.totalBalance = total
		metricStakeCommitted.Add(1)
		c.reportGauges()
		return nil, nil
	}

	newBalance, err := existing.Balance.Add(in.Value)
	if err != nil {
		logger.Info("commit stake failed", "staker", in.Staker, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidForRecipient, err)
	}
	total, err := c.totalBalance.Add(in.Value)
	if err != nil {
		logger.Info("commit stake failed", "staker", in.Staker, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidForRecipient, err)
	}

	receipt := &ActiveStakeReceipt{
		ValidatorKey:  existing.ValidatorKey,
		RewardAddress: existing.RewardAddress,
	}
	c.active.Replace(in.Staker, ActiveStake{
		StakerAddress: in.Staker,
		Balance:       newBalance,
		ValidatorKey:  in.ValidatorKey,
		RewardAddress: in.RewardAddress,
	})
	c.totalBalance = total
	metricStakeCommitted.Add(1)
	c.reportGauges()
	return receipt, nil
}

// RevertStake inverts CommitStake exactly. When receipt is nil, the commit
// must have created a brand-new entry of exactly Value, so revert removes it
// entirely; otherwise it restores the previous key/reward and subtracts
// Value from the balance.
func (c *Contract) RevertStake(in StakeInput, receipt *ActiveStakeReceipt) error {
	logger.Debug("revert stake", "staker", in.Staker, "value", in.Value)

	cur, ok := c.active.Get(in.Staker)
	if !ok {
		return fmt.Errorf("%w: no active stake for %s", ErrInvalidReceipt, in.Staker)
	}

	if receipt == nil {
		if cur.Balance != in.Value {
			return fmt.Errorf("%w: stake revert balance mismatch for %s", ErrInvalidReceipt, in.Staker)
		}
		c.active.Remove(in.Staker)
		total, err := c.totalBalance.Sub(in.Value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
		}
		c.totalBalance = total
		metricStakeReverted.Add(1)
		c.reportGauges()
		return nil
	}

	newBalance, err := cur.Balance.Sub(in.Value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	total, err := c.totalBalance.Sub(in.Value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	c.active.Replace(in.Staker, ActiveStake{
		StakerAddress: in.Staker,
		Balance:       newBalance,
		ValidatorKey:  receipt.ValidatorKey,
		RewardAddress: receipt.RewardAddress,
	})
	c.totalBalance = total
	metricStakeReverted.Add(1)
	c.reportGauges()
	return nil
}
