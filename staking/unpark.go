// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"fmt"

	"github.com/albatross-go/staking/thor"
)

// UnparkSenderInput is the outgoing side of an Unpark self-transaction: the
// staker routes their entire active balance through the transaction and
// pays Fee out of it.
type UnparkSenderInput struct {
	Staker     thor.Address
	TotalValue thor.Coin
	Fee        thor.Coin
}

// CommitUnparkSender requires the staker's entire ActiveStake balance equal
// TotalValue, then deducts Fee from it. There is no receipt: revert simply
// adds Fee back.
func (c *Contract) CommitUnparkSender(in UnparkSenderInput) error {
	logger.Debug("commit unpark sender", "staker", in.Staker, "total_value", in.TotalValue)

	existing, ok := c.active.Get(in.Staker)
	if !ok {
		logger.Info("commit unpark sender failed", "staker", in.Staker, "err", "no active stake")
		return fmt.Errorf("%w: no active stake for %s", ErrInvalidForSender, in.Staker)
	}
	if existing.Balance != in.TotalValue {
		logger.Info("commit unpark sender failed", "staker", in.Staker, "err", "balance mismatch")
		return fmt.Errorf("%w: active balance does not equal total_value for %s", ErrInvalidForSender, in.Staker)
	}

	newBalance, err := existing.Balance.Sub(in.Fee)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidForSender, err)
	}
	total, err := c.totalBalance.Sub(in.Fee)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidForSender, err)
	}
	c.active.Replace(in.Staker, existing.withBalance(newBalance))
	c.totalBalance = total
	return nil
}

// RevertUnparkSender adds Fee back to the staker's ActiveStake and the
// contract balance. The restored balance must equal TotalValue, otherwise
// the revert fails with ErrInvalidReceipt and nothing is changed.
func (c *Contract) RevertUnparkSender(in UnparkSenderInput) error {
	logger.Debug("revert unpark sender", "staker", in.Staker, "total_value", in.TotalValue)

	existing, ok := c.active.Get(in.Staker)
	if !ok {
		return fmt.Errorf("%w: no active stake for %s", ErrInvalidReceipt, in.Staker)
	}
	newBalance, err := existing.Balance.Add(in.Fee)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	if newBalance != in.TotalValue {
		return fmt.Errorf("%w: unpark revert balance mismatch for %s", ErrInvalidReceipt, in.Staker)
	}
	total, err := c.totalBalance.Add(in.Fee)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	c.active.Replace(in.Staker, existing.withBalance(newBalance))
	c.totalBalance = total
	return nil
}

// UnparkRecipientInput is the incoming side of an Unpark self-transaction.
type UnparkRecipientInput struct {
	Staker thor.Address
}

// CommitUnparkRecipient removes Staker from current_parking and/or
// previous_parking. At least one removal must succeed. The receipt records
// which sets it was removed from so revert can reinsert it into exactly
// those.
func (c *Contract) CommitUnparkRecipient(in UnparkRecipientInput) (*UnparkReceipt, error) {
	logger.Debug("commit unpark recipient", "staker", in.Staker)

	_, wasInCurrent := c.currentParking[in.Staker]
	_, wasInPrevious := c.previousParking[in.Staker]
	if !wasInCurrent && !wasInPrevious {
		logger.Info("commit unpark recipient failed", "staker", in.Staker, "err", "not parked")
		return nil, fmt.Errorf("%w: %s is not parked", ErrInvalidForRecipient, in.Staker)
	}
	delete(c.currentParking, in.Staker)
	delete(c.previousParking, in.Staker)
	return &UnparkReceipt{WasInCurrent: wasInCurrent, WasInPrevious: wasInPrevious}, nil
}

// RevertUnparkRecipient reinserts Staker into whichever parking sets the
// receipt marks true.
func (c *Contract) RevertUnparkRecipient(in UnparkRecipientInput, receipt *UnparkReceipt) error {
	logger.Debug("revert unpark recipient", "staker", in.Staker)

	if receipt == nil {
		return fmt.Errorf("%w: missing unpark receipt for %s", ErrInvalidReceipt, in.Staker)
	}
	if receipt.WasInCurrent {
		c.currentParking[in.Staker] = struct{}{}
	}
	if receipt.WasInPrevious {
		c.previousParking[in.Staker] = struct{}{}
	}
	return nil
}
