// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"fmt"
	"sort"

	"github.com/albatross-go/staking/thor"
)

// SlashInput is the input to the Slash inherent: an address with no value
// attached.
type SlashInput struct {
	Address thor.Address
}

// CommitSlash inserts Address into current_parking. Address must currently
// hold active or inactive stake. The receipt records whether the insert
// actually added a new element, since slashing an already-parked address is
// a harmless repeat.
//
// Open question on slash provenance: the address always lands in
// current_parking, whatever epoch the offence behind the inherent belongs
// to; cross-epoch slash proofs get no separate treatment.
func (c *Contract) CommitSlash(in SlashInput) (*SlashReceipt, error) {
	logger.Debug("commit slash", "address", in.Address)

	_, hasActive := c.active.Get(in.Address)
	_, hasInactive := c.inactive[in.Address]
	if !hasActive && !hasInactive {
		logger.Info("commit slash failed", "address", in.Address, "err", "no stake")
		return nil, fmt.Errorf("%w: %s has no active or inactive stake", ErrInvalidInherent, in.Address)
	}

	_, alreadyParked := c.currentParking[in.Address]
	c.currentParking[in.Address] = struct{}{}
	metricSlashCommitted.Add(1)
	c.reportGauges()
	return &SlashReceipt{NewlySlashed: !alreadyParked}, nil
}

// RevertSlash removes Address from current_parking if the commit newly
// added it; if the element is unexpectedly absent, that is an integrity
// error rather than a silent no-op.
func (c *Contract) RevertSlash(in SlashInput, receipt *SlashReceipt) error {
	logger.Debug("revert slash", "address", in.Address)

	if receipt == nil || !receipt.NewlySlashed {
		return nil
	}
	if _, ok := c.currentParking[in.Address]; !ok {
		return fmt.Errorf("%w: %s missing from current_parking on slash revert", ErrInvalidReceipt, in.Address)
	}
	delete(c.currentParking, in.Address)
	return nil
}

// CommitFinalizeEpoch rotates the parking sets and sweeps stake parked for a
// full epoch into inactive stake:
//  1. current_parking becomes previous_parking; the old previous_parking
//     (to_drop) is cleared out.
//  2. Every address in to_drop with a positive active balance has its full
//     balance moved to inactive stake, visited in ascending address order
//     for determinism.
//
// There is no receipt: this operation cannot be reverted.
func (c *Contract) CommitFinalizeEpoch(blockHeight uint32) error {
	logger.Debug("commit finalize epoch", "block_height", blockHeight)

	toDrop := make([]thor.Address, 0, len(c.previousParking))
	for addr := range c.previousParking {
		toDrop = append(toDrop, addr)
	}
	sort.Slice(toDrop, func(i, j int) bool { return toDrop[i].Less(toDrop[j]) })

	rotated := c.currentParking
	c.currentParking = make(map[thor.Address]struct{})
	c.previousParking = rotated

	for _, addr := range toDrop {
		stake, ok := c.active.Get(addr)
		if !ok || stake.Balance.IsZero() {
			continue
		}
		balance := stake.Balance
		if _, err := c.CommitRetireSender(RetireSenderInput{Staker: addr, TotalValue: balance}); err != nil {
			// The active entry was just read with a positive balance, so
			// this can only fail on total_balance underflow, which would
			// mean invariant 3 was already broken before this call.
			return fmt.Errorf("staking: finalize_epoch retire-sender for %s: %w", addr, err)
		}
		if _, err := c.CommitRetireRecipient(RetireRecipientInput{Staker: addr, Value: balance, BlockHeight: blockHeight}); err != nil {
			return fmt.Errorf("staking: finalize_epoch retire-recipient for %s: %w", addr, err)
		}
		logger.Info("finalize epoch retired parked stake", "address", addr, "balance", balance)
	}

	metricEpochsFinalized.Add(1)
	c.reportGauges()
	return nil
}

// RevertFinalizeEpoch always fails: FinalizeEpoch is declared irreversible
// (spec §4.F), so its revert path is unconditionally invalid rather than a
// distinct error case.
func (c *Contract) RevertFinalizeEpoch() error {
	return fmt.Errorf("%w: finalize_epoch is irreversible", ErrInvalidForTarget)
}
