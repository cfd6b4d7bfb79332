// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albatross-go/staking/thor"
)

func TestCommitSlashRequiresStake(t *testing.T) {
	c := newTestContract()
	_, err := c.CommitSlash(SlashInput{Address: addr(1)})
	assert.ErrorIs(t, err, ErrInvalidInherent)
}

func TestCommitSlashNewlySlashedAndRepeat(t *testing.T) {
	c := newTestContract()
	_, err := c.CommitStake(StakeInput{Staker: addr(1), Value: 10})
	require.NoError(t, err)

	receipt, err := c.CommitSlash(SlashInput{Address: addr(1)})
	require.NoError(t, err)
	assert.True(t, receipt.NewlySlashed)

	receipt2, err := c.CommitSlash(SlashInput{Address: addr(1)})
	require.NoError(t, err)
	assert.False(t, receipt2.NewlySlashed)

	require.NoError(t, c.RevertSlash(SlashInput{Address: addr(1)}, receipt2))
	assert.True(t, c.IsParked(addr(1)))

	require.NoError(t, c.RevertSlash(SlashInput{Address: addr(1)}, receipt))
	assert.False(t, c.IsParked(addr(1)))
}

func TestFinalizeEpochRotatesAndSweepsParkedStake(t *testing.T) {
	c := newTestContract()
	_, err := c.CommitStake(StakeInput{Staker: addr(1), Value: 100})
	require.NoError(t, err)
	_, err = c.CommitStake(StakeInput{Staker: addr(2), Value: 50})
	require.NoError(t, err)

	// addr(1) was slashed an epoch ago: it sits in previous_parking already.
	c.previousParking[addr(1)] = struct{}{}
	// addr(2) was slashed this epoch: current_parking, not yet swept.
	c.currentParking[addr(2)] = struct{}{}

	require.NoError(t, c.CommitFinalizeEpoch(1000))

	// addr(1)'s stake is swept to inactive; its active entry is gone.
	_, ok := c.active.Get(addr(1))
	assert.False(t, ok)
	assert.Equal(t, thor.Coin(100), c.InactiveBalance(addr(1)))

	// addr(2) is now in previous_parking (rotated) but not yet swept.
	assert.Equal(t, thor.Coin(50), c.ActiveBalance(addr(2)))
	_, inPrev := c.previousParking[addr(2)]
	assert.True(t, inPrev)
	_, inCur := c.currentParking[addr(1)]
	assert.False(t, inCur)
	assert.Len(t, c.currentParking, 0)

	require.NoError(t, c.CheckInvariants())
}

func TestFinalizeEpochIsIrreversible(t *testing.T) {
	c := newTestContract()
	require.NoError(t, c.CommitFinalizeEpoch(1))
	err := c.RevertFinalizeEpoch()
	assert.ErrorIs(t, err, ErrInvalidForTarget)
}
