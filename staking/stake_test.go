// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albatross-go/staking/thor"
)

func TestCommitStakeNewEntry(t *testing.T) {
	c := newTestContract()
	receipt, err := c.CommitStake(StakeInput{Staker: addr(1), Value: 100, ValidatorKey: thor.ValidatorKey{0x01}})
	require.NoError(t, err)
	assert.Nil(t, receipt)
	assert.Equal(t, thor.Coin(100), c.ActiveBalance(addr(1)))
	require.NoError(t, c.CheckInvariants())
}

func TestCommitStakeExistingEntryOverwritesKeyAndReward(t *testing.T) {
	c := newTestContract()
	oldReward := addr(9)
	_, err := c.CommitStake(StakeInput{Staker: addr(1), Value: 100, ValidatorKey: thor.ValidatorKey{0x01}, RewardAddress: &oldReward})
	require.NoError(t, err)

	newReward := addr(8)
	receipt, err := c.CommitStake(StakeInput{Staker: addr(1), Value: 50, ValidatorKey: thor.ValidatorKey{0x02}, RewardAddress: &newReward})
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, thor.ValidatorKey{0x01}, receipt.ValidatorKey)
	assert.Equal(t, &oldReward, receipt.RewardAddress)

	s, ok := c.active.Get(addr(1))
	require.True(t, ok)
	assert.Equal(t, thor.Coin(150), s.Balance)
	assert.Equal(t, thor.ValidatorKey{0x02}, s.ValidatorKey)
	assert.Equal(t, &newReward, s.RewardAddress)
}

func TestCommitStakeOverflow(t *testing.T) {
	c := newTestContract()
	_, err := c.CommitStake(StakeInput{Staker: addr(1), Value: thor.Coin(math.MaxUint64)})
	require.NoError(t, err)

	_, err = c.CommitStake(StakeInput{Staker: addr(1), Value: 1})
	assert.ErrorIs(t, err, ErrInvalidForRecipient)
}

func TestRevertStakeRoundTripNewEntry(t *testing.T) {
	c := newTestContract()
	in := StakeInput{Staker: addr(1), Value: 100}
	receipt, err := c.CommitStake(in)
	require.NoError(t, err)

	require.NoError(t, c.RevertStake(in, receipt))
	_, ok := c.active.Get(addr(1))
	assert.False(t, ok)
	assert.Equal(t, thor.Coin(0), c.TotalBalance())
}

func TestRevertStakeRoundTripExistingEntry(t *testing.T) {
	c := newTestContract()
	oldKey := thor.ValidatorKey{0x01}
	_, err := c.CommitStake(StakeInput{Staker: addr(1), Value: 100, ValidatorKey: oldKey})
	require.NoError(t, err)

	in := StakeInput{Staker: addr(1), Value: 50, ValidatorKey: thor.ValidatorKey{0x02}}
	receipt, err := c.CommitStake(in)
	require.NoError(t, err)

	require.NoError(t, c.RevertStake(in, receipt))
	s, ok := c.active.Get(addr(1))
	require.True(t, ok)
	assert.Equal(t, thor.Coin(100), s.Balance)
	assert.Equal(t, oldKey, s.ValidatorKey)
}

func TestRevertStakeInconsistentReceiptFails(t *testing.T) {
	c := newTestContract()
	in := StakeInput{Staker: addr(1), Value: 100}
	_, err := c.CommitStake(in)
	require.NoError(t, err)

	err = c.RevertStake(StakeInput{Staker: addr(1), Value: 999}, nil)
	assert.ErrorIs(t, err, ErrInvalidReceipt)
}
