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

func TestUnstakeBeforeDelayFails(t *testing.T) {
	c := newTestContract()
	_, err := c.CommitRetireRecipient(RetireRecipientInput{Staker: addr(1), Value: 100, BlockHeight: 10})
	require.NoError(t, err)

	_, err = c.CommitUnstake(UnstakeInput{Staker: addr(1), TotalValue: 100, BlockHeight: 10})
	assert.ErrorIs(t, err, ErrInvalidForSender)
}

func TestUnstakeAfterDelaySucceeds(t *testing.T) {
	c := newTestContract()
	_, err := c.CommitRetireRecipient(RetireRecipientInput{Staker: addr(1), Value: 100, BlockHeight: 10})
	require.NoError(t, err)

	macro := c.policy.MacroBlockAfter(10)
	eligible := macro + c.policy.UnstakingDelay

	in := UnstakeInput{Staker: addr(1), TotalValue: 40, BlockHeight: eligible}
	receipt, err := c.CommitUnstake(in)
	require.NoError(t, err)
	assert.Nil(t, receipt)
	assert.Equal(t, thor.Coin(60), c.InactiveBalance(addr(1)))

	require.NoError(t, c.RevertUnstake(in, receipt))
	assert.Equal(t, thor.Coin(100), c.InactiveBalance(addr(1)))
}

func TestUnstakeFullWithdrawalRemovesEntry(t *testing.T) {
	c := newTestContract()
	_, err := c.CommitRetireRecipient(RetireRecipientInput{Staker: addr(1), Value: 100, BlockHeight: 10})
	require.NoError(t, err)

	eligible := c.policy.MacroBlockAfter(10) + c.policy.UnstakingDelay
	in := UnstakeInput{Staker: addr(1), TotalValue: 100, BlockHeight: eligible}
	receipt, err := c.CommitUnstake(in)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, uint32(10), receipt.RetireTime)
	_, ok := c.inactive[addr(1)]
	assert.False(t, ok)

	require.NoError(t, c.RevertUnstake(in, receipt))
	assert.Equal(t, thor.Coin(100), c.InactiveBalance(addr(1)))
}

func TestUnstakeInsufficientBalance(t *testing.T) {
	c := newTestContract()
	_, err := c.CommitRetireRecipient(RetireRecipientInput{Staker: addr(1), Value: 10, BlockHeight: 0})
	require.NoError(t, err)

	eligible := c.policy.MacroBlockAfter(0) + c.policy.UnstakingDelay
	_, err = c.CommitUnstake(UnstakeInput{Staker: addr(1), TotalValue: 100, BlockHeight: eligible})
	assert.ErrorIs(t, err, ErrInvalidForSender)
}
