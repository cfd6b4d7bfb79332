// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albatross-go/staking/config"
)

func newTestContract() *Contract {
	return New(config.DefaultPolicy())
}

func TestNewContractEmpty(t *testing.T) {
	c := newTestContract()
	require.NoError(t, c.CheckInvariants())
	assert.Equal(t, uint64(0), uint64(c.TotalBalance()))
	assert.Equal(t, uint64(0), uint64(c.Balance(addr(1))))
}

func TestContractBalanceIsActivePlusInactive(t *testing.T) {
	c := newTestContract()
	_, err := c.CommitStake(StakeInput{Staker: addr(1), Value: 100})
	require.NoError(t, err)

	_, err = c.CommitRetireSender(RetireSenderInput{Staker: addr(1), TotalValue: 40})
	require.NoError(t, err)
	_, err = c.CommitRetireRecipient(RetireRecipientInput{Staker: addr(1), Value: 40, BlockHeight: 10})
	require.NoError(t, err)

	assert.Equal(t, uint64(60), uint64(c.ActiveBalance(addr(1))))
	assert.Equal(t, uint64(40), uint64(c.InactiveBalance(addr(1))))
	assert.Equal(t, uint64(100), uint64(c.Balance(addr(1))))
	require.NoError(t, c.CheckInvariants())
}

func TestContractCloneIsIndependent(t *testing.T) {
	c := newTestContract()
	_, err := c.CommitStake(StakeInput{Staker: addr(1), Value: 100})
	require.NoError(t, err)

	snapshot := c.clone()
	_, err = c.CommitStake(StakeInput{Staker: addr(2), Value: 5})
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.active.Len())
	assert.Equal(t, 2, c.active.Len())

	c.restoreFrom(snapshot)
	assert.Equal(t, 1, c.active.Len())
	assert.Equal(t, uint64(100), uint64(c.TotalBalance()))
}

func TestCheckInvariantsCatchesTotalMismatch(t *testing.T) {
	c := newTestContract()
	_, err := c.CommitStake(StakeInput{Staker: addr(1), Value: 100})
	require.NoError(t, err)

	c.totalBalance = 999
	assert.Error(t, c.CheckInvariants())
}
