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

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := newTestContract()
	reward := addr(9)
	_, err := c.CommitStake(StakeInput{Staker: addr(1), Value: 100, ValidatorKey: thor.ValidatorKey{0x01}, RewardAddress: &reward})
	require.NoError(t, err)
	_, err = c.CommitStake(StakeInput{Staker: addr(2), Value: 200})
	require.NoError(t, err)

	// addr(1) retires partially: now has both an active and inactive entry.
	_, err = c.CommitRetireSender(RetireSenderInput{Staker: addr(1), TotalValue: 40})
	require.NoError(t, err)
	_, err = c.CommitRetireRecipient(RetireRecipientInput{Staker: addr(1), Value: 40, BlockHeight: 5})
	require.NoError(t, err)

	// addr(3) is a pure orphan: inactive stake, never active.
	_, err = c.CommitRetireRecipient(RetireRecipientInput{Staker: addr(3), Value: 15, BlockHeight: 8})
	require.NoError(t, err)

	c.currentParking[addr(4)] = struct{}{}
	c.previousParking[addr(5)] = struct{}{}

	encoded := c.Encode()
	decoded, err := Decode(c.policy, encoded)
	require.NoError(t, err)

	assert.Equal(t, c.TotalBalance(), decoded.TotalBalance())
	assert.Equal(t, c.ActiveStakes(), decoded.ActiveStakes())
	assert.Equal(t, c.inactive, decoded.inactive)
	assert.Equal(t, c.currentParking, decoded.currentParking)
	assert.Equal(t, c.previousParking, decoded.previousParking)
	require.NoError(t, decoded.CheckInvariants())

	assert.Equal(t, encoded, decoded.Encode())
}

func TestDecodeTruncatedFails(t *testing.T) {
	c := newTestContract()
	_, err := c.CommitStake(StakeInput{Staker: addr(1), Value: 100})
	require.NoError(t, err)

	encoded := c.Encode()
	_, err = Decode(c.policy, encoded[:len(encoded)-1])
	assert.Error(t, err)
}
