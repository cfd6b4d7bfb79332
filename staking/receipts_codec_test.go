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

func TestActiveStakeReceiptRoundTrip(t *testing.T) {
	reward := addr(3)
	rc := &ActiveStakeReceipt{ValidatorKey: thor.ValidatorKey{0x42}, RewardAddress: &reward}
	decoded, err := DecodeActiveStakeReceipt(rc.Encode())
	require.NoError(t, err)
	assert.Equal(t, rc, decoded)
}

func TestActiveStakeReceiptRoundTripNoReward(t *testing.T) {
	rc := &ActiveStakeReceipt{ValidatorKey: thor.ValidatorKey{0x42}}
	decoded, err := DecodeActiveStakeReceipt(rc.Encode())
	require.NoError(t, err)
	assert.Equal(t, rc, decoded)
}

func TestInactiveStakeReceiptRoundTrip(t *testing.T) {
	rc := &InactiveStakeReceipt{RetireTime: 12345}
	decoded, err := DecodeInactiveStakeReceipt(rc.Encode())
	require.NoError(t, err)
	assert.Equal(t, rc, decoded)
}

func TestUnparkReceiptRoundTrip(t *testing.T) {
	rc := &UnparkReceipt{WasInCurrent: true, WasInPrevious: false}
	decoded, err := DecodeUnparkReceipt(rc.Encode())
	require.NoError(t, err)
	assert.Equal(t, rc, decoded)
}

func TestSlashReceiptRoundTrip(t *testing.T) {
	rc := &SlashReceipt{NewlySlashed: true}
	decoded, err := DecodeSlashReceipt(rc.Encode())
	require.NoError(t, err)
	assert.Equal(t, rc, decoded)
}
