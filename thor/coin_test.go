// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albatross-go/staking/thor"
)

func TestCoinAdd(t *testing.T) {
	sum, err := thor.Coin(40).Add(60)
	require.NoError(t, err)
	assert.Equal(t, thor.Coin(100), sum)
}

func TestCoinAddOverflow(t *testing.T) {
	_, err := thor.Coin(math.MaxUint64).Add(1)
	assert.ErrorIs(t, err, thor.ErrCoinOverflow)
}

func TestCoinSub(t *testing.T) {
	diff, err := thor.Coin(100).Sub(40)
	require.NoError(t, err)
	assert.Equal(t, thor.Coin(60), diff)
}

func TestCoinSubUnderflow(t *testing.T) {
	_, err := thor.Coin(10).Sub(11)
	assert.ErrorIs(t, err, thor.ErrCoinUnderflow)
}

func TestCoinSufficient(t *testing.T) {
	assert.True(t, thor.Coin(100).Sufficient(100))
	assert.False(t, thor.Coin(99).Sufficient(100))
}
