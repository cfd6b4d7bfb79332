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

func addr(b byte) thor.Address {
	var a thor.Address
	a[len(a)-1] = b
	return a
}

func TestActiveListOrdering(t *testing.T) {
	l := newActiveList()
	l.Insert(ActiveStake{StakerAddress: addr(1), Balance: 10})
	l.Insert(ActiveStake{StakerAddress: addr(2), Balance: 30})
	l.Insert(ActiveStake{StakerAddress: addr(3), Balance: 20})
	l.Insert(ActiveStake{StakerAddress: addr(4), Balance: 30})

	got := l.Slice()
	require.Len(t, got, 4)
	// descending balance, ascending address on ties.
	assert.Equal(t, addr(2), got[0].StakerAddress)
	assert.Equal(t, addr(4), got[1].StakerAddress)
	assert.Equal(t, addr(3), got[2].StakerAddress)
	assert.Equal(t, addr(1), got[3].StakerAddress)
}

func TestActiveListGetRemove(t *testing.T) {
	l := newActiveList()
	l.Insert(ActiveStake{StakerAddress: addr(1), Balance: 10})

	s, ok := l.Get(addr(1))
	require.True(t, ok)
	assert.Equal(t, thor.Coin(10), s.Balance)

	removed, ok := l.Remove(addr(1))
	require.True(t, ok)
	assert.Equal(t, thor.Coin(10), removed.Balance)
	assert.Equal(t, 0, l.Len())

	_, ok = l.Remove(addr(1))
	assert.False(t, ok)
}

func TestActiveListReplace(t *testing.T) {
	l := newActiveList()
	l.Insert(ActiveStake{StakerAddress: addr(1), Balance: 10})
	l.Insert(ActiveStake{StakerAddress: addr(2), Balance: 50})

	l.Replace(addr(1), ActiveStake{StakerAddress: addr(1), Balance: 100})

	got := l.Slice()
	require.Len(t, got, 2)
	assert.Equal(t, addr(1), got[0].StakerAddress)
	assert.Equal(t, addr(2), got[1].StakerAddress)
}

func TestActiveListClone(t *testing.T) {
	l := newActiveList()
	l.Insert(ActiveStake{StakerAddress: addr(1), Balance: 10})
	l.Insert(ActiveStake{StakerAddress: addr(2), Balance: 20})

	cloned := l.clone()
	cloned.Remove(addr(1))

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 1, cloned.Len())
}
