// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package alias_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albatross-go/staking/alias"
)

// sequenceSource replays a fixed sequence of (index, fraction) draws, useful
// for pinning exact sampling outcomes in a deterministic test.
type sequenceSource struct {
	indices   []int
	fractions []uint64
	i         int
}

func (s *sequenceSource) Index(n int) int {
	v := s.indices[s.i]
	return v % n
}

func (s *sequenceSource) Fraction(denom uint64) uint64 {
	v := s.fractions[s.i]
	s.i++
	return v % denom
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := alias.New(nil)
	assert.ErrorIs(t, err, alias.ErrEmptyWeights)
}

func TestNewRejectsAllZero(t *testing.T) {
	_, err := alias.New([]uint64{0, 0, 0})
	assert.ErrorIs(t, err, alias.ErrZeroTotalWeight)
}

func TestSampleWithinRange(t *testing.T) {
	tbl, err := alias.New([]uint64{10, 20, 30, 40})
	require.NoError(t, err)

	src := &sequenceSource{
		indices:   []int{0, 1, 2, 3, 0, 1, 2, 3},
		fractions: []uint64{0, 0, 0, 0, 3, 3, 3, 3},
	}
	for i := 0; i < 8; i++ {
		idx := tbl.Sample(src)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, tbl.Len())
	}
}

func TestSampleSingleWeight(t *testing.T) {
	tbl, err := alias.New([]uint64{7})
	require.NoError(t, err)
	src := &sequenceSource{indices: []int{0}, fractions: []uint64{0}}
	assert.Equal(t, 0, tbl.Sample(src))
}

func TestSampleDeterministic(t *testing.T) {
	weights := []uint64{5, 1, 1, 1}
	tbl1, err := alias.New(weights)
	require.NoError(t, err)
	tbl2, err := alias.New(weights)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		src1 := &sequenceSource{indices: []int{i, i}, fractions: []uint64{uint64(i), uint64(i)}}
		src2 := &sequenceSource{indices: []int{i, i}, fractions: []uint64{uint64(i), uint64(i)}}
		assert.Equal(t, tbl1.Sample(src1), tbl2.Sample(src2))
	}
}
