// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrfseed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/albatross-go/staking/vrfseed"
)

func TestRngDeterministic(t *testing.T) {
	seed := vrfseed.New([]byte("seed-bytes-for-test"))

	rng1 := seed.Rng(vrfseed.ValidatorSelection, 0)
	rng2 := seed.Rng(vrfseed.ValidatorSelection, 0)

	for i := 0; i < 5; i++ {
		assert.Equal(t, rng1.Index(17), rng2.Index(17))
		assert.Equal(t, rng1.Fraction(1000), rng2.Fraction(1000))
	}
}

func TestRngNonceIsolatesStreams(t *testing.T) {
	seed := vrfseed.New([]byte("seed-bytes"))

	rngA := seed.Rng(vrfseed.ValidatorSelection, 0)
	rngB := seed.Rng(vrfseed.ValidatorSelection, 1)

	same := true
	for i := 0; i < 10; i++ {
		if rngA.Index(1_000_000) != rngB.Index(1_000_000) {
			same = false
		}
	}
	assert.False(t, same, "different nonces must not produce identical streams")
}

func TestIndexWithinBounds(t *testing.T) {
	seed := vrfseed.New([]byte("another-seed"))
	rng := seed.Rng(vrfseed.ValidatorSelection, 42)
	for i := 0; i < 100; i++ {
		idx := rng.Index(13)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 13)
	}
}
