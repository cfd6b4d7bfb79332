// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/albatross-go/staking/alias"
	"github.com/albatross-go/staking/cache"
	"github.com/albatross-go/staking/thor"
	"github.com/albatross-go/staking/vrfseed"
)

// ErrNoActiveStakes is returned by SelectValidators when there is nothing to
// sample from (spec §4.G: the caller must prevent the undefined
// zero-weight/empty case before calling the alias sampler).
var ErrNoActiveStakes = errors.New("staking: no active stakes to select validators from")

// Assignment is one validator slot assignment: the tuple returned for each
// of the SLOTS draws in validator selection.
type Assignment struct {
	ValidatorKey  thor.ValidatorKey
	StakerAddress thor.Address
	RewardAddress *thor.Address
}

// tableCache memoizes the alias table built from the current active stake
// distribution, keyed by a hash of that distribution, so repeated selection
// calls within the same epoch (no intervening Stake/Retire/Unpark mutation)
// don't repeat the O(n) preprocessing.
var tableCache = cache.NewLRU(32)

// SelectValidators draws exactly Policy().Slots validator assignments from
// the active stake distribution, seeded by seed (spec §4.G). Active stakes
// are enumerated in active_sorted order (descending balance, ascending
// address) — the same order Encode uses — so the alias table's index
// assignment is reproducible from the contract's canonical byte encoding
// alone.
func (c *Contract) SelectValidators(seed vrfseed.Seed) ([]Assignment, error) {
	actives := c.active.Slice()
	if len(actives) == 0 {
		return nil, ErrNoActiveStakes
	}

	weights := make([]uint64, len(actives))
	var anyNonZero bool
	for i, a := range actives {
		weights[i] = uint64(a.Balance)
		if weights[i] != 0 {
			anyNonZero = true
		}
	}
	if !anyNonZero {
		return nil, ErrNoActiveStakes
	}

	table, err := c.aliasTable(actives, weights)
	if err != nil {
		return nil, fmt.Errorf("staking: building alias table: %w", err)
	}

	rng := seed.Rng(vrfseed.ValidatorSelection, 0)
	slots := c.policy.Slots
	assignments := make([]Assignment, 0, slots)
	for i := uint32(0); i < slots; i++ {
		idx := table.Sample(rng)
		a := actives[idx]
		assignments = append(assignments, Assignment{
			ValidatorKey:  a.ValidatorKey,
			StakerAddress: a.StakerAddress,
			RewardAddress: a.RewardAddress,
		})
	}
	return assignments, nil
}

func (c *Contract) aliasTable(actives []ActiveStake, weights []uint64) (*alias.Table, error) {
	h := crypto.NewKeccakState()
	for _, a := range actives {
		h.Write(a.StakerAddress.Bytes())
		var bal [8]byte
		for i := 0; i < 8; i++ {
			bal[7-i] = byte(a.Balance >> (8 * i))
		}
		h.Write(bal[:])
	}
	var key [32]byte
	h.Read(key[:])

	v, err := tableCache.GetOrLoad(key, func(interface{}) (interface{}, error) {
		return alias.New(weights)
	})
	if err != nil {
		return nil, err
	}
	return v.(*alias.Table), nil
}
