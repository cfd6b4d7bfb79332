// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"fmt"

	"github.com/albatross-go/staking/config"
	"github.com/albatross-go/staking/thor"
)

// Contract is the staking contract's root state object: the authoritative
// ledger of active stake, inactive stake, and parking sets. It is a
// single-owner, synchronous object (spec §5) — never call its methods
// concurrently from more than one goroutine.
type Contract struct {
	policy *config.Policy

	totalBalance thor.Coin
	active       *activeList
	inactive     map[thor.Address]InactiveStake

	currentParking  map[thor.Address]struct{}
	previousParking map[thor.Address]struct{}
}

// New returns an empty contract parameterized by policy.
func New(policy *config.Policy) *Contract {
	if policy == nil {
		policy = config.DefaultPolicy()
	}
	return &Contract{
		policy:          policy,
		active:          newActiveList(),
		inactive:        make(map[thor.Address]InactiveStake),
		currentParking:  make(map[thor.Address]struct{}),
		previousParking: make(map[thor.Address]struct{}),
	}
}

// Policy returns the contract's protocol constants.
func (c *Contract) Policy() *config.Policy {
	return c.policy
}

// TotalBalance returns the sum of all active and inactive balances.
func (c *Contract) TotalBalance() thor.Coin {
	return c.totalBalance
}

// ActiveBalance returns addr's active stake, or zero if none.
func (c *Contract) ActiveBalance(addr thor.Address) thor.Coin {
	if s, ok := c.active.Get(addr); ok {
		return s.Balance
	}
	return 0
}

// InactiveBalance returns addr's inactive stake, or zero if none.
func (c *Contract) InactiveBalance(addr thor.Address) thor.Coin {
	if s, ok := c.inactive[addr]; ok {
		return s.Balance
	}
	return 0
}

// Balance returns addr's total stake: active plus inactive.
func (c *Contract) Balance(addr thor.Address) thor.Coin {
	active := c.ActiveBalance(addr)
	inactive := c.InactiveBalance(addr)
	sum, err := active.Add(inactive)
	if err != nil {
		// Unreachable in a contract that has maintained invariant 3 up to
		// this point; surfaced as a Coin overflow would be for any other
		// arithmetic bug.
		panic(fmt.Sprintf("staking: balance overflow for %s: %v", addr, err))
	}
	return sum
}

// IsParked reports whether addr is in either parking set.
func (c *Contract) IsParked(addr thor.Address) bool {
	_, cur := c.currentParking[addr]
	_, prev := c.previousParking[addr]
	return cur || prev
}

// ActiveStakes returns the active stakes in the canonical sort order
// (descending balance, ascending address). The returned slice is a copy;
// mutating it does not affect the contract.
func (c *Contract) ActiveStakes() []ActiveStake {
	return c.active.Slice()
}

// clone deep-copies the contract, giving a snapshot that restoreFrom can
// put back. None of the commit or revert methods call it; they run their
// checks before mutating instead. The tests use it.
func (c *Contract) clone() *Contract {
	out := &Contract{
		policy:          c.policy,
		totalBalance:    c.totalBalance,
		active:          c.active.clone(),
		inactive:        make(map[thor.Address]InactiveStake, len(c.inactive)),
		currentParking:  make(map[thor.Address]struct{}, len(c.currentParking)),
		previousParking: make(map[thor.Address]struct{}, len(c.previousParking)),
	}
	for k, v := range c.inactive {
		out.inactive[k] = v
	}
	for k := range c.currentParking {
		out.currentParking[k] = struct{}{}
	}
	for k := range c.previousParking {
		out.previousParking[k] = struct{}{}
	}
	return out
}

// restoreFrom overwrites c's fields with snapshot's, rolling c back to a
// snapshot taken with clone.
func (c *Contract) restoreFrom(snapshot *Contract) {
	c.policy = snapshot.policy
	c.totalBalance = snapshot.totalBalance
	c.active = snapshot.active
	c.inactive = snapshot.inactive
	c.currentParking = snapshot.currentParking
	c.previousParking = snapshot.previousParking
}

// CheckInvariants validates invariants 1-6 from spec §3. It is exported for
// use by tests asserting the contract never reaches an inconsistent state;
// production code never needs to call it, since every mutator maintains the
// invariants by construction.
func (c *Contract) CheckInvariants() error {
	var sumActive, sumInactive thor.Coin
	seen := make(map[thor.Address]struct{}, c.active.Len())

	for n := c.active.head; n != nil; n = n.next {
		if n.stake.Balance.IsZero() {
			return fmt.Errorf("staking: invariant violated: zero-balance active stake for %s", n.stake.StakerAddress)
		}
		if n.next != nil && !n.stake.less(n.next.stake) {
			return fmt.Errorf("staking: invariant violated: active_sorted out of order at %s", n.stake.StakerAddress)
		}
		seen[n.stake.StakerAddress] = struct{}{}
		var err error
		sumActive, err = sumActive.Add(n.stake.Balance)
		if err != nil {
			return err
		}
	}
	if len(seen) != len(c.active.byAddress) {
		return fmt.Errorf("staking: invariant violated: active_sorted and active_by_address disagree")
	}
	for addr := range seen {
		if _, ok := c.active.byAddress[addr]; !ok {
			return fmt.Errorf("staking: invariant violated: %s missing from active_by_address", addr)
		}
	}

	for addr, s := range c.inactive {
		if s.Balance.IsZero() {
			return fmt.Errorf("staking: invariant violated: zero-balance inactive stake for %s", addr)
		}
		var err error
		sumInactive, err = sumInactive.Add(s.Balance)
		if err != nil {
			return err
		}
	}

	total, err := sumActive.Add(sumInactive)
	if err != nil {
		return err
	}
	if total != c.totalBalance {
		return fmt.Errorf("staking: invariant violated: total_balance %d != sum of balances %d", c.totalBalance, total)
	}
	return nil
}
