// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "github.com/albatross-go/staking/thor"

// activeNode is one entry in the balance-ordered active stake list.
// activeList's linked list and its byAddress map share ownership of
// these nodes: the list threads prev/next pointers through them, and the
// map holds the same pointers keyed by address, so a lookup by address and
// a balance-ordered walk are both O(1)/O(n) over one underlying structure,
// never two copies that could drift apart (spec §9).
//
// This mirrors the teacher's builtin/staker/linked_list.go +
// ordered_linked_list.go pair in shape (head/tail, prev/next links, here an
// Insert/Remove/Replace API) with one change: the teacher threads its list through
// merkle-trie storage slots because validators there are themselves
// persistent on-chain state; this contract is a pure in-memory object
// (spec §5), so the same shape is reimplemented over plain pointers.
type activeNode struct {
	stake      ActiveStake
	prev, next *activeNode
}

// activeList is the single owner of ActiveStake entries, kept in the total
// order from spec §3 (descending balance, ascending address on ties).
type activeList struct {
	head, tail *activeNode
	byAddress  map[thor.Address]*activeNode
}

func newActiveList() *activeList {
	return &activeList{byAddress: make(map[thor.Address]*activeNode)}
}

// Len returns the number of active stakes.
func (l *activeList) Len() int {
	return len(l.byAddress)
}

// Get returns the ActiveStake for addr, if present.
func (l *activeList) Get(addr thor.Address) (ActiveStake, bool) {
	n, ok := l.byAddress[addr]
	if !ok {
		return ActiveStake{}, false
	}
	return n.stake, true
}

// Insert adds stake in its correctly ordered position. The caller must have
// already removed any prior entry for the same address: Insert does not
// merge, it assumes the map has no existing node for stake.StakerAddress.
func (l *activeList) Insert(stake ActiveStake) {
	n := &activeNode{stake: stake}
	l.byAddress[stake.StakerAddress] = n

	if l.head == nil {
		l.head = n
		l.tail = n
		return
	}

	// Walk from head until we find the first entry that should sort after
	// n, and splice n in just before it. Insertion is O(n); the ordered
	// list favors simplicity over asymptotic insert cost, matching the
	// spec's silence on a performance requirement beyond O(1) lookup and
	// O(n) preprocessing for the alias sampler (§4.C), which is the only
	// piece of this contract with a stated complexity bound.
	cur := l.head
	for cur != nil {
		if stake.less(cur.stake) {
			n.next = cur
			n.prev = cur.prev
			if cur.prev != nil {
				cur.prev.next = n
			} else {
				l.head = n
			}
			cur.prev = n
			return
		}
		cur = cur.next
	}

	// Belongs at the tail.
	n.prev = l.tail
	l.tail.next = n
	l.tail = n
}

// Remove deletes the entry for addr, returning the removed stake and
// whether it existed.
func (l *activeList) Remove(addr thor.Address) (ActiveStake, bool) {
	n, ok := l.byAddress[addr]
	if !ok {
		return ActiveStake{}, false
	}
	delete(l.byAddress, addr)

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	return n.stake, true
}

// Replace removes the entry for addr and reinserts newStake in its new
// sorted position, the remove-then-insert pattern spec §9 mandates for any
// balance-changing mutation.
func (l *activeList) Replace(addr thor.Address, newStake ActiveStake) {
	l.Remove(addr)
	l.Insert(newStake)
}

// Slice returns the active stakes in sorted order (descending balance,
// ascending address). Used by validator selection and canonical encoding.
func (l *activeList) Slice() []ActiveStake {
	out := make([]ActiveStake, 0, l.Len())
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.stake)
	}
	return out
}

// clone deep-copies the list; Contract.clone uses it to take a snapshot of
// the whole contract.
func (l *activeList) clone() *activeList {
	out := newActiveList()
	for n := l.head; n != nil; n = n.next {
		out.Insert(n.stake)
	}
	return out
}
