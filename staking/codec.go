// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"fmt"
	"sort"

	"github.com/albatross-go/staking/codec"
	"github.com/albatross-go/staking/config"
	"github.com/albatross-go/staking/thor"
)

func writeOptionalAddress(w *codec.Writer, addr *thor.Address) {
	w.WriteBool(addr != nil)
	if addr != nil {
		w.WriteBytes(addr.Bytes())
	}
}

func readOptionalAddress(r *codec.Reader) (*thor.Address, error) {
	present, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	b, err := r.ReadBytes(thor.AddressLength)
	if err != nil {
		return nil, err
	}
	addr := thor.BytesToAddress(b)
	return &addr, nil
}

func writeValidatorKey(w *codec.Writer, k thor.ValidatorKey) {
	w.WriteBytes(k.Bytes())
}

func readValidatorKey(r *codec.Reader) (thor.ValidatorKey, error) {
	b, err := r.ReadBytes(thor.ValidatorKeyLength)
	if err != nil {
		return thor.ValidatorKey{}, err
	}
	k, ok := thor.ValidatorKeyFromBytes(b)
	if !ok {
		return thor.ValidatorKey{}, fmt.Errorf("codec: invalid validator key length")
	}
	return k, nil
}

// Encode serializes the contract in the canonical format from spec §6:
// total balance, then every active stake (in active_sorted order) paired
// with its same-address inactive entry if any, then the "orphan" inactive
// stakes with no active counterpart sorted by (address, balance,
// retire_time), then the two parking sets.
func (c *Contract) Encode() []byte {
	w := codec.NewWriter()
	w.WriteUint64(uint64(c.totalBalance))

	actives := c.active.Slice()
	w.WriteUint32(uint32(len(actives)))
	for _, a := range actives {
		w.WriteBytes(a.StakerAddress.Bytes())
		w.WriteUint64(uint64(a.Balance))
		writeValidatorKey(w, a.ValidatorKey)
		writeOptionalAddress(w, a.RewardAddress)

		inactive, hasInactive := c.inactive[a.StakerAddress]
		w.WriteBool(hasInactive)
		if hasInactive {
			w.WriteUint64(uint64(inactive.Balance))
			w.WriteUint32(inactive.RetireTime)
		}
	}

	type orphan struct {
		addr  thor.Address
		stake InactiveStake
	}
	var orphans []orphan
	for addr, stake := range c.inactive {
		if _, hasActive := c.active.Get(addr); hasActive {
			continue
		}
		orphans = append(orphans, orphan{addr, stake})
	}
	sort.Slice(orphans, func(i, j int) bool {
		if orphans[i].addr != orphans[j].addr {
			return orphans[i].addr.Less(orphans[j].addr)
		}
		if orphans[i].stake.Balance != orphans[j].stake.Balance {
			return orphans[i].stake.Balance < orphans[j].stake.Balance
		}
		return orphans[i].stake.RetireTime < orphans[j].stake.RetireTime
	})
	w.WriteUint32(uint32(len(orphans)))
	for _, o := range orphans {
		w.WriteBytes(o.addr.Bytes())
		w.WriteUint64(uint64(o.stake.Balance))
		w.WriteUint32(o.stake.RetireTime)
	}

	writeAddressSet(w, c.currentParking)
	writeAddressSet(w, c.previousParking)

	return w.Bytes()
}

func writeAddressSet(w *codec.Writer, set map[thor.Address]struct{}) {
	addrs := make([]thor.Address, 0, len(set))
	for a := range set {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Less(addrs[j]) })
	w.WriteUint32(uint32(len(addrs)))
	for _, a := range addrs {
		w.WriteBytes(a.Bytes())
	}
}

func readAddressSet(r *codec.Reader) (map[thor.Address]struct{}, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	set := make(map[thor.Address]struct{}, n)
	for i := uint32(0); i < n; i++ {
		b, err := r.ReadBytes(thor.AddressLength)
		if err != nil {
			return nil, err
		}
		set[thor.BytesToAddress(b)] = struct{}{}
	}
	return set, nil
}

// Decode parses a contract previously produced by Encode, reconstructing
// the active list, inactive map and parking sets bit-exactly. policy is not
// part of the encoded bytes — it is supplied by the caller, the same way
// the teacher's genesis loader attaches chain parameters to a decoded
// state object rather than encoding them alongside it.
func Decode(policy *config.Policy, b []byte) (*Contract, error) {
	r := codec.NewReader(b)

	totalBalance, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}

	if policy == nil {
		policy = config.DefaultPolicy()
	}
	c := &Contract{
		policy:       policy,
		totalBalance: thor.Coin(totalBalance),
		active:       newActiveList(),
		inactive:     make(map[thor.Address]InactiveStake),
	}

	activeCount, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < activeCount; i++ {
		addrBytes, err := r.ReadBytes(thor.AddressLength)
		if err != nil {
			return nil, err
		}
		addr := thor.BytesToAddress(addrBytes)
		balance, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		key, err := readValidatorKey(r)
		if err != nil {
			return nil, err
		}
		reward, err := readOptionalAddress(r)
		if err != nil {
			return nil, err
		}
		c.active.Insert(ActiveStake{
			StakerAddress: addr,
			Balance:       thor.Coin(balance),
			ValidatorKey:  key,
			RewardAddress: reward,
		})

		hasInactive, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		if hasInactive {
			inactiveBalance, err := r.ReadUint64()
			if err != nil {
				return nil, err
			}
			retireTime, err := r.ReadUint32()
			if err != nil {
				return nil, err
			}
			c.inactive[addr] = InactiveStake{Balance: thor.Coin(inactiveBalance), RetireTime: retireTime}
		}
	}

	orphanCount, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < orphanCount; i++ {
		addrBytes, err := r.ReadBytes(thor.AddressLength)
		if err != nil {
			return nil, err
		}
		addr := thor.BytesToAddress(addrBytes)
		balance, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		retireTime, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		c.inactive[addr] = InactiveStake{Balance: thor.Coin(balance), RetireTime: retireTime}
	}

	c.currentParking, err = readAddressSet(r)
	if err != nil {
		return nil, err
	}
	c.previousParking, err = readAddressSet(r)
	if err != nil {
		return nil, err
	}

	return c, nil
}
