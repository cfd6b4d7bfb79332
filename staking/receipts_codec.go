// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "github.com/albatross-go/staking/codec"

// Encode serializes an ActiveStakeReceipt: validator_key followed by an
// optional reward_address.
func (rc *ActiveStakeReceipt) Encode() []byte {
	w := codec.NewWriter()
	writeValidatorKey(w, rc.ValidatorKey)
	writeOptionalAddress(w, rc.RewardAddress)
	return w.Bytes()
}

// DecodeActiveStakeReceipt parses bytes produced by ActiveStakeReceipt.Encode.
func DecodeActiveStakeReceipt(b []byte) (*ActiveStakeReceipt, error) {
	r := codec.NewReader(b)
	key, err := readValidatorKey(r)
	if err != nil {
		return nil, err
	}
	reward, err := readOptionalAddress(r)
	if err != nil {
		return nil, err
	}
	return &ActiveStakeReceipt{ValidatorKey: key, RewardAddress: reward}, nil
}

// Encode serializes an InactiveStakeReceipt: a single u32 retire_time.
func (rc *InactiveStakeReceipt) Encode() []byte {
	w := codec.NewWriter()
	w.WriteUint32(rc.RetireTime)
	return w.Bytes()
}

// DecodeInactiveStakeReceipt parses bytes produced by
// InactiveStakeReceipt.Encode.
func DecodeInactiveStakeReceipt(b []byte) (*InactiveStakeReceipt, error) {
	r := codec.NewReader(b)
	t, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return &InactiveStakeReceipt{RetireTime: t}, nil
}

// Encode serializes an UnparkReceipt: two booleans, current_epoch then
// previous_epoch.
func (rc *UnparkReceipt) Encode() []byte {
	w := codec.NewWriter()
	w.WriteBool(rc.WasInCurrent)
	w.WriteBool(rc.WasInPrevious)
	return w.Bytes()
}

// DecodeUnparkReceipt parses bytes produced by UnparkReceipt.Encode.
func DecodeUnparkReceipt(b []byte) (*UnparkReceipt, error) {
	r := codec.NewReader(b)
	cur, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	prev, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	return &UnparkReceipt{WasInCurrent: cur, WasInPrevious: prev}, nil
}

// Encode serializes a SlashReceipt: a single boolean, newly_slashed.
func (rc *SlashReceipt) Encode() []byte {
	w := codec.NewWriter()
	w.WriteBool(rc.NewlySlashed)
	return w.Bytes()
}

// DecodeSlashReceipt parses bytes produced by SlashReceipt.Encode.
func DecodeSlashReceipt(b []byte) (*SlashReceipt, error) {
	r := codec.NewReader(b)
	newly, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	return &SlashReceipt{NewlySlashed: newly}, nil
}
