// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package config loads the protocol constants the staking contract is
// parameterized over (spec §6: SLOTS, UNSTAKING_DELAY, the macro-block
// interval behind macro_block_after). These are consensus-fixed per network,
// not compile-time literals, so they are loaded from a YAML policy file the
// way the teacher node loads its genesis/policy configuration from disk,
// with an embedded devnet default for tests and local use.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Policy holds the consensus-fixed protocol constants the staking contract
// depends on.
type Policy struct {
	// Slots is the number of validator slot assignments drawn per epoch.
	Slots uint32 `yaml:"slots"`
	// UnstakingDelay is the number of blocks after the first macro block
	// following a retirement before withdrawal is permitted.
	UnstakingDelay uint32 `yaml:"unstaking_delay"`
	// MacroBlockInterval is the fixed spacing, in blocks, between macro
	// (epoch-boundary) blocks, used by MacroBlockAfter.
	MacroBlockInterval uint32 `yaml:"macro_block_interval"`
}

// DefaultPolicy returns the devnet defaults, used when no policy file is
// configured — mirroring the teacher's fallback to
// thor.InitialMaxBlockProposers when a chain parameter is unset on-chain.
func DefaultPolicy() *Policy {
	return &Policy{
		Slots:              512,
		UnstakingDelay:     1_209_600 / 10, // ~2 weeks at 10s/block, devnet scale
		MacroBlockInterval: 120,
	}
}

// Load reads a Policy from a YAML file at path.
func Load(path string) (*Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := DefaultPolicy()
	if err := yaml.Unmarshal(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}

// MacroBlockAfter returns the height of the first macro block strictly
// after h (spec §4.F Unstake precondition, §6 macro_block_after).
func (p *Policy) MacroBlockAfter(h uint32) uint32 {
	next := (h/p.MacroBlockInterval + 1) * p.MacroBlockInterval
	return next
}
