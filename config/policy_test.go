// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albatross-go/staking/config"
)

func TestMacroBlockAfter(t *testing.T) {
	p := &config.Policy{MacroBlockInterval: 100}
	assert.Equal(t, uint32(2100), p.MacroBlockAfter(2000))
	assert.Equal(t, uint32(100), p.MacroBlockAfter(0))
	assert.Equal(t, uint32(200), p.MacroBlockAfter(100))
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slots: 7\nunstaking_delay: 3\nmacro_block_interval: 5\n"), 0o600))

	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), p.Slots)
	assert.Equal(t, uint32(3), p.UnstakingDelay)
	assert.Equal(t, uint32(5), p.MacroBlockInterval)
}
