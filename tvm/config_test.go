// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tvm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProtocolConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protocol.yaml")
	content := `
energy-limit-hard-fork: false
genesis-timestamp: 1529891469000
black-hole-address: "0x410000000000000000000000000000000000000001"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadProtocolConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.EnergyLimitHardFork)
	// untouched fields keep defaults
	assert.True(t, cfg.AllowMultiSign)
	assert.True(t, cfg.AllowTvmConstantinople)
	assert.Equal(t, int64(1529891469000), cfg.GenesisTimestamp)
	assert.Equal(t, "0x410000000000000000000000000000000000000001", cfg.BlackHoleAddress.String())
}

func TestLoadProtocolConfigErrors(t *testing.T) {
	_, err := LoadProtocolConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("black-hole-address: nope"), 0o600))
	_, err = LoadProtocolConfig(path)
	assert.Error(t, err)
}

func TestWindowSize(t *testing.T) {
	assert.Equal(t, int64(28800), WindowSize)
}
