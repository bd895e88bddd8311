// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tvm

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ProtocolConfig holds the protocol feature switches consulted by the state layer.
type ProtocolConfig struct {
	// EnergyLimitHardFork makes a child layer deep-copy a contract storage overlay
	// instead of sharing the parent's instance.
	EnergyLimitHardFork bool `yaml:"energy-limit-hard-fork"`
	// AllowMultiSign grants default owner/active permissions to new accounts.
	AllowMultiSign bool `yaml:"allow-multi-sign"`
	// AllowTvmConstantinople keeps contract code hash in sync with saved code.
	AllowTvmConstantinople bool `yaml:"allow-tvm-constantinople"`
	// GenesisTimestamp is the genesis block time in ms, base of head slot.
	GenesisTimestamp int64 `yaml:"genesis-timestamp"`
	// BlackHoleAddress receives burnt balance.
	BlackHoleAddress Address `yaml:"black-hole-address"`
}

// DefaultProtocolConfig returns the config with every switch on.
func DefaultProtocolConfig() ProtocolConfig {
	return ProtocolConfig{
		EnergyLimitHardFork:    true,
		AllowMultiSign:         true,
		AllowTvmConstantinople: true,
		BlackHoleAddress:       MustParseAddress("0x4177944d19c052b73ee2286823aa83f8138cb7032f"),
	}
}

func (c ProtocolConfig) String() string {
	var strs []string
	push := func(name string, on bool) {
		if on {
			strs = append(strs, name)
		}
	}
	push("EnergyLimit", c.EnergyLimitHardFork)
	push("MultiSign", c.AllowMultiSign)
	push("Constantinople", c.AllowTvmConstantinople)

	return fmt.Sprintf("[%s] genesis: %d", strings.Join(strs, ", "), c.GenesisTimestamp)
}

// LoadProtocolConfig reads a YAML protocol config file. Missing fields keep
// the values of DefaultProtocolConfig.
func LoadProtocolConfig(path string) (ProtocolConfig, error) {
	cfg := DefaultProtocolConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return ProtocolConfig{}, errors.Wrap(err, "read protocol config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ProtocolConfig{}, errors.Wrap(err, "decode protocol config")
	}
	return cfg, nil
}
