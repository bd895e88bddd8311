// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import "github.com/vechain/tvmstate/tvm"

// ForkPolicy decides what a child layer gets when it first asks for an
// overlay its parent holds.
type ForkPolicy interface {
	Fork(parent *Overlay) *Overlay
	String() string
}

var (
	// Shared hands the parent's instance to the child. Writes in the child
	// are visible to the parent before commit. Kept for blocks before the
	// energy limit hard fork.
	Shared ForkPolicy = sharedPolicy{}
	// ForkCopy hands a deep copy to the child.
	ForkCopy ForkPolicy = copyPolicy{}
)

type sharedPolicy struct{}

func (sharedPolicy) Fork(parent *Overlay) *Overlay {
	metricForkCounter().AddWithLabel(1, map[string]string{"policy": "shared"})
	return parent
}

func (sharedPolicy) String() string { return "shared" }

type copyPolicy struct{}

func (copyPolicy) Fork(parent *Overlay) *Overlay {
	metricForkCounter().AddWithLabel(1, map[string]string{"policy": "copy"})
	return parent.Copy()
}

func (copyPolicy) String() string { return "copy" }

// PolicyFor returns ForkCopy once the energy limit hard fork is active,
// Shared otherwise.
func PolicyFor(cfg tvm.ProtocolConfig) ForkPolicy {
	if cfg.EnergyLimitHardFork {
		return ForkCopy
	}
	return Shared
}
