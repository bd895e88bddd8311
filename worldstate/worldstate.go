// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package worldstate resolves state entities as of a fixed state root.
package worldstate

import (
	"github.com/vechain/tvmstate/state"
	"github.com/vechain/tvmstate/tvm"
)

// Query is the read-only view of the world state bound to one root.
// Absent entities are returned as nil without error.
type Query interface {
	Root() tvm.Bytes32

	GetAccount(addr tvm.Address) (*state.Account, error)
	GetAssetIssue(tokenID []byte) (*state.AssetIssue, error)
	GetContract(addr tvm.Address) (*state.Contract, error)
	GetCode(addr tvm.Address) ([]byte, error)
	GetDynamicProperty(key []byte) ([]byte, error)
	GetDelegatedResource(key []byte) (*state.DelegatedResource, error)
	GetVotes(addr tvm.Address) (*state.Votes, error)
	GetDelegation(key []byte) ([]byte, error)
	GetWitness(addr tvm.Address) (*state.Witness, error)
	// GetStorageRow returns the value of a contract storage row. found is
	// false if the row is absent.
	GetStorageRow(rowKey []byte) (value tvm.Bytes32, found bool, err error)

	// Scalars of the committed state, read from dynamic properties. Absent
	// properties are zero. A repository chain reads these through its own
	// dynamic-property cache instead, so it sees uncommitted updates; these
	// serve consumers that want the state as of Root.
	GetTotalNetWeight() (int64, error)
	GetTotalEnergyWeight() (int64, error)
	GetTotalNetLimit() (int64, error)
	GetTotalEnergyCurrentLimit() (int64, error)
	GetLatestBlockHeaderTimestamp() (int64, error)
}
