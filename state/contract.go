// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"io"
	"slices"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/tvmstate/tvm"
)

// Contract is the metadata of a deployed smart contract. Its code is stored
// separately, keyed by the same address.
type Contract struct {
	Address tvm.Address
	Origin  tvm.Address
	Name    string
	ABI     []byte
	// CodeHash is kept in sync with the saved code once Constantinople is active.
	CodeHash tvm.Bytes32
	// TrxHash is the hash of the deploying transaction. When set it namespaces
	// the contract's storage rows.
	TrxHash                    []byte
	Version                    int32
	ConsumeUserResourcePercent int64
	OriginEnergyLimit          int64
}

// Copy returns a deep copy.
func (c *Contract) Copy() *Contract {
	cpy := *c
	cpy.ABI = slices.Clone(c.ABI)
	cpy.TrxHash = slices.Clone(c.TrxHash)
	return &cpy
}

type contractRLP struct {
	Address                    tvm.Address
	Origin                     tvm.Address
	Name                       string
	ABI                        []byte
	CodeHash                   tvm.Bytes32
	TrxHash                    []byte
	Version                    uint64
	ConsumeUserResourcePercent uint64
	OriginEnergyLimit          uint64
}

// EncodeRLP implements rlp.Encoder.
func (c *Contract) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &contractRLP{
		Address:                    c.Address,
		Origin:                     c.Origin,
		Name:                       c.Name,
		ABI:                        c.ABI,
		CodeHash:                   c.CodeHash,
		TrxHash:                    c.TrxHash,
		Version:                    uint64(c.Version),
		ConsumeUserResourcePercent: uint64(c.ConsumeUserResourcePercent),
		OriginEnergyLimit:          uint64(c.OriginEnergyLimit),
	})
}

// DecodeRLP implements rlp.Decoder.
func (c *Contract) DecodeRLP(s *rlp.Stream) error {
	var obj contractRLP
	if err := s.Decode(&obj); err != nil {
		return err
	}
	*c = Contract{
		Address:                    obj.Address,
		Origin:                     obj.Origin,
		Name:                       obj.Name,
		ABI:                        nilIfEmpty(obj.ABI),
		CodeHash:                   obj.CodeHash,
		TrxHash:                    nilIfEmpty(obj.TrxHash),
		Version:                    int32(obj.Version),
		ConsumeUserResourcePercent: int64(obj.ConsumeUserResourcePercent),
		OriginEnergyLimit:          int64(obj.OriginEnergyLimit),
	}
	return nil
}

// Abi is the ABI record of a contract. It is written once, when the contract
// first reaches the persistent store.
type Abi struct {
	Address tvm.Address
	Entries []byte
}

// NewAbi derives the ABI record of the contract.
func NewAbi(c *Contract) *Abi {
	return &Abi{
		Address: c.Address,
		Entries: slices.Clone(c.ABI),
	}
}

// Copy returns a deep copy.
func (a *Abi) Copy() *Abi {
	return &Abi{Address: a.Address, Entries: slices.Clone(a.Entries)}
}
