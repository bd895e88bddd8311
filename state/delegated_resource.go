// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"io"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/tvmstate/tvm"
)

// DelegatedResource records balance frozen by one account for another.
type DelegatedResource struct {
	From                      tvm.Address
	To                        tvm.Address
	FrozenBalanceForBandwidth int64
	FrozenBalanceForEnergy    int64
	ExpireTimeForBandwidth    int64
	ExpireTimeForEnergy       int64
}

// DelegatedResourceKey returns the record key of a from/to pair.
func DelegatedResourceKey(from, to tvm.Address) []byte {
	key := make([]byte, 0, tvm.AddressLength*2)
	key = append(key, from[:]...)
	return append(key, to[:]...)
}

// Copy returns a copy.
func (d *DelegatedResource) Copy() *DelegatedResource {
	cpy := *d
	return &cpy
}

type delegatedResourceRLP struct {
	From                      tvm.Address
	To                        tvm.Address
	FrozenBalanceForBandwidth uint64
	FrozenBalanceForEnergy    uint64
	ExpireTimeForBandwidth    uint64
	ExpireTimeForEnergy       uint64
}

// EncodeRLP implements rlp.Encoder.
func (d *DelegatedResource) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &delegatedResourceRLP{
		From:                      d.From,
		To:                        d.To,
		FrozenBalanceForBandwidth: uint64(d.FrozenBalanceForBandwidth),
		FrozenBalanceForEnergy:    uint64(d.FrozenBalanceForEnergy),
		ExpireTimeForBandwidth:    uint64(d.ExpireTimeForBandwidth),
		ExpireTimeForEnergy:       uint64(d.ExpireTimeForEnergy),
	})
}

// DecodeRLP implements rlp.Decoder.
func (d *DelegatedResource) DecodeRLP(s *rlp.Stream) error {
	var obj delegatedResourceRLP
	if err := s.Decode(&obj); err != nil {
		return err
	}
	*d = DelegatedResource{
		From:                      obj.From,
		To:                        obj.To,
		FrozenBalanceForBandwidth: int64(obj.FrozenBalanceForBandwidth),
		FrozenBalanceForEnergy:    int64(obj.FrozenBalanceForEnergy),
		ExpireTimeForBandwidth:    int64(obj.ExpireTimeForBandwidth),
		ExpireTimeForEnergy:       int64(obj.ExpireTimeForEnergy),
	}
	return nil
}
