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

// AssetIssue describes an issued token (TRC-10).
type AssetIssue struct {
	ID          string
	Owner       tvm.Address
	Name        []byte
	Abbr        []byte
	TotalSupply int64
	Precision   int32
	TrxNum      int32
	Num         int32
	StartTime   int64
	EndTime     int64
	Description []byte
	URL         []byte
}

// Copy returns a deep copy.
func (a *AssetIssue) Copy() *AssetIssue {
	cpy := *a
	cpy.Name = slices.Clone(a.Name)
	cpy.Abbr = slices.Clone(a.Abbr)
	cpy.Description = slices.Clone(a.Description)
	cpy.URL = slices.Clone(a.URL)
	return &cpy
}

type assetIssueRLP struct {
	ID          string
	Owner       tvm.Address
	Name        []byte
	Abbr        []byte
	TotalSupply uint64
	Precision   uint64
	TrxNum      uint64
	Num         uint64
	StartTime   uint64
	EndTime     uint64
	Description []byte
	URL         []byte
}

// EncodeRLP implements rlp.Encoder.
func (a *AssetIssue) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &assetIssueRLP{
		ID:          a.ID,
		Owner:       a.Owner,
		Name:        a.Name,
		Abbr:        a.Abbr,
		TotalSupply: uint64(a.TotalSupply),
		Precision:   uint64(a.Precision),
		TrxNum:      uint64(a.TrxNum),
		Num:         uint64(a.Num),
		StartTime:   uint64(a.StartTime),
		EndTime:     uint64(a.EndTime),
		Description: a.Description,
		URL:         a.URL,
	})
}

// DecodeRLP implements rlp.Decoder.
func (a *AssetIssue) DecodeRLP(s *rlp.Stream) error {
	var obj assetIssueRLP
	if err := s.Decode(&obj); err != nil {
		return err
	}
	*a = AssetIssue{
		ID:          obj.ID,
		Owner:       obj.Owner,
		Name:        nilIfEmpty(obj.Name),
		Abbr:        nilIfEmpty(obj.Abbr),
		TotalSupply: int64(obj.TotalSupply),
		Precision:   int32(obj.Precision),
		TrxNum:      int32(obj.TrxNum),
		Num:         int32(obj.Num),
		StartTime:   int64(obj.StartTime),
		EndTime:     int64(obj.EndTime),
		Description: nilIfEmpty(obj.Description),
		URL:         nilIfEmpty(obj.URL),
	}
	return nil
}
