// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"io"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/tvmstate/tvm"
)

// Witness is a block producer candidate.
type Witness struct {
	Address        tvm.Address
	VoteCount      int64
	URL            string
	TotalProduced  int64
	TotalMissed    int64
	LatestBlockNum int64
	LatestSlotNum  int64
	IsJobs         bool
}

// Copy returns a copy.
func (w *Witness) Copy() *Witness {
	cpy := *w
	return &cpy
}

type witnessRLP struct {
	Address        tvm.Address
	VoteCount      uint64
	URL            string
	TotalProduced  uint64
	TotalMissed    uint64
	LatestBlockNum uint64
	LatestSlotNum  uint64
	IsJobs         bool
}

// EncodeRLP implements rlp.Encoder.
func (w *Witness) EncodeRLP(wr io.Writer) error {
	return rlp.Encode(wr, &witnessRLP{
		Address:        w.Address,
		VoteCount:      uint64(w.VoteCount),
		URL:            w.URL,
		TotalProduced:  uint64(w.TotalProduced),
		TotalMissed:    uint64(w.TotalMissed),
		LatestBlockNum: uint64(w.LatestBlockNum),
		LatestSlotNum:  uint64(w.LatestSlotNum),
		IsJobs:         w.IsJobs,
	})
}

// DecodeRLP implements rlp.Decoder.
func (w *Witness) DecodeRLP(s *rlp.Stream) error {
	var obj witnessRLP
	if err := s.Decode(&obj); err != nil {
		return err
	}
	*w = Witness{
		Address:        obj.Address,
		VoteCount:      int64(obj.VoteCount),
		URL:            obj.URL,
		TotalProduced:  int64(obj.TotalProduced),
		TotalMissed:    int64(obj.TotalMissed),
		LatestBlockNum: int64(obj.LatestBlockNum),
		LatestSlotNum:  int64(obj.LatestSlotNum),
		IsJobs:         obj.IsJobs,
	}
	return nil
}
