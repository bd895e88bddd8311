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

// Vote is a count of votes cast for a witness.
type Vote struct {
	Address tvm.Address
	Count   int64
}

// Votes holds the previous and pending votes of an account in the current epoch.
type Votes struct {
	Address  tvm.Address
	OldVotes []Vote
	NewVotes []Vote
}

// Copy returns a deep copy.
func (v *Votes) Copy() *Votes {
	return &Votes{
		Address:  v.Address,
		OldVotes: slices.Clone(v.OldVotes),
		NewVotes: slices.Clone(v.NewVotes),
	}
}

type voteRLP struct {
	Address tvm.Address
	Count   uint64
}

type votesRLP struct {
	Address  tvm.Address
	OldVotes []voteRLP
	NewVotes []voteRLP
}

func encodeVotes(votes []Vote) []voteRLP {
	out := make([]voteRLP, len(votes))
	for i, v := range votes {
		out[i] = voteRLP{v.Address, uint64(v.Count)}
	}
	return out
}

func decodeVotes(votes []voteRLP) []Vote {
	if len(votes) == 0 {
		return nil
	}
	out := make([]Vote, len(votes))
	for i, v := range votes {
		out[i] = Vote{v.Address, int64(v.Count)}
	}
	return out
}

// EncodeRLP implements rlp.Encoder.
func (v *Votes) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &votesRLP{
		Address:  v.Address,
		OldVotes: encodeVotes(v.OldVotes),
		NewVotes: encodeVotes(v.NewVotes),
	})
}

// DecodeRLP implements rlp.Decoder.
func (v *Votes) DecodeRLP(s *rlp.Stream) error {
	var obj votesRLP
	if err := s.Decode(&obj); err != nil {
		return err
	}
	*v = Votes{
		Address:  obj.Address,
		OldVotes: decodeVotes(obj.OldVotes),
		NewVotes: decodeVotes(obj.NewVotes),
	}
	return nil
}
