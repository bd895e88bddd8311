// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/tvmstate/tvm"
)

// Header contains almost all information about a block, except block body.
// It's immutable.
type Header struct {
	body headerBody

	cache struct {
		id atomic.Value
	}
}

// headerBody body of header
type headerBody struct {
	ParentID  tvm.Bytes32
	Number    uint64
	Timestamp uint64 // ms
	Witness   tvm.Address

	TxsRoot   tvm.Bytes32
	StateRoot tvm.Bytes32

	Signature []byte
}

// NewHeader creates a header.
func NewHeader(parentID tvm.Bytes32, number, timestamp uint64, witness tvm.Address, txsRoot, stateRoot tvm.Bytes32) *Header {
	return &Header{body: headerBody{
		ParentID:  parentID,
		Number:    number,
		Timestamp: timestamp,
		Witness:   witness,
		TxsRoot:   txsRoot,
		StateRoot: stateRoot,
	}}
}

// ParentID returns id of parent block.
func (h *Header) ParentID() tvm.Bytes32 {
	return h.body.ParentID
}

// Number returns sequential number of this block.
func (h *Header) Number() uint64 {
	return h.body.Number
}

// Timestamp returns timestamp of this block, in ms.
func (h *Header) Timestamp() uint64 {
	return h.body.Timestamp
}

// Witness returns the producer of this block.
func (h *Header) Witness() tvm.Address {
	return h.body.Witness
}

// TxsRoot returns merkle root of txs contained in this block.
func (h *Header) TxsRoot() tvm.Bytes32 {
	return h.body.TxsRoot
}

// StateRoot returns the state root just after this block being applied.
func (h *Header) StateRoot() tvm.Bytes32 {
	return h.body.StateRoot
}

// Signature returns signature.
func (h *Header) Signature() []byte {
	return append([]byte(nil), h.body.Signature...)
}

// WithSignature create a new Header object with signature set.
func (h *Header) WithSignature(sig []byte) *Header {
	cpy := Header{body: h.body}
	cpy.body.Signature = append([]byte(nil), sig...)
	return &cpy
}

// ID computes id of block.
// The block ID is defined as: blockNumber + sha256(rlp(header))[8:].
func (h *Header) ID() (id tvm.Bytes32) {
	if cached := h.cache.id.Load(); cached != nil {
		return cached.(tvm.Bytes32)
	}
	defer func() {
		// overwrite first 8 bytes of block hash to block number.
		binary.BigEndian.PutUint64(id[:], h.body.Number)
		h.cache.id.Store(id)
	}()

	hw := sha256.New()
	rlp.Encode(hw, &h.body) // nolint:errcheck
	hw.Sum(id[:0])
	return
}

// EncodeRLP implements rlp.Encoder
func (h *Header) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &h.body)
}

// DecodeRLP implements rlp.Decoder.
func (h *Header) DecodeRLP(s *rlp.Stream) error {
	var body headerBody

	if err := s.Decode(&body); err != nil {
		return err
	}
	*h = Header{body: body}
	return nil
}

func (h *Header) String() string {
	return fmt.Sprintf(`Header(%v):
	Number:			%v
	ParentID:		%v
	Timestamp:		%v
	Witness:		%v
	TxsRoot:		%v
	StateRoot:		%v
	Signature:		0x%x`, h.ID(), h.body.Number, h.body.ParentID, h.body.Timestamp,
		h.body.Witness, h.body.TxsRoot, h.body.StateRoot, h.body.Signature)
}

// Number extract block number from block id.
func Number(blockID tvm.Bytes32) uint64 {
	// first 8 bytes are over written by block number (big endian).
	return binary.BigEndian.Uint64(blockID[:])
}
