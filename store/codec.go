// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package store

import (
	"slices"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/vechain/tvmstate/block"
	"github.com/vechain/tvmstate/tvm"
)

// codeCodec stores contract code snappy compressed.
type codeCodec struct{}

func (codeCodec) Encode(code []byte) ([]byte, error) {
	return snappy.Encode(nil, code), nil
}

func (codeCodec) Decode(data []byte) ([]byte, error) {
	return snappy.Decode(nil, data)
}

func (codeCodec) Copy(code []byte) []byte {
	return slices.Clone(code)
}

// bytes32Codec stores a word as its 32 raw bytes.
type bytes32Codec struct{}

func (bytes32Codec) Encode(v tvm.Bytes32) ([]byte, error) {
	return v.Bytes(), nil
}

func (bytes32Codec) Decode(data []byte) (tvm.Bytes32, error) {
	if len(data) != 32 {
		return tvm.Bytes32{}, errors.Errorf("malformed word: %d bytes", len(data))
	}
	return tvm.BytesToBytes32(data), nil
}

func (bytes32Codec) Copy(v tvm.Bytes32) tvm.Bytes32 {
	return v
}

// blockCodec rlp encodes blocks. Blocks are immutable so copies share the instance.
type blockCodec struct{}

func (blockCodec) Encode(b *block.Block) ([]byte, error) {
	return rlp.EncodeToBytes(b)
}

func (blockCodec) Decode(data []byte) (*block.Block, error) {
	var b block.Block
	if err := rlp.DecodeBytes(data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (blockCodec) Copy(b *block.Block) *block.Block {
	return b
}
