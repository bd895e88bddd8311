// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
)

// Block is an immutable block type. Transactions are kept as opaque
// encoded payloads; the state layer never interprets them.
type Block struct {
	header *Header
	txs    [][]byte
}

// New create a block instance.
func New(header *Header, txs [][]byte) *Block {
	return &Block{
		header,
		copyTxs(txs),
	}
}

// Header returns the block header.
func (b *Block) Header() *Header {
	return b.header
}

// Transactions returns a copy of encoded transactions.
func (b *Block) Transactions() [][]byte {
	return copyTxs(b.txs)
}

// EncodeRLP implements rlp.Encoder.
func (b *Block) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, []any{
		b.header,
		b.txs,
	})
}

// DecodeRLP implements rlp.Decoder.
func (b *Block) DecodeRLP(s *rlp.Stream) error {
	payload := struct {
		Header Header
		Txs    [][]byte
	}{}

	if err := s.Decode(&payload); err != nil {
		return err
	}
	var txs [][]byte
	if len(payload.Txs) > 0 {
		txs = payload.Txs
	}
	*b = Block{
		header: &payload.Header,
		txs:    txs,
	}
	return nil
}

func (b *Block) String() string {
	return fmt.Sprintf(`Block(%v)
%v
Transactions: %d`, b.header.ID(), b.header, len(b.txs))
}

func copyTxs(txs [][]byte) [][]byte {
	if txs == nil {
		return nil
	}
	cpy := make([][]byte, len(txs))
	for i, tx := range txs {
		cpy[i] = append([]byte(nil), tx...)
	}
	return cpy
}
