// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package repository

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/vechain/tvmstate/tvm"
)

var (
	// ErrInsufficientBalance is returned when a negative delta would drive a
	// balance below zero. It aborts the enclosing execution.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrBalanceOverflow is returned when a balance addition overflows int64.
	ErrBalanceOverflow = errors.New("balance overflow")
	// ErrCommitted is returned by a second Commit of the same layer.
	ErrCommitted = errors.New("layer already committed")
	// ErrNoBlockReader is returned by block lookups on a repository opened
	// without a block reader.
	ErrNoBlockReader = errors.New("no block reader")
)

// Error is the error caused by world state access failure.
type Error struct {
	kind  string
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("repository: get %s: %v", e.kind, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// BalanceError carries the balance a delta failed to apply to.
type BalanceError struct {
	Address tvm.Address
	// Token is empty for the native balance.
	Token   string
	Balance int64
	Delta   int64
}

func (e *BalanceError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%v insufficient balance of token %q: balance %d, delta %d", e.Address, e.Token, e.Balance, e.Delta)
	}
	return fmt.Sprintf("%v insufficient balance: balance %d, delta %d", e.Address, e.Balance, e.Delta)
}

func (e *BalanceError) Unwrap() error {
	return ErrInsufficientBalance
}
