// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package program - execution context of one instruction
//
// a handler sees the accounts through its context only: reads and
// writes go to the instruction's storage transaction, the signer set
// has already been authenticated and the clock is fixed for the whole
// instruction.
package program

import (
	"fmt"
	"time"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/record"
	"github.com/kwami-ai/kwamid/storage"
)

// Context - state visible to a running handler
type Context struct {
	trx      storage.Transaction
	now      int64
	signers  map[account.Identity]struct{}
	declared map[account.Identity]struct{}
	logs     []string
}

// NewContext - context over an active transaction
func NewContext(trx storage.Transaction, now time.Time, signers []account.Identity) *Context {
	s := make(map[account.Identity]struct{}, len(signers))
	for _, id := range signers {
		s[id] = struct{}{}
	}
	return &Context{
		trx:     trx,
		now:     now.Unix(),
		signers: s,
	}
}

// Declare - restrict account writes to these addresses
func (ctx *Context) Declare(addresses []account.Identity) {
	ctx.declared = make(map[account.Identity]struct{}, len(addresses))
	for _, a := range addresses {
		ctx.declared[a] = struct{}{}
	}
}

// Transaction - the underlying storage transaction
func (ctx *Context) Transaction() storage.Transaction {
	return ctx.trx
}

// Now - unix seconds, constant for the instruction
func (ctx *Context) Now() int64 {
	return ctx.now
}

// IsSigner - true if the identity was authenticated
func (ctx *Context) IsSigner(id account.Identity) bool {
	_, ok := ctx.signers[id]
	return ok
}

// RequireSigner - MissingSignature unless authenticated
func (ctx *Context) RequireSigner(id account.Identity) error {
	if id.IsNull() || !ctx.IsSigner(id) {
		return fault.MissingSignature
	}
	return nil
}

// Logf - append a program log line
func (ctx *Context) Logf(format string, arguments ...interface{}) {
	ctx.logs = append(ctx.logs, fmt.Sprintf(format, arguments...))
}

// Logs - lines logged so far
func (ctx *Context) Logs() []string {
	return ctx.logs
}

// Exists - true if an account is stored at the address
func (ctx *Context) Exists(address account.Identity) bool {
	return ctx.trx.Has(storage.Pool.Accounts, address.Bytes())
}

// Load - raw account data, AccountNotFound if absent
func (ctx *Context) Load(address account.Identity) ([]byte, error) {
	data := ctx.trx.Get(storage.Pool.Accounts, address.Bytes())
	if nil == data {
		return nil, fault.AccountNotFound
	}
	return data, nil
}

// Store - write packed account data
func (ctx *Context) Store(address account.Identity, packed record.Packed) error {
	if !ctx.isDeclared(address) {
		return fault.UndeclaredAccount
	}
	ctx.trx.Put(storage.Pool.Accounts, address.Bytes(), packed)
	return nil
}

// Close - reclaim an account
func (ctx *Context) Close(address account.Identity) error {
	if !ctx.isDeclared(address) {
		return fault.UndeclaredAccount
	}
	ctx.trx.Delete(storage.Pool.Accounts, address.Bytes())
	return nil
}

// no declaration means unrestricted, as for read only queries
func (ctx *Context) isDeclared(address account.Identity) bool {
	if nil == ctx.declared {
		return true
	}
	_, ok := ctx.declared[address]
	return ok
}
