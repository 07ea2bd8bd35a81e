// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/kwami-ai/kwamid/fault"
)

// Transaction - all or nothing unit of work over the pools
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

// TransactionImpl - one Access per database
type TransactionImpl struct {
	sync.Mutex
	inUse  bool
	access map[string]Access
}

// commit order: account state first, the log index is derived from it
var commitOrder = []string{"state", "index"}

func newTransaction(access map[string]Access) Transaction {
	return &TransactionImpl{
		inUse:  false,
		access: access,
	}
}

func (t *TransactionImpl) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}

	for _, name := range commitOrder {
		if a, ok := t.access[name]; ok {
			err := a.Begin()
			if nil != err {
				return err
			}
		}
	}

	t.inUse = true
	return nil
}

func (t *TransactionImpl) accessFor(handle *PoolHandle) Access {
	a, ok := t.access[handle.database]
	if !ok {
		logger.Panicf("transaction has no access for database: %q", handle.database)
	}
	return a
}

func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	t.accessFor(handle).Put(handle.prefixKey(key), value)
}

func (t *TransactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	t.accessFor(handle).Put(handle.prefixKey(key), encodeN(value))
}

func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	t.accessFor(handle).Delete(handle.prefixKey(key))
}

// Get - read through the overlay, nil when absent
func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	value, err := t.accessFor(handle).Get(handle.prefixKey(key))
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *TransactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(handle, key)
	if nil == buffer {
		return 0, false
	}
	return decodeN(key, buffer), true
}

func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	found, err := t.accessFor(handle).Has(handle.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

func (t *TransactionImpl) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

// Commit - write each database batch
func (t *TransactionImpl) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotActive
	}
	t.inUse = false

	for _, name := range commitOrder {
		if a, ok := t.access[name]; ok {
			err := a.Commit()
			if nil != err {
				t.abortAll()
				return err
			}
		}
	}
	return nil
}

// Abort - discard every pending write
func (t *TransactionImpl) Abort() {
	t.Lock()
	defer t.Unlock()

	t.abortAll()
	t.inUse = false
}

func (t *TransactionImpl) abortAll() {
	for _, a := range t.access {
		a.Abort()
	}
}
