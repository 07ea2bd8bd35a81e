// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - DNA fingerprints of one collection
//
// membership is answered from a hash index over the ordered list, the
// list itself is what is persisted.  The capacity can be lowered but
// never raised above what the registry account can hold.
package registry

import (
	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/record"
)

// Registry - ordered unique fingerprints with an index
type Registry struct {
	authority  account.Identity
	collection account.Identity
	capacity   int
	hashes     []record.Fingerprint
	index      map[record.Fingerprint]int
}

// New - empty registry at full capacity
func New(authority account.Identity, collection account.Identity) *Registry {
	return &Registry{
		authority:  authority,
		collection: collection,
		capacity:   record.MaxDNA,
		hashes:     make([]record.Fingerprint, 0),
		index:      make(map[record.Fingerprint]int),
	}
}

// FromRecord - rebuild the index of a stored registry
//
// a stored count that disagrees with the list or a repeated
// fingerprint means the account is corrupt
func FromRecord(r *record.DnaRegistry) (*Registry, error) {
	if uint64(len(r.DnaHashes)) != r.DnaCount {
		return nil, fault.InvalidCount
	}
	reg := New(r.Authority, r.Collection)
	for _, fp := range r.DnaHashes {
		if _, ok := reg.index[fp]; ok {
			return nil, fault.DuplicateDNA
		}
		reg.index[fp] = len(reg.hashes)
		reg.hashes = append(reg.hashes, fp)
	}
	return reg, nil
}

// SetCapacity - limit the number of live fingerprints
func (reg *Registry) SetCapacity(capacity int) error {
	if capacity < 0 || capacity > record.MaxDNA {
		return fault.InvalidCount
	}
	reg.capacity = capacity
	return nil
}

// Capacity - the current ceiling
func (reg *Registry) Capacity() int {
	return reg.capacity
}

// Count - number of live fingerprints
func (reg *Registry) Count() uint64 {
	return uint64(len(reg.hashes))
}

// Authority - informational authority field
func (reg *Registry) Authority() account.Identity {
	return reg.authority
}

// SetAuthority - follows a transfer of the collection authority
func (reg *Registry) SetAuthority(authority account.Identity) {
	reg.authority = authority
}

// Collection - the collection mint
func (reg *Registry) Collection() account.Identity {
	return reg.collection
}

// Exists - membership test
func (reg *Registry) Exists(fp record.Fingerprint) bool {
	_, ok := reg.index[fp]
	return ok
}

// CanInsert - the checks of Insert without the mutation
//
// a duplicate is reported even when the registry is also full
func (reg *Registry) CanInsert(fp record.Fingerprint) error {
	if reg.Exists(fp) {
		return fault.DuplicateDNA
	}
	if len(reg.hashes) >= reg.capacity {
		return fault.RegistryFull
	}
	return nil
}

// Insert - append a new fingerprint
func (reg *Registry) Insert(fp record.Fingerprint) error {
	err := reg.CanInsert(fp)
	if nil != err {
		return err
	}
	reg.index[fp] = len(reg.hashes)
	reg.hashes = append(reg.hashes, fp)
	return nil
}

// Remove - drop a fingerprint keeping the order of the rest
//
// returns false and changes nothing if the fingerprint is absent
func (reg *Registry) Remove(fp record.Fingerprint) bool {
	n, ok := reg.index[fp]
	if !ok {
		return false
	}
	delete(reg.index, fp)
	copy(reg.hashes[n:], reg.hashes[n+1:])
	reg.hashes = reg.hashes[:len(reg.hashes)-1]
	for i := n; i < len(reg.hashes); i += 1 {
		reg.index[reg.hashes[i]] = i
	}
	return true
}

// Fingerprints - copy of the ordered list
func (reg *Registry) Fingerprints() []record.Fingerprint {
	result := make([]record.Fingerprint, len(reg.hashes))
	copy(result, reg.hashes)
	return result
}

// Record - persistent form
func (reg *Registry) Record() *record.DnaRegistry {
	return &record.DnaRegistry{
		Authority:  reg.authority,
		Collection: reg.collection,
		DnaHashes:  reg.Fingerprints(),
		DnaCount:   reg.Count(),
	}
}
