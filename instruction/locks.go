// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"sync"

	"github.com/kwami-ai/kwamid/account"
)

// each address has its own mutex while anyone holds or waits for it
type lockEntry struct {
	sync.Mutex
	references int
}

// Locks - exclusive per address locks
//
// sets must be acquired in sorted order so two overlapping sets
// cannot deadlock; Accounts returns them sorted
type Locks struct {
	sync.Mutex
	entries map[account.Identity]*lockEntry
}

// NewLocks - empty lock table
func NewLocks() *Locks {
	return &Locks{
		entries: make(map[account.Identity]*lockEntry),
	}
}

// Acquire - block until every address is held, returns the release
func (l *Locks) Acquire(addresses []account.Identity) func() {
	held := make([]*lockEntry, 0, len(addresses))
	for _, address := range addresses {
		l.Lock()
		e, ok := l.entries[address]
		if !ok {
			e = &lockEntry{}
			l.entries[address] = e
		}
		e.references += 1
		l.Unlock()

		e.Lock()
		held = append(held, e)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i -= 1 {
			held[i].Unlock()
		}
		l.Lock()
		for i, e := range held {
			e.references -= 1
			if 0 == e.references {
				delete(l.entries, addresses[i])
			}
		}
		l.Unlock()
	}
}

// Held - number of addresses currently locked or awaited
func (l *Locks) Held() int {
	l.Lock()
	defer l.Unlock()
	return len(l.entries)
}
