// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free gauges for connection and event counts
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer updated atomically
type Counter uint64

// Add - add n, returns new value
func (c *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(c), n)
}

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return c.Add(1)
}

// Decrement - subtract 1, returns new value
//
// no underflow protection, callers pair it with Increment
func (c *Counter) Decrement() uint64 {
	return c.Add(^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
