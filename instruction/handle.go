// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/kwami-ai/kwamid/program"
)

// Handle - processor operations used by the RPC services
type Handle interface {
	Submit(Packed, []Signature) (*Result, error)
	View(func(*program.Context) error) ([]string, error)
	Logs(Id) ([]string, error)
	Programs() *Programs
	Committed() uint64
	Failed() uint64
}

// ensure the processor satisfies the interface
var _ Handle = (*Processor)(nil)
