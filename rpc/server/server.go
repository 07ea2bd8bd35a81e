// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/kwami-ai/kwamid/counter"
	"github.com/kwami-ai/kwamid/instruction"
	"github.com/kwami-ai/kwamid/rpc/kwami"
	"github.com/kwami-ai/kwamid/rpc/node"
	"github.com/kwami-ai/kwamid/rpc/qwami"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, processor instruction.Handle, events node.Events, publicKey []byte) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(kwami.New(log, processor))
	_ = server.Register(qwami.New(log, processor))
	_ = server.Register(node.New(log, start, version, rpcCount, processor, events, publicKey))

	return server
}
