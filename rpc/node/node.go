// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/counter"
	"github.com/kwami-ai/kwamid/instruction"
	"github.com/kwami-ai/kwamid/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Events - queue statistics of the event publisher
type Events interface {
	Dropped() uint64
}

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	processor instruction.Handle
	events    Events
	publicKey []byte
	counter   *counter.Counter
}

// New - create the service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, processor instruction.Handle, events Events, publicKey []byte) *Node {
	return &Node{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		processor: processor,
		events:    events,
		publicKey: publicKey,
		counter:   counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// ProgramInfo - the program identities served
type ProgramInfo struct {
	Collection account.Identity `json:"collection"`
	Ledger     account.Identity `json:"ledger"`
}

// Counters - instruction counters
type Counters struct {
	Committed uint64 `json:"committed"`
	Failed    uint64 `json:"failed"`
	Dropped   uint64 `json:"dropped"`
}

// InfoReply - results from info request
type InfoReply struct {
	Version      string      `json:"version"`
	Uptime       string      `json:"uptime"`
	RPCs         uint64      `json:"rpcs"`
	Programs     ProgramInfo `json:"programs"`
	Instructions Counters    `json:"instructions"`
	PublicKey    string      `json:"publicKey,omitempty"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	programs := node.processor.Programs()

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Programs = ProgramInfo{
		Collection: programs.Collection.Id(),
		Ledger:     programs.Ledger.Id(),
	}
	reply.Instructions = Counters{
		Committed: node.processor.Committed(),
		Failed:    node.processor.Failed(),
	}
	if nil != node.events {
		reply.Instructions.Dropped = node.events.Dropped()
	}
	if 0 != len(node.publicKey) {
		reply.PublicKey = hex.EncodeToString(node.publicKey)
	}
	return nil
}

// ---

// LogsArguments - a committed instruction
type LogsArguments struct {
	Id instruction.Id `json:"id"`
}

// LogsReply - its stored program log lines
type LogsReply struct {
	Logs []string `json:"logs"`
}

// Logs - log lines of a committed instruction
func (node *Node) Logs(arguments *LogsArguments, reply *LogsReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	logs, err := node.processor.Logs(arguments.Id)
	if nil != err {
		return err
	}
	reply.Logs = logs
	return nil
}
