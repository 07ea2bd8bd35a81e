// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package qwami - RPC service of the ledger program
package qwami

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/instruction"
	"github.com/kwami-ai/kwamid/ledger"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/rpc/ratelimit"
	"github.com/kwami-ai/kwamid/rpc/submit"
)

const (
	rateLimitQwami = 200
	rateBurstQwami = 100
)

// Qwami - type for RPC calls
type Qwami struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	processor instruction.Handle
}

// New - create the service
func New(log *logger.L, processor instruction.Handle) *Qwami {
	return &Qwami{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitQwami, rateBurstQwami),
		processor: processor,
	}
}

// Submit - run a signed ledger instruction
func (qwami *Qwami) Submit(arguments *submit.Arguments, reply *submit.Reply) error {
	if err := ratelimit.Limit(qwami.Limiter); nil != err {
		return err
	}

	err := submit.Run(qwami.processor, instruction.TagType.IsLedger, arguments, reply)
	if nil != err {
		qwami.Log.Debugf("submit error: %s", err)
		return err
	}
	qwami.Log.Infof("submitted: %s  id: %s", reply.Instruction, reply.Id)
	return nil
}

// LedgerArguments - a ledger by its mint
type LedgerArguments struct {
	Mint account.Identity `json:"mint"`
}

// Ledger - counters and circulating supply
func (qwami *Qwami) Ledger(arguments *LedgerArguments, reply *ledger.Info) error {
	if err := ratelimit.Limit(qwami.Limiter); nil != err {
		return err
	}

	l := qwami.processor.Programs().Ledger
	_, err := qwami.processor.View(func(ctx *program.Context) error {
		info, err := l.Ledger(ctx, arguments.Mint)
		if nil == err {
			*reply = *info
		}
		return err
	})
	return err
}

// BalanceArguments - holdings of one owner
type BalanceArguments struct {
	Mint  account.Identity `json:"mint"`
	Owner account.Identity `json:"owner"`
}

// BalanceReply - amount in base units
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
}

// Balance - tokens held by an owner
func (qwami *Qwami) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(qwami.Limiter); nil != err {
		return err
	}

	l := qwami.processor.Programs().Ledger
	_, err := qwami.processor.View(func(ctx *program.Context) error {
		balance, err := l.Balance(ctx, arguments.Mint, arguments.Owner)
		reply.Balance = balance
		return err
	})
	return err
}
