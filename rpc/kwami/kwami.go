// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kwami - RPC service of the collection program
package kwami

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/instruction"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/record"
	"github.com/kwami-ai/kwamid/rpc/ratelimit"
	"github.com/kwami-ai/kwamid/rpc/submit"
)

const (
	rateLimitKwami = 200
	rateBurstKwami = 100
)

// Kwami - type for RPC calls
type Kwami struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	processor instruction.Handle
}

// New - create the service
func New(log *logger.L, processor instruction.Handle) *Kwami {
	return &Kwami{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitKwami, rateBurstKwami),
		processor: processor,
	}
}

// ---

// Submit - run a signed collection instruction
func (kwami *Kwami) Submit(arguments *submit.Arguments, reply *submit.Reply) error {
	if err := ratelimit.Limit(kwami.Limiter); nil != err {
		return err
	}

	err := submit.Run(kwami.processor, instruction.TagType.IsCollection, arguments, reply)
	if nil != err {
		kwami.Log.Debugf("submit error: %s", err)
		return err
	}
	kwami.Log.Infof("submitted: %s  id: %s", reply.Instruction, reply.Id)
	return nil
}

// ---

// CheckDNAArguments - a DNA within a collection
type CheckDNAArguments struct {
	CollectionMint account.Identity   `json:"collectionMint"`
	DnaHash        record.Fingerprint `json:"dnaHash"`
}

// CheckDNAReply - result of the lookup
type CheckDNAReply struct {
	Exists bool     `json:"exists"`
	Logs   []string `json:"logs"`
}

// CheckDNA - read only check of the registry
func (kwami *Kwami) CheckDNA(arguments *CheckDNAArguments, reply *CheckDNAReply) error {
	if err := ratelimit.Limit(kwami.Limiter); nil != err {
		return err
	}

	c := kwami.processor.Programs().Collection
	logs, err := kwami.processor.View(func(ctx *program.Context) error {
		exists, err := c.CheckDna(ctx, arguments.CollectionMint, arguments.DnaHash)
		reply.Exists = exists
		return err
	})
	if nil != err {
		return err
	}
	reply.Logs = logs
	return nil
}

// ---

// AssetArguments - an asset by its mint
type AssetArguments struct {
	AssetMint account.Identity `json:"assetMint"`
}

// Asset - the asset record and its metadata
func (kwami *Kwami) Asset(arguments *AssetArguments, reply *collection.AssetInfo) error {
	if err := ratelimit.Limit(kwami.Limiter); nil != err {
		return err
	}

	c := kwami.processor.Programs().Collection
	_, err := kwami.processor.View(func(ctx *program.Context) error {
		info, err := c.Asset(ctx, arguments.AssetMint)
		if nil == err {
			*reply = *info
		}
		return err
	})
	return err
}

// ---

// CollectionArguments - a collection by its mint
type CollectionArguments struct {
	CollectionMint account.Identity `json:"collectionMint"`
}

// Collection - authority record and registry occupancy
func (kwami *Kwami) Collection(arguments *CollectionArguments, reply *collection.CollectionInfo) error {
	if err := ratelimit.Limit(kwami.Limiter); nil != err {
		return err
	}

	c := kwami.processor.Programs().Collection
	_, err := kwami.processor.View(func(ctx *program.Context) error {
		info, err := c.Collection(ctx, arguments.CollectionMint)
		if nil == err {
			*reply = *info
		}
		return err
	})
	return err
}
