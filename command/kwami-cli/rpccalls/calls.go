// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/instruction"
	"github.com/kwami-ai/kwamid/ledger"
	"github.com/kwami-ai/kwamid/record"
	"github.com/kwami-ai/kwamid/rpc/kwami"
	"github.com/kwami-ai/kwamid/rpc/node"
	"github.com/kwami-ai/kwamid/rpc/qwami"
	"github.com/kwami-ai/kwamid/rpc/submit"
)

// Sign - pack an instruction and sign it with every key
func Sign(arguments interface{}, nonce uint64, keys ...*account.PrivateKey) (*submit.Arguments, instruction.TagType, error) {
	i, err := instruction.New(arguments, nonce)
	if nil != err {
		return nil, instruction.InvalidTag, err
	}
	packed, err := i.Pack()
	if nil != err {
		return nil, instruction.InvalidTag, err
	}
	signatures := make([]instruction.Signature, 0, len(keys))
	for _, key := range keys {
		signatures = append(signatures, packed.Sign(key))
	}
	return &submit.Arguments{
		Instruction: packed,
		Signatures:  signatures,
	}, i.Tag, nil
}

// Submit - sign and send to the service owning the instruction
func (c *Client) Submit(arguments interface{}, nonce uint64, keys ...*account.PrivateKey) (*submit.Reply, error) {
	signed, tag, err := Sign(arguments, nonce, keys...)
	if nil != err {
		return nil, err
	}

	method := "Qwami.Submit"
	if tag.IsCollection() {
		method = "Kwami.Submit"
	}

	var reply submit.Reply
	err = c.call(method, signed, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// CheckDNA - whether a fingerprint is registered in a collection
func (c *Client) CheckDNA(collectionMint account.Identity, dnaHash record.Fingerprint) (*kwami.CheckDNAReply, error) {
	var reply kwami.CheckDNAReply
	err := c.call("Kwami.CheckDNA", &kwami.CheckDNAArguments{
		CollectionMint: collectionMint,
		DnaHash:        dnaHash,
	}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Asset - asset record and metadata
func (c *Client) Asset(assetMint account.Identity) (*collection.AssetInfo, error) {
	var reply collection.AssetInfo
	err := c.call("Kwami.Asset", &kwami.AssetArguments{AssetMint: assetMint}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Collection - authority record and registry occupancy
func (c *Client) Collection(collectionMint account.Identity) (*collection.CollectionInfo, error) {
	var reply collection.CollectionInfo
	err := c.call("Kwami.Collection", &kwami.CollectionArguments{CollectionMint: collectionMint}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Ledger - supply counters
func (c *Client) Ledger(mint account.Identity) (*ledger.Info, error) {
	var reply ledger.Info
	err := c.call("Qwami.Ledger", &qwami.LedgerArguments{Mint: mint}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Balance - tokens held by one owner
func (c *Client) Balance(mint account.Identity, owner account.Identity) (*qwami.BalanceReply, error) {
	var reply qwami.BalanceReply
	err := c.call("Qwami.Balance", &qwami.BalanceArguments{Mint: mint, Owner: owner}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Info - daemon information
func (c *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	err := c.call("Node.Info", &node.InfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Logs - stored log lines of a committed instruction
func (c *Client) Logs(id instruction.Id) (*node.LogsReply, error) {
	var reply node.LogsReply
	err := c.call("Node.Logs", &node.LogsArguments{Id: id}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
