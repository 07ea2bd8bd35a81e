// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collection_test

import (
	"crypto/sha256"
	"testing"
	"time"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/fixtures"
	"github.com/kwami-ai/kwamid/metadata"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/record"
	"github.com/kwami-ai/kwamid/storage"
	"github.com/kwami-ai/kwamid/token"
)

var (
	authorityId    = account.Identity{0xa1}
	ownerId        = account.Identity{0xb1}
	otherId        = account.Identity{0xc1}
	collectionMint = account.Identity{0xd1}
)

var clock = time.Unix(1700000000, 0)

func dna(s string) record.Fingerprint {
	return record.Fingerprint(sha256.Sum256([]byte(s)))
}

func mintId(n byte) account.Identity {
	return account.Identity{0xe0, n}
}

func newContext(t *testing.T, signers ...account.Identity) *program.Context {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	clock = clock.Add(time.Second)
	return program.NewContext(trx, clock, signers)
}

func newProgram(t *testing.T, configuration *collection.Configuration) *collection.Program {
	tokens := token.New()
	p, err := collection.New(fixtures.CollectionProgram, configuration, tokens, metadata.New(tokens))
	if nil != err {
		t.Fatalf("collection program error: %s", err)
	}
	return p
}

// run one handler as a whole instruction: commit on success, discard on error
func run(t *testing.T, handler func(ctx *program.Context) error, signers ...account.Identity) error {
	return execute(t, newContext(t, signers...), handler)
}

// as run, with the clock of the instruction given
func runAt(t *testing.T, now time.Time, handler func(ctx *program.Context) error, signers ...account.Identity) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	return execute(t, program.NewContext(trx, now, signers), handler)
}

func execute(t *testing.T, ctx *program.Context, handler func(ctx *program.Context) error) error {
	err := handler(ctx)
	if nil != err {
		ctx.Transaction().Abort()
		return err
	}
	if err := ctx.Transaction().Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return nil
}

func initialise(t *testing.T, p *collection.Program) {
	initialiseCollection(t, p, collectionMint)
}

func initialiseCollection(t *testing.T, p *collection.Program, collectionMint account.Identity) {
	_, bump, err := p.AuthorityAddress(collectionMint)
	if nil != err {
		t.Fatalf("authority address error: %s", err)
	}
	err = run(t, func(ctx *program.Context) error {
		return p.Initialise(ctx, &collection.InitialiseArguments{
			Authority:      authorityId,
			CollectionMint: collectionMint,
			Bump:           bump,
		})
	}, authorityId)
	if nil != err {
		t.Fatalf("initialise error: %s", err)
	}
}

func mint(t *testing.T, p *collection.Program, asset account.Identity, fp record.Fingerprint, name string) error {
	return mintInto(t, p, collectionMint, ownerId, asset, fp, name)
}

func mintInto(t *testing.T, p *collection.Program, collectionMint account.Identity, owner account.Identity, asset account.Identity, fp record.Fingerprint, name string) error {
	return run(t, func(ctx *program.Context) error {
		return p.Mint(ctx, &collection.MintArguments{
			Owner:          owner,
			CollectionMint: collectionMint,
			AssetMint:      asset,
			DnaHash:        fp,
			Name:           name,
			Symbol:         "KWAMI",
			Uri:            "https://kwami.io/" + name + ".json",
		})
	}, owner)
}

func burn(t *testing.T, p *collection.Program, asset account.Identity, caller account.Identity) error {
	return burnFrom(t, p, collectionMint, asset, caller)
}

func burnFrom(t *testing.T, p *collection.Program, collectionMint account.Identity, asset account.Identity, caller account.Identity) error {
	return run(t, func(ctx *program.Context) error {
		_, err := p.Burn(ctx, &collection.BurnArguments{
			Owner:          caller,
			CollectionMint: collectionMint,
			AssetMint:      asset,
		})
		return err
	}, caller)
}

func collectionInfo(t *testing.T, p *collection.Program) *collection.CollectionInfo {
	return collectionInfoOf(t, p, collectionMint)
}

func collectionInfoOf(t *testing.T, p *collection.Program, collectionMint account.Identity) *collection.CollectionInfo {
	ctx := newContext(t)
	defer ctx.Transaction().Abort()
	info, err := p.Collection(ctx, collectionMint)
	if nil != err {
		t.Fatalf("collection error: %s", err)
	}
	return info
}

func assetInfo(t *testing.T, p *collection.Program, asset account.Identity) (*collection.AssetInfo, error) {
	ctx := newContext(t)
	defer ctx.Transaction().Abort()
	return p.Asset(ctx, asset)
}
