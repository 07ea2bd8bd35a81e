// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collection_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/fixtures"
	"github.com/kwami-ai/kwamid/metadata/mocks"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/record"
	"github.com/kwami-ai/kwamid/registry"
	"github.com/kwami-ai/kwamid/token"
)

func TestInitialise(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := newProgram(t, nil)
	initialise(t, p)

	info := collectionInfo(t, p)
	assert.Equal(t, authorityId, info.Authority.Authority, "authority")
	assert.Equal(t, uint64(0), info.Authority.TotalMinted, "total minted")
	assert.Equal(t, uint64(0), info.DnaCount, "dna count")
	assert.Equal(t, record.MaxDNA, info.Capacity, "capacity")

	_, bump, _ := p.AuthorityAddress(collectionMint)
	err := run(t, func(ctx *program.Context) error {
		return p.Initialise(ctx, &collection.InitialiseArguments{
			Authority:      authorityId,
			CollectionMint: collectionMint,
			Bump:           bump,
		})
	}, authorityId)
	assert.Equal(t, fault.AlreadyInitialized, err, "second initialise")
}

// mint, duplicate, burn, re-mint of the same DNA
func TestDuplicateAndRemint(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := newProgram(t, nil)
	initialise(t, p)

	fp := dna("a")
	assert.Nil(t, mint(t, p, mintId(1), fp, "Kwami#1"), "first mint")
	info := collectionInfo(t, p)
	assert.Equal(t, uint64(1), info.Authority.TotalMinted, "total minted")
	assert.Equal(t, uint64(1), info.DnaCount, "dna count")

	first, err := assetInfo(t, p, mintId(1))
	assert.Nil(t, err, "asset")
	assert.Equal(t, fp, first.Asset.DnaHash, "dna")
	assert.Equal(t, ownerId, first.Asset.Owner, "owner")
	assert.Equal(t, first.Asset.MintedAt, first.Asset.UpdatedAt, "fresh timestamps")
	assert.Equal(t, "Kwami#1", first.Metadata.Name, "metadata name")

	assert.Equal(t, fault.DuplicateDNA, mint(t, p, mintId(2), fp, "Kwami#2"), "duplicate")
	info = collectionInfo(t, p)
	assert.Equal(t, uint64(1), info.Authority.TotalMinted, "total minted after duplicate")
	assert.Equal(t, uint64(1), info.DnaCount, "dna count after duplicate")

	_, err = assetInfo(t, p, mintId(2))
	assert.Equal(t, fault.AccountNotFound, err, "nothing left by the failed mint")

	assert.Nil(t, burn(t, p, mintId(1), ownerId), "burn")
	assert.Equal(t, uint64(0), collectionInfo(t, p).DnaCount, "dna count after burn")
	_, err = assetInfo(t, p, mintId(1))
	assert.Equal(t, fault.AccountNotFound, err, "burned record reclaimed")

	assert.Nil(t, mint(t, p, mintId(3), fp, "Kwami#3"), "re-mint")
	third, err := assetInfo(t, p, mintId(3))
	assert.Nil(t, err, "re-minted asset")
	assert.True(t, third.Asset.MintedAt > first.Asset.MintedAt, "new record, new timestamps")
	assert.Equal(t, uint64(2), collectionInfo(t, p).Authority.TotalMinted, "total minted counts both")
}

func TestCapacity(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := newProgram(t, &collection.Configuration{Capacity: 3})
	initialise(t, p)

	for i := 0; i < 3; i += 1 {
		assert.Nil(t, mint(t, p, mintId(byte(i)), dna(fmt.Sprintf("%d", i)), "Kwami"), "mint %d", i)
	}
	assert.Equal(t, fault.RegistryFull, mint(t, p, mintId(10), dna("overflow"), "Kwami"), "full")
	assert.Equal(t, fault.DuplicateDNA, mint(t, p, mintId(11), dna("0"), "Kwami"), "duplicate reported first")

	assert.Nil(t, burn(t, p, mintId(1), ownerId), "burn")
	assert.Nil(t, mint(t, p, mintId(10), dna("overflow"), "Kwami"), "room after burn")
	assert.Equal(t, uint64(3), collectionInfo(t, p).DnaCount, "count")
}

func TestMintCheckOrder(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := newProgram(t, nil)
	initialise(t, p)
	assert.Nil(t, mint(t, p, mintId(1), dna("a"), "Kwami#1"), "mint")

	longName := strings.Repeat("n", record.MaxNameLength+1)
	longSymbol := strings.Repeat("s", record.MaxSymbolLength+1)
	longUri := strings.Repeat("u", record.MaxUriLength+1)

	try := func(fp record.Fingerprint, name, symbol, uri string) error {
		return run(t, func(ctx *program.Context) error {
			return p.Mint(ctx, &collection.MintArguments{
				Owner:          ownerId,
				CollectionMint: collectionMint,
				AssetMint:      mintId(2),
				DnaHash:        fp,
				Name:           name,
				Symbol:         symbol,
				Uri:            uri,
			})
		}, ownerId)
	}

	assert.Equal(t, fault.DuplicateDNA, try(dna("a"), longName, longSymbol, longUri), "duplicate first")
	assert.Equal(t, fault.NameTooLong, try(dna("b"), longName, longSymbol, longUri), "name next")
	assert.Equal(t, fault.SymbolTooLong, try(dna("b"), "Kwami", longSymbol, longUri), "symbol next")
	assert.Equal(t, fault.UriTooLong, try(dna("b"), "Kwami", "KWAMI", longUri), "uri last")

	assert.Nil(t, try(dna("b"), strings.Repeat("n", record.MaxNameLength), strings.Repeat("s", record.MaxSymbolLength), strings.Repeat("u", record.MaxUriLength)), "bounds are inclusive")
}

func TestMintNeedsOwnerSignature(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := newProgram(t, nil)
	initialise(t, p)

	err := run(t, func(ctx *program.Context) error {
		return p.Mint(ctx, &collection.MintArguments{
			Owner:          ownerId,
			CollectionMint: collectionMint,
			AssetMint:      mintId(1),
			DnaHash:        dna("a"),
		})
	}, otherId)
	assert.Equal(t, fault.MissingSignature, err, "unsigned")
}

func TestOwnershipGating(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := newProgram(t, nil)
	initialise(t, p)
	assert.Nil(t, mint(t, p, mintId(1), dna("a"), "Kwami#1"), "mint")
	before, _ := assetInfo(t, p, mintId(1))

	err := run(t, func(ctx *program.Context) error {
		return p.Update(ctx, &collection.UpdateArguments{Owner: otherId, AssetMint: mintId(1), NewUri: "x"})
	}, otherId)
	assert.Equal(t, fault.InvalidOwner, err, "update by other")

	err = run(t, func(ctx *program.Context) error {
		return p.Transfer(ctx, &collection.TransferArguments{Owner: otherId, AssetMint: mintId(1), NewOwner: otherId})
	}, otherId)
	assert.Equal(t, fault.InvalidOwner, err, "transfer by other")

	assert.Equal(t, fault.InvalidOwner, burn(t, p, mintId(1), otherId), "burn by other")

	err = run(t, func(ctx *program.Context) error {
		return p.Update(ctx, &collection.UpdateArguments{Owner: ownerId, AssetMint: mintId(1), NewUri: "x"})
	})
	assert.Equal(t, fault.MissingSignature, err, "owner did not sign")

	after, _ := assetInfo(t, p, mintId(1))
	assert.Equal(t, before.Asset, after.Asset, "nothing mutated")
	assert.Equal(t, uint64(1), collectionInfo(t, p).DnaCount, "registry untouched")
}

func TestUpdateAndTransfer(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := newProgram(t, nil)
	initialise(t, p)
	fp := dna("a")
	assert.Nil(t, mint(t, p, mintId(1), fp, "Kwami#1"), "mint")

	err := run(t, func(ctx *program.Context) error {
		return p.Update(ctx, &collection.UpdateArguments{Owner: ownerId, AssetMint: mintId(1), NewUri: strings.Repeat("u", 201)})
	}, ownerId)
	assert.Equal(t, fault.UriTooLong, err, "uri bound")

	err = run(t, func(ctx *program.Context) error {
		return p.Update(ctx, &collection.UpdateArguments{Owner: ownerId, AssetMint: mintId(1), NewUri: "ipfs://new"})
	}, ownerId)
	assert.Nil(t, err, "update")

	updated, _ := assetInfo(t, p, mintId(1))
	assert.Equal(t, "ipfs://new", updated.Asset.MetadataUri, "uri")
	assert.True(t, updated.Asset.UpdatedAt > updated.Asset.MintedAt, "updated at moves")
	assert.Equal(t, fp, updated.Asset.DnaHash, "dna unchanged by update")

	err = run(t, func(ctx *program.Context) error {
		return p.Transfer(ctx, &collection.TransferArguments{Owner: ownerId, AssetMint: mintId(1), NewOwner: otherId})
	}, ownerId)
	assert.Nil(t, err, "transfer")

	transferred, _ := assetInfo(t, p, mintId(1))
	assert.Equal(t, otherId, transferred.Asset.Owner, "new owner")
	assert.Equal(t, fp, transferred.Asset.DnaHash, "dna unchanged by transfer")

	// the previous owner has lost all rights
	assert.Equal(t, fault.InvalidOwner, burn(t, p, mintId(1), ownerId), "old owner")
	assert.Nil(t, burn(t, p, mintId(1), otherId), "new owner burns")
}

func TestTransferToNull(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	accepting := newProgram(t, nil)
	initialise(t, accepting)
	assert.Nil(t, mint(t, accepting, mintId(1), dna("a"), "Kwami#1"), "mint")
	assert.Nil(t, mint(t, accepting, mintId(2), dna("b"), "Kwami#2"), "mint")

	transfer := func(p *collection.Program, asset account.Identity) error {
		return run(t, func(ctx *program.Context) error {
			return p.Transfer(ctx, &collection.TransferArguments{Owner: ownerId, AssetMint: asset, NewOwner: account.Null})
		}, ownerId)
	}
	assert.Nil(t, transfer(accepting, mintId(1)), "null accepted by default")

	rejecting := newProgram(t, &collection.Configuration{RejectNullOwner: true})
	assert.Equal(t, fault.InvalidIdentity, transfer(rejecting, mintId(2)), "null rejected when configured")
}

func TestBurnToleratesMissingDna(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := newProgram(t, nil)
	initialise(t, p)
	assert.Nil(t, mint(t, p, mintId(1), dna("a"), "Kwami#1"), "mint")
	assert.Nil(t, mint(t, p, mintId(2), dna("b"), "Kwami#2"), "mint")

	// drop the DNA from the registry behind the asset's back
	address, err := registry.Address(fixtures.CollectionProgram, collectionMint)
	assert.Nil(t, err, "registry address")
	assert.Nil(t, run(t, func(ctx *program.Context) error {
		reg, err := registry.Load(ctx, address)
		if nil != err {
			return err
		}
		reg.Remove(dna("a"))
		return reg.Store(ctx, address)
	}), "remove dna")
	assert.Equal(t, uint64(1), collectionInfo(t, p).DnaCount, "dna count after removal")

	var result *collection.BurnResult
	var logs []string
	err = run(t, func(ctx *program.Context) error {
		r, err := p.Burn(ctx, &collection.BurnArguments{Owner: ownerId, CollectionMint: collectionMint, AssetMint: mintId(1)})
		result = r
		logs = ctx.Logs()
		return err
	}, ownerId)
	assert.Nil(t, err, "burn")
	assert.Equal(t, ownerId, result.Beneficiary, "refund to owner")
	assert.Contains(t, logs, "Refunded to: "+ownerId.String(), "refund logged")
	assert.Equal(t, uint64(1), collectionInfo(t, p).DnaCount, "other dna untouched")

	_, err = assetInfo(t, p, mintId(1))
	assert.Equal(t, fault.AccountNotFound, err, "burned record reclaimed")
}

// an asset can only be burned through the collection it was minted into
func TestBurnWrongCollection(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	secondMint := account.Identity{0xd2}

	p := newProgram(t, nil)
	initialise(t, p)
	initialiseCollection(t, p, secondMint)

	fp := dna("shared")
	assert.Nil(t, mintInto(t, p, secondMint, otherId, mintId(1), fp, "Kwami#1"), "mint into second collection")
	assert.Nil(t, mintInto(t, p, collectionMint, ownerId, mintId(2), fp, "Kwami#2"), "same dna in first collection")

	assert.Equal(t, fault.WrongCollection, burnFrom(t, p, secondMint, mintId(2), ownerId), "burn naming the other collection")

	assert.Equal(t, uint64(1), collectionInfoOf(t, p, secondMint).DnaCount, "second registry unchanged")
	assert.Equal(t, uint64(1), collectionInfo(t, p).DnaCount, "first registry unchanged")
	_, err := assetInfo(t, p, mintId(2))
	assert.Nil(t, err, "asset still live")

	assert.Equal(t, fault.DuplicateDNA, mintInto(t, p, secondMint, ownerId, mintId(3), fp, "Kwami#3"), "dna still taken")

	assert.Nil(t, burnFrom(t, p, collectionMint, mintId(2), ownerId), "burn from its own collection")
	assert.Equal(t, uint64(0), collectionInfo(t, p).DnaCount, "freed in first collection")
	assert.Equal(t, uint64(1), collectionInfoOf(t, p, secondMint).DnaCount, "second registry still holds its asset")
}

// a clock stepping back never moves updated_at behind minted_at
func TestClockStepsBack(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := newProgram(t, nil)
	initialise(t, p)
	assert.Nil(t, mint(t, p, mintId(1), dna("a"), "Kwami#1"), "mint")
	minted, _ := assetInfo(t, p, mintId(1))

	earlier := time.Unix(minted.Asset.MintedAt, 0).Add(-time.Hour)

	err := runAt(t, earlier, func(ctx *program.Context) error {
		return p.Update(ctx, &collection.UpdateArguments{Owner: ownerId, AssetMint: mintId(1), NewUri: "ipfs://new"})
	}, ownerId)
	assert.Nil(t, err, "update")

	updated, _ := assetInfo(t, p, mintId(1))
	assert.Equal(t, "ipfs://new", updated.Asset.MetadataUri, "uri")
	assert.Equal(t, minted.Asset.MintedAt, updated.Asset.UpdatedAt, "update clamped")

	err = runAt(t, earlier, func(ctx *program.Context) error {
		return p.Transfer(ctx, &collection.TransferArguments{Owner: ownerId, AssetMint: mintId(1), NewOwner: otherId})
	}, ownerId)
	assert.Nil(t, err, "transfer")

	transferred, _ := assetInfo(t, p, mintId(1))
	assert.Equal(t, otherId, transferred.Asset.Owner, "owner")
	assert.False(t, transferred.Asset.UpdatedAt < transferred.Asset.MintedAt, "transfer clamped")
}

func TestCollectionAuthorityTransfer(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := newProgram(t, nil)
	initialise(t, p)

	transfer := func(caller, next account.Identity) error {
		return run(t, func(ctx *program.Context) error {
			return p.TransferAuthority(ctx, &collection.TransferAuthorityArguments{
				Authority:      caller,
				CollectionMint: collectionMint,
				NewAuthority:   next,
			})
		}, caller)
	}

	assert.Equal(t, fault.Unauthorized, transfer(otherId, otherId), "not the authority")
	assert.Equal(t, fault.InvalidAuthority, transfer(authorityId, account.Null), "null")
	assert.Nil(t, transfer(authorityId, otherId), "transfer")

	info := collectionInfo(t, p)
	assert.Equal(t, otherId, info.Authority.Authority, "new authority")
	assert.Equal(t, fault.Unauthorized, transfer(authorityId, authorityId), "old authority lost privilege")
}

func TestCheckDna(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := newProgram(t, nil)
	initialise(t, p)
	assert.Nil(t, mint(t, p, mintId(1), dna("a"), "Kwami#1"), "mint")

	ctx := newContext(t)
	defer ctx.Transaction().Abort()

	exists, err := p.CheckDna(ctx, collectionMint, dna("a"))
	assert.Nil(t, err, "check")
	assert.True(t, exists, "present")

	exists, err = p.CheckDna(ctx, collectionMint, dna("b"))
	assert.Nil(t, err, "check")
	assert.False(t, exists, "absent")
	assert.Equal(t, []string{"DNA exists: true", "DNA exists: false"}, ctx.Logs(), "logs")
}

// a failing metadata step discards the registry insert and the record
func TestMetadataFailureAborts(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	md := mocks.NewMockHandle(ctl)
	md.EXPECT().
		Create(gomock.Any(), gomock.Any(), mintId(1), "Kwami#1", "KWAMI", gomock.Any()).
		Return(fault.InvalidDerivation).
		Times(1)

	p, err := collection.New(fixtures.CollectionProgram, nil, token.New(), md)
	assert.Nil(t, err, "program")
	initialise(t, p)

	assert.Equal(t, fault.InvalidDerivation, mint(t, p, mintId(1), dna("a"), "Kwami#1"), "mint fails")

	info := collectionInfo(t, p)
	assert.Equal(t, uint64(0), info.DnaCount, "registry insert discarded")
	assert.Equal(t, uint64(0), info.Authority.TotalMinted, "counter discarded")

	md.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
	_, err = assetInfo(t, p, mintId(1))
	assert.Equal(t, fault.AccountNotFound, err, "record discarded")
}

func TestInvalidCapacity(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	tokens := token.New()
	_, err := collection.New(fixtures.CollectionProgram, &collection.Configuration{Capacity: record.MaxDNA + 1}, tokens, nil)
	assert.Equal(t, fault.InvalidCount, err, "capacity above storage bound")
}
