// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - QWAMI supply accounting
//
// circulating supply is never stored, it is always computed as
// total minted less total burned and may not exceed the maximum
// supply.  All arithmetic is checked, nothing wraps.
package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/authority"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/record"
	"github.com/kwami-ai/kwamid/token"
)

// DefaultMaximumSupply - one billion tokens of nine decimals
const DefaultMaximumSupply = uint64(1000000000) * uint64(1000000000)

// Configuration - ledger options
type Configuration struct {
	MaximumSupply uint64 `gluamapper:"maximum_supply" json:"maximum_supply"`
}

// Program - the ledger program
type Program struct {
	log           *logger.L
	id            account.Identity
	tokens        token.Handle
	maximumSupply uint64
}

// New - create the program, zero maximum supply selects the default
func New(id account.Identity, configuration *Configuration, tokens token.Handle) *Program {
	maximumSupply := DefaultMaximumSupply
	if nil != configuration && 0 != configuration.MaximumSupply {
		maximumSupply = configuration.MaximumSupply
	}
	return &Program{
		log:           logger.New("ledger"),
		id:            id,
		tokens:        tokens,
		maximumSupply: maximumSupply,
	}
}

// Id - program identity
func (p *Program) Id() account.Identity {
	return p.id
}

// MaximumSupply - the configured ceiling
func (p *Program) MaximumSupply() uint64 {
	return p.maximumSupply
}

// AuthorityAddress - canonical address and bump of a token authority
func (p *Program) AuthorityAddress(mint account.Identity) (account.Identity, uint8, error) {
	return authority.Locate(p.id, record.TokenAuthorityTag, mint)
}

func (p *Program) load(ctx *program.Context, mint account.Identity) (*record.TokenAuthority, account.Identity, error) {
	address, _, err := p.AuthorityAddress(mint)
	if nil != err {
		return nil, account.Null, err
	}
	data, err := ctx.Load(address)
	if nil != err {
		return nil, account.Null, err
	}
	ta, err := record.UnpackTokenAuthority(data)
	if nil != err {
		return nil, account.Null, err
	}
	return ta, address, nil
}

func store(ctx *program.Context, address account.Identity, ta *record.TokenAuthority) error {
	packed, err := ta.Pack()
	if nil != err {
		return err
	}
	return ctx.Store(address, packed)
}

// InitialiseArguments - create the token authority and its mint
type InitialiseArguments struct {
	Authority account.Identity `json:"authority"`
	Mint      account.Identity `json:"mint"`
	Bump      uint8            `json:"bump"`
}

// Initialise - authority record and a nine decimal mint it controls
func (p *Program) Initialise(ctx *program.Context, arguments *InitialiseArguments) error {
	address, err := authority.Initialise(ctx, p.id, record.TokenAuthorityTag, arguments.Authority, arguments.Mint, arguments.Bump)
	if nil != err {
		return err
	}

	err = p.tokens.InitialiseMint(ctx, arguments.Mint, record.TokenDecimals, address)
	if nil != err {
		return err
	}

	ta := &record.TokenAuthority{
		Authority:         arguments.Authority,
		Mint:              arguments.Mint,
		TotalMinted:       0,
		TotalBurned:       0,
		BasePriceUsdCents: record.DefaultBasePrice,
		Bump:              arguments.Bump,
	}
	err = store(ctx, address, ta)
	if nil != err {
		return err
	}

	ctx.Logf("QWAMI token initialized")
	ctx.Logf("Max supply: %d", p.maximumSupply)
	ctx.Logf("Base price: $%d.%02d", record.DefaultBasePrice/100, record.DefaultBasePrice%100)
	p.log.Infof("initialised mint: %s  authority: %s", arguments.Mint, arguments.Authority)
	return nil
}

// MintArguments - issue new tokens
type MintArguments struct {
	Authority   account.Identity `json:"authority"`
	Mint        account.Identity `json:"mint"`
	Destination account.Identity `json:"destination"`
	Amount      uint64           `json:"amount"`
}

// MintTokens - authority only, bounded by the maximum supply
func (p *Program) MintTokens(ctx *program.Context, arguments *MintArguments) error {
	ta, address, err := p.load(ctx, arguments.Mint)
	if nil != err {
		return err
	}
	err = authority.Check(ctx, ta.Authority, arguments.Authority)
	if nil != err {
		return err
	}

	circulating, err := ta.Circulating()
	if nil != err {
		return err
	}
	newSupply := circulating + arguments.Amount
	if newSupply < circulating {
		return fault.MathOverflow
	}
	if newSupply > p.maximumSupply {
		return fault.MaxSupplyExceeded
	}

	signer := authority.Signer(p.id, record.TokenAuthorityTag, ta.Mint, ta.Bump)
	err = p.tokens.MintTo(ctx, arguments.Mint, arguments.Destination, arguments.Amount, signer)
	if nil != err {
		return err
	}

	totalMinted := ta.TotalMinted + arguments.Amount
	if totalMinted < ta.TotalMinted {
		return fault.MathOverflow
	}
	ta.TotalMinted = totalMinted

	err = store(ctx, address, ta)
	if nil != err {
		return err
	}

	ctx.Logf("Minted %d QWAMI tokens", arguments.Amount)
	ctx.Logf("Total supply: %d", newSupply)
	p.log.Infof("minted: %d  to: %s  circulating: %d", arguments.Amount, arguments.Destination, newSupply)
	return nil
}

// BurnArguments - destroy tokens from the signer's balance
type BurnArguments struct {
	Owner  account.Identity `json:"owner"`
	Mint   account.Identity `json:"mint"`
	Amount uint64           `json:"amount"`
}

// BurnTokens - the balance owner signs, counted against total burned
func (p *Program) BurnTokens(ctx *program.Context, arguments *BurnArguments) error {
	ta, address, err := p.load(ctx, arguments.Mint)
	if nil != err {
		return err
	}

	err = p.tokens.Burn(ctx, arguments.Mint, arguments.Owner, arguments.Amount)
	if nil != err {
		return err
	}

	totalBurned := ta.TotalBurned + arguments.Amount
	if totalBurned < ta.TotalBurned {
		return fault.MathOverflow
	}
	ta.TotalBurned = totalBurned

	err = store(ctx, address, ta)
	if nil != err {
		return err
	}

	ctx.Logf("Burned %d QWAMI tokens", arguments.Amount)
	p.log.Infof("burned: %d  from: %s", arguments.Amount, arguments.Owner)
	return nil
}

// PriceArguments - set the informational quote
type PriceArguments struct {
	Authority account.Identity `json:"authority"`
	Mint      account.Identity `json:"mint"`
	Price     uint64           `json:"price"`
}

// UpdateBasePrice - authority only, zero is rejected
func (p *Program) UpdateBasePrice(ctx *program.Context, arguments *PriceArguments) error {
	ta, address, err := p.load(ctx, arguments.Mint)
	if nil != err {
		return err
	}
	err = authority.Check(ctx, ta.Authority, arguments.Authority)
	if nil != err {
		return err
	}
	if 0 == arguments.Price {
		return fault.InvalidPrice
	}

	ta.BasePriceUsdCents = arguments.Price
	err = store(ctx, address, ta)
	if nil != err {
		return err
	}

	ctx.Logf("Base price updated to: $%d.%02d", arguments.Price/100, arguments.Price%100)
	p.log.Infof("mint: %s  base price: %d", arguments.Mint, arguments.Price)
	return nil
}

// TransferAuthorityArguments - hand the ledger to a new authority
type TransferAuthorityArguments struct {
	Authority    account.Identity `json:"authority"`
	Mint         account.Identity `json:"mint"`
	NewAuthority account.Identity `json:"newAuthority"`
}

// TransferAuthority - authority only, a null successor is rejected
func (p *Program) TransferAuthority(ctx *program.Context, arguments *TransferAuthorityArguments) error {
	ta, address, err := p.load(ctx, arguments.Mint)
	if nil != err {
		return err
	}
	err = authority.Check(ctx, ta.Authority, arguments.Authority)
	if nil != err {
		return err
	}
	err = authority.Transfer(&ta.Authority, arguments.NewAuthority)
	if nil != err {
		return err
	}

	err = store(ctx, address, ta)
	if nil != err {
		return err
	}

	ctx.Logf("Authority transferred to: %s", arguments.NewAuthority)
	p.log.Infof("mint: %s  authority: %s -> %s", arguments.Mint, arguments.Authority, arguments.NewAuthority)
	return nil
}

// Info - counters of one ledger
type Info struct {
	Address           account.Identity `json:"address"`
	Authority         account.Identity `json:"authority"`
	Mint              account.Identity `json:"mint"`
	TotalMinted       uint64           `json:"totalMinted"`
	TotalBurned       uint64           `json:"totalBurned"`
	Circulating       uint64           `json:"circulating"`
	MaximumSupply     uint64           `json:"maximumSupply"`
	BasePriceUsdCents uint64           `json:"basePriceUsdCents"`
	Decimals          uint8            `json:"decimals"`
}

// Ledger - look up a ledger by its mint
func (p *Program) Ledger(ctx *program.Context, mint account.Identity) (*Info, error) {
	ta, address, err := p.load(ctx, mint)
	if nil != err {
		return nil, err
	}
	circulating, err := ta.Circulating()
	if nil != err {
		return nil, err
	}
	m, err := p.tokens.Mint(ctx, mint)
	if nil != err {
		return nil, err
	}
	return &Info{
		Address:           address,
		Authority:         ta.Authority,
		Mint:              ta.Mint,
		TotalMinted:       ta.TotalMinted,
		TotalBurned:       ta.TotalBurned,
		Circulating:       circulating,
		MaximumSupply:     p.maximumSupply,
		BasePriceUsdCents: ta.BasePriceUsdCents,
		Decimals:          m.Decimals,
	}, nil
}

// Balance - tokens held by an owner
func (p *Program) Balance(ctx *program.Context, mint account.Identity, owner account.Identity) (uint64, error) {
	return p.tokens.Balance(ctx, mint, owner)
}
