// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/counter"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/ledger"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/storage"
)

// MaximumSignatures - signer pairs accepted on one submission
const MaximumSignatures = 8

// EventCommitted - command of the event sent for each commit
const EventCommitted = "committed"

// Publisher - receives an event after each commit
type Publisher interface {
	Send(command string, parameters ...[]byte) bool
}

// Result - outcome of a committed instruction
type Result struct {
	Id          Id       `json:"id"`
	Instruction string   `json:"instruction"`
	Logs        []string `json:"logs"`
}

// Processor - authenticates, locks and executes instructions
type Processor struct {
	log       *logger.L
	programs  *Programs
	locks     *Locks
	publisher Publisher
	clock     func() time.Time

	committed counter.Counter
	failed    counter.Counter
}

// NewProcessor - a processor routing to both programs
//
// a nil publisher disables events
func NewProcessor(programs *Programs, publisher Publisher) *Processor {
	return &Processor{
		log:       logger.New("processor"),
		programs:  programs,
		locks:     NewLocks(),
		publisher: publisher,
		clock:     time.Now,
	}
}

// SetClock - replace the time source
func (p *Processor) SetClock(clock func() time.Time) {
	p.clock = clock
}

// Programs - the configured programs
func (p *Processor) Programs() *Programs {
	return p.programs
}

// Committed - count of committed instructions
func (p *Processor) Committed() uint64 {
	return p.committed.Uint64()
}

// Failed - count of instructions that aborted
func (p *Processor) Failed() uint64 {
	return p.failed.Uint64()
}

// Submit - verify, execute and commit one packed instruction
func (p *Processor) Submit(packed Packed, signatures []Signature) (*Result, error) {
	instruction, err := packed.Unpack()
	if nil != err {
		return nil, err
	}

	signers, err := verifySignatures(packed, signatures)
	if nil != err {
		return nil, err
	}

	accounts, err := p.programs.Accounts(instruction)
	if nil != err {
		return nil, err
	}

	id := packed.Id()

	release := p.locks.Acquire(accounts.Locked)
	logs, err := p.execute(id, packed, instruction, signers, accounts)
	release()

	if nil != err {
		p.failed.Increment()
		p.log.Debugf("instruction: %s  id: %s  error: %s", instruction.Tag, id, err)
		return nil, err
	}
	p.committed.Increment()
	p.log.Infof("instruction: %s  id: %s  committed", instruction.Tag, id)

	if nil != p.publisher {
		if !p.publisher.Send(EventCommitted, id[:], []byte(instruction.Tag.String()), encodeLogs(logs)) {
			p.log.Warnf("event queue full, dropped: %s", id)
		}
	}

	return &Result{
		Id:          id,
		Instruction: instruction.Tag.String(),
		Logs:        logs,
	}, nil
}

// runs with all accounts locked
func (p *Processor) execute(id Id, packed Packed, instruction *Instruction, signers []account.Identity, accounts *Accounts) ([]string, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	if trx.Has(storage.Pool.Instructions, id[:]) {
		trx.Abort()
		return nil, fault.TransactionAlreadyExists
	}

	ctx := program.NewContext(trx, p.clock(), signers)
	ctx.Declare(accounts.Writable)

	err = p.dispatch(ctx, instruction)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	logs := ctx.Logs()
	trx.Put(storage.Pool.Instructions, id[:], packed)
	trx.Put(storage.Pool.Logs, id[:], encodeLogs(logs))

	err = trx.Commit()
	if nil != err {
		p.log.Errorf("commit: %s  error: %s", id, err)
		return nil, err
	}
	return logs, nil
}

func (p *Processor) dispatch(ctx *program.Context, instruction *Instruction) error {
	c := p.programs.Collection
	l := p.programs.Ledger

	switch arguments := instruction.Arguments.(type) {
	case *collection.InitialiseArguments:
		return c.Initialise(ctx, arguments)
	case *collection.MintArguments:
		return c.Mint(ctx, arguments)
	case *collection.UpdateArguments:
		return c.Update(ctx, arguments)
	case *collection.TransferArguments:
		return c.Transfer(ctx, arguments)
	case *collection.BurnArguments:
		_, err := c.Burn(ctx, arguments)
		return err
	case *collection.TransferAuthorityArguments:
		return c.TransferAuthority(ctx, arguments)

	case *ledger.InitialiseArguments:
		return l.Initialise(ctx, arguments)
	case *ledger.MintArguments:
		return l.MintTokens(ctx, arguments)
	case *ledger.BurnArguments:
		return l.BurnTokens(ctx, arguments)
	case *ledger.PriceArguments:
		return l.UpdateBasePrice(ctx, arguments)
	case *ledger.TransferAuthorityArguments:
		return l.TransferAuthority(ctx, arguments)

	default:
		return fault.UnknownInstruction
	}
}

// View - run a read only query, nothing is ever committed
func (p *Processor) View(query func(ctx *program.Context) error) ([]string, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	ctx := program.NewContext(trx, p.clock(), nil)
	err = query(ctx)
	if nil != err {
		return nil, err
	}
	return ctx.Logs(), nil
}

// Logs - stored log lines of a committed instruction
func (p *Processor) Logs(id Id) ([]string, error) {
	data := storage.Pool.Logs.Get(id[:])
	if nil == data {
		return nil, fault.TransactionNotFound
	}
	return decodeLogs(data), nil
}

// each signature must verify and at least one is required
func verifySignatures(packed Packed, signatures []Signature) ([]account.Identity, error) {
	if 0 == len(signatures) || len(signatures) > MaximumSignatures {
		return nil, fault.InvalidSignatureCount
	}
	signers := make([]account.Identity, 0, len(signatures))
	for _, s := range signatures {
		err := s.Identity.CheckSignature(packed, s.Signature)
		if nil != err {
			return nil, err
		}
		signers = append(signers, s.Identity)
	}
	return signers, nil
}

func encodeLogs(logs []string) []byte {
	return []byte(strings.Join(logs, "\n"))
}

func decodeLogs(data []byte) []string {
	if 0 == len(data) {
		return []string{}
	}
	return strings.Split(string(data), "\n")
}
