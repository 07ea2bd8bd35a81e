// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package submit - signed instruction submission shared by the
// program services
package submit

import (
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/instruction"
)

// Arguments - a packed instruction with its signatures
type Arguments struct {
	Instruction instruction.Packed      `json:"instruction"`
	Signatures  []instruction.Signature `json:"signatures"`
}

// Reply - id and program log lines of the committed instruction
type Reply struct {
	Id          instruction.Id `json:"id"`
	Instruction string         `json:"instruction"`
	Logs        []string       `json:"logs"`
}

// Run - submit if accept allows the instruction tag
func Run(processor instruction.Handle, accept func(instruction.TagType) bool, arguments *Arguments, reply *Reply) error {
	if nil == arguments || 0 == len(arguments.Instruction) {
		return fault.MissingParameters
	}

	i, err := arguments.Instruction.Unpack()
	if nil != err {
		return err
	}
	if !accept(i.Tag) {
		return fault.WrongProgram
	}

	result, err := processor.Submit(arguments.Instruction, arguments.Signatures)
	if nil != err {
		return err
	}

	reply.Id = result.Id
	reply.Instruction = result.Instruction
	reply.Logs = result.Logs
	return nil
}
