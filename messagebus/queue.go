// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - bounded queues between the processor and
// background senders
//
// a send never blocks: when the queue is full the message is dropped
// and counted, committed state does not depend on its delivery
package messagebus

import (
	"github.com/kwami-ai/kwamid/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command with its parameter frames
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - one bounded message channel
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// BusType - the set of queues
type BusType struct {
	Events *Queue // committed instruction events for publishing
}

// Bus - the global queues
var Bus = BusType{
	Events: NewQueue(queueSize),
}

// NewQueue - queue holding up to size messages
func NewQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, false if it was dropped
func (queue *Queue) Send(command string, parameters ...[]byte) bool {
	select {
	case queue.c <- Message{Command: command, Parameters: parameters}:
		return true
	default:
		queue.dropped.Increment()
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages discarded on a full queue
func (queue *Queue) Dropped() uint64 {
	return queue.dropped.Uint64()
}
