// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwami-ai/kwamid/messagebus"
)

func TestQueue(t *testing.T) {
	q := messagebus.NewQueue(3)

	commands := []string{"c1", "c2", "c3"}
	for _, c := range commands {
		assert.True(t, q.Send(c, []byte(c)), "send %s", c)
	}

	queue := q.Chan()
	for _, c := range commands {
		received := <-queue
		assert.Equal(t, c, received.Command, "command")
		assert.Equal(t, [][]byte{[]byte(c)}, received.Parameters, "parameters")
	}
}

func TestFullQueueDrops(t *testing.T) {
	q := messagebus.NewQueue(1)

	assert.True(t, q.Send("first"), "first")
	assert.False(t, q.Send("second"), "second")
	assert.Equal(t, uint64(1), q.Dropped(), "dropped")

	received := <-q.Chan()
	assert.Equal(t, "first", received.Command, "kept the first")
}
