// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwami-ai/kwamid/background"
)

type worker struct {
	started chan struct{}
	stopped bool
}

func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {
	close(w.started)
	<-shutdown
	w.stopped = true
}

func TestStartStop(t *testing.T) {
	workers := []*worker{
		{started: make(chan struct{})},
		{started: make(chan struct{})},
	}
	processes := background.Processes{workers[0], workers[1]}

	b := background.Start(processes, nil)
	for _, w := range workers {
		<-w.started
	}
	b.Stop()

	for i, w := range workers {
		assert.True(t, w.stopped, "worker[%d] stopped", i)
	}
}

func TestStopNil(t *testing.T) {
	var b *background.T
	b.Stop()
}
