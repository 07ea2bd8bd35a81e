// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop long running goroutines
package background

// the shutdown and completed channels of one process
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle type
type T struct {
	s []shutdown
}

// Process - a background process runs until shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {
	register := &T{
		s: make([]shutdown, len(processes)),
	}

	for i, p := range processes {
		s := make(chan struct{})
		f := make(chan struct{})
		register.s[i].shutdown = s
		register.s[i].finished = f
		go func(p Process) {
			p.Run(args, s)
			close(f)
		}(p)
	}
	return register
}

// Stop - signal every process then wait for all to return
func (t *T) Stop() {
	if nil == t {
		return
	}

	for _, s := range t.s {
		close(s.shutdown)
	}

	for _, s := range t.s {
		<-s.finished
	}
}
