// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - per service request throttling
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/kwami-ai/kwamid/fault"
)

// New - limiter allowing perSecond requests with a burst
func New(perSecond float64, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// Limit - delay a single request, RateLimiting if it can never run
func Limit(limiter *rate.Limiter) error {
	return LimitN(limiter, 1, 1)
}

// LimitN - delay a request costing count tokens
//
// an invalid count is charged as a single request and rejected
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	invalid := count <= 0 || count > maximumCount
	if invalid {
		count = 1
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())

	if invalid {
		return fault.InvalidCount
	}
	return nil
}
