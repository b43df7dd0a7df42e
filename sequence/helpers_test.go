// SPDX-License-Identifier: MIT
// Package sequence_test contains fixtures shared by the sequence tests.
//
// Purpose:
//   - Provide the canonical relations (Collatz, Fibonacci, a divergent counter).
//   - Keep magic numbers out of test bodies.
//   - Offer a concurrency-safe Recorder fake.

package sequence_test

import (
	"sync"
	"time"

	"github.com/katalvlaran/syracuse/sequence"
)

// Canonical targets and seeds used across tests.
const (
	targetOne = int64(1)

	collatzSeed6       = int64(6)
	collatzSteps6      = 8
	collatzMax6        = int64(16)
	collatzSteps7      = 16
	collatzMax7        = int64(52)
	collatzSteps8      = 3
	collatzMax8        = int64(8)
	fibIndex6          = 6
	fibValue6From0_10  = int64(80)
	fibValue6From0_1   = int64(8)
	divergentNeverHits = int64(-1)
)

// collatz is the Syracuse step over a window of one term.
func collatz(w []int64) int64 {
	if w[0]%2 == 0 {
		return w[0] / 2
	}

	return 3*w[0] + 1
}

// fibonacci adds the two previous terms.
func fibonacci(w []int64) int64 {
	return w[0] + w[1]
}

// tribonacci adds the three previous terms.
func tribonacci(w []int64) int64 {
	return w[0] + w[1] + w[2]
}

// counter increments its only term; from 0 it never reaches a negative target.
func counter(w []int64) int64 {
	return w[0] + 1
}

// collatzTrajectory6 is u_0 … u_8 for Collatz from 6.
var collatzTrajectory6 = []int64{6, 3, 10, 5, 16, 8, 4, 2, 1}

// fakeRecorder counts engine observations. Safe for concurrent use.
type fakeRecorder struct {
	mu         sync.Mutex
	walks      int
	walkErrors int
	batches    []int
	batchErrs  int
}

func (r *fakeRecorder) ObserveWalk(_ int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.walks++
	if err != nil {
		r.walkErrors++
	}
}

func (r *fakeRecorder) ObserveBatch(size int, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, size)
	if err != nil {
		r.batchErrs++
	}
}

var _ sequence.Recorder = (*fakeRecorder)(nil)
