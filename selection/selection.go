/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package selection computes exact order statistics (the k-th smallest item
// of an unordered collection) in worst-case linear time using the
// median-of-medians pivot strategy.
//
// Reference: Blum, Floyd, Pratt, Rivest, Tarjan.
// "Time bounds for selection", J. Comput. Syst. Sci. 7 (1973), 448-461.
//
// Every pivot is the median of the per-group medians, so each three-way
// partition discards at least roughly 30% of the working set and the total
// work forms a geometric series in n. The outer descent is iterative; only
// pivot resolution recurses, on a working set a fifth the size, so stacks
// stay logarithmic without relying on the partition being balanced.
package selection

import (
	"errors"
	"fmt"

	"github.com/AustinRochford/orderstat/common"
)

const (
	// DefaultGroupSize is the classic grouping width. Five is the smallest
	// width for which the pivot is guaranteed to land in the middle 70% of
	// the working set.
	DefaultGroupSize = 5
)

const (
	_MIN_GROUP_SIZE = 3
	// Working sets below this size are cheaper to process sequentially than
	// to fan out, regardless of the configured workers.
	_MIN_PARALLEL_ITEMS = 4096
)

var (
	ErrEmpty            = errors.New("operation is undefined for an empty collection")
	ErrRankOutOfBounds  = errors.New("rank must be at least 0 and less than the number of items")
	ErrInvalidRank      = errors.New("normalized rank must be between 0 and 1 inclusive")
	ErrIncomparable     = errors.New("collection is not totally ordered by the compare function")
	ErrInvalidGroupSize = errors.New("group size must be at least 3")
	ErrInvalidWorkers   = errors.New("workers must be at least 1")
)

// Selector evaluates order statistics over collections of C with a fixed
// compare function, grouping width and degree of parallelism. A Selector
// holds no per-call state and is safe for concurrent use.
type Selector[C comparable] struct {
	// groupSize is the width of the groups whose medians elect the pivot.
	// Widths below 5 keep the algorithm correct but lose the linear
	// worst-case bound.
	groupSize int
	workers   int
	compareFn common.CompareFn[C]

	// Invoked after every three-way partition with the working set size and
	// the three bucket sizes. Used by tests to observe partition balance.
	recordPartition func(n, lt, eq, gt int)
}

// NewSelector creates a sequential Selector with the given grouping width.
func NewSelector[C comparable](groupSize int, compareFn common.CompareFn[C]) (*Selector[C], error) {
	return NewParallelSelector(groupSize, 1, compareFn)
}

// NewSelectorWithDefault creates a sequential Selector with groups of 5.
func NewSelectorWithDefault[C comparable](compareFn common.CompareFn[C]) (*Selector[C], error) {
	return NewParallelSelector(DefaultGroupSize, 1, compareFn)
}

// NewParallelSelector creates a Selector that fans group-median computation
// and partitioning out over the given number of workers once a working set
// is large enough for that to pay off. Pivot resolution itself stays
// sequential, as does SelectInPlace.
func NewParallelSelector[C comparable](groupSize, workers int, compareFn common.CompareFn[C]) (*Selector[C], error) {
	if compareFn == nil {
		return nil, fmt.Errorf("no compare function provided")
	}
	if groupSize < _MIN_GROUP_SIZE {
		return nil, fmt.Errorf("group size %d: %w", groupSize, ErrInvalidGroupSize)
	}
	if workers < 1 {
		return nil, fmt.Errorf("workers %d: %w", workers, ErrInvalidWorkers)
	}
	return &Selector[C]{
		groupSize: groupSize,
		workers:   workers,
		compareFn: compareFn,
	}, nil
}

// GroupSize returns the configured grouping width.
func (s *Selector[C]) GroupSize() int {
	return s.groupSize
}

// Workers returns the configured degree of parallelism.
func (s *Selector[C]) Workers() int {
	return s.workers
}
