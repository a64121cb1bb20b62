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

package selection

import (
	"github.com/AustinRochford/orderstat/common"
)

// medianOfMedians elects the pivot for the working set: the lower median of
// the per-group lower medians, found by running the selection itself on the
// collected medians. The working set is at most a fifth (plus one) of items,
// so the self-call terminates. Working sets no larger than one group resolve
// to their own median directly.
func (s *Selector[C]) medianOfMedians(items []C) (C, error) {
	if len(items) <= s.groupSize {
		return items[s.groupMedian(items, 0, len(items))], nil
	}
	numGroups := (len(items) + s.groupSize - 1) / s.groupSize
	medians := make([]C, numGroups)
	if s.parallelizable(len(items)) {
		s.groupMediansParallel(items, medians)
	} else {
		s.groupMedians(items, medians)
	}
	return s.selectRank(medians, (numGroups-1)/2)
}

// medianOfMediansRange is the in-place variant over the window items[lo:hi].
// Group medians are swapped into the window prefix and the median of that
// prefix is selected in place, so no auxiliary slice is needed. The prefix
// shuffling only permutes the window, which the caller re-partitions anyway.
func (s *Selector[C]) medianOfMediansRange(items []C, lo, hi int) (C, error) {
	n := hi - lo
	if n <= s.groupSize {
		return items[s.groupMedian(items, lo, hi)], nil
	}
	numGroups := (n + s.groupSize - 1) / s.groupSize
	for g := 0; g < numGroups; g++ {
		gLo := lo + g*s.groupSize
		gHi := gLo + s.groupSize
		if gHi > hi {
			gHi = hi
		}
		m := s.groupMedian(items, gLo, gHi)
		items[lo+g], items[m] = items[m], items[lo+g]
	}
	return s.selectRange(items, lo, lo+numGroups, lo+(numGroups-1)/2)
}

// groupMedians fills medians with the lower median of each consecutive
// group of groupSize items, the last group holding whatever remains.
func (s *Selector[C]) groupMedians(items []C, medians []C) {
	for g := range medians {
		lo := g * s.groupSize
		hi := lo + s.groupSize
		if hi > len(items) {
			hi = len(items)
		}
		medians[g] = items[s.groupMedian(items, lo, hi)]
	}
}

// groupMedian sorts items[lo:hi] and returns the index of its lower median,
// lo+(hi-lo-1)/2. Groups never exceed groupSize items, so the insertion
// sort is constant work per group.
func (s *Selector[C]) groupMedian(items []C, lo, hi int) int {
	insertionSortRange(items, lo, hi, s.compareFn)
	return lo + (hi-lo-1)/2
}

func insertionSortRange[C comparable](items []C, lo, hi int, compareFn common.CompareFn[C]) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && compareFn(items[j], items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}
