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
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Select returns the item of the given 0-based rank, i.e. the item that
// would sit at items[rank] if items were sorted ascending by the selector's
// compare function. Rank 0 is the minimum, rank len(items)-1 the maximum,
// and duplicates occupy as many consecutive ranks as they have occurrences.
// The input slice is left untouched.
func (s *Selector[C]) Select(items []C, rank int) (C, error) {
	var zero C
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	if err := checkRank(rank, len(items)); err != nil {
		return zero, err
	}
	work := make([]C, len(items))
	copy(work, items)
	return s.selectRank(work, rank)
}

// SelectInPlace behaves like Select but reorders items instead of copying
// them. On return items[rank] holds the answer, everything before it orders
// no later than it and everything after it orders no earlier, matching the
// C++ std::nth_element postcondition. No allocation is proportional to the
// input size.
func (s *Selector[C]) SelectInPlace(items []C, rank int) (C, error) {
	var zero C
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	if err := checkRank(rank, len(items)); err != nil {
		return zero, err
	}
	return s.selectRange(items, 0, len(items), rank)
}

// SelectRanks returns the items of the given ranks, in the order requested.
// Ranks may repeat and need not be sorted. Parallel selectors resolve the
// ranks concurrently, each over its own working copy; the input slice is
// left untouched either way.
func (s *Selector[C]) SelectRanks(items []C, ranks []int) ([]C, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	for _, rank := range ranks {
		if err := checkRank(rank, len(items)); err != nil {
			return nil, err
		}
	}
	out := make([]C, len(ranks))
	if s.workers > 1 && len(ranks) > 1 {
		g := new(errgroup.Group)
		g.SetLimit(s.workers)
		for i, rank := range ranks {
			i, rank := i, rank
			g.Go(func() error {
				work := make([]C, len(items))
				copy(work, items)
				v, err := s.selectRank(work, rank)
				if err != nil {
					return err
				}
				out[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return out, nil
	}
	work := make([]C, len(items))
	for i, rank := range ranks {
		copy(work, items)
		v, err := s.selectRank(work, rank)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// selectRank is the iterative descent over a working copy the selector owns
// and is free to consume. Each pass partitions the working set around the
// median of medians and either resolves the rank inside the equal bucket or
// descends into the one bucket that can hold it. The equal bucket always
// contains the pivot itself, so the working set shrinks every pass.
func (s *Selector[C]) selectRank(work []C, rank int) (C, error) {
	var zero C
	for {
		if len(work) == 1 {
			return work[0], nil
		}
		pivot, err := s.medianOfMedians(work)
		if err != nil {
			return zero, err
		}
		lt, eq, gt, err := s.partitionThreeWay(work, pivot)
		if err != nil {
			return zero, err
		}
		if s.recordPartition != nil {
			s.recordPartition(len(work), len(lt), len(eq), len(gt))
		}
		switch {
		case rank < len(lt):
			work = lt
		case rank < len(lt)+len(eq):
			return pivot, nil
		default:
			rank -= len(lt) + len(eq)
			work = gt
		}
	}
}

// selectRange is the in-place driver. The window items[lo:hi] always
// contains the absolute index k; narrowing it to one of the partition
// regions preserves that, and items outside the window are already on their
// final side of it.
func (s *Selector[C]) selectRange(items []C, lo, hi, k int) (C, error) {
	var zero C
	for {
		if hi-lo == 1 {
			return items[lo], nil
		}
		pivot, err := s.medianOfMediansRange(items, lo, hi)
		if err != nil {
			return zero, err
		}
		ltEnd, gtStart, err := s.partitionRange(items, lo, hi, pivot)
		if err != nil {
			return zero, err
		}
		if s.recordPartition != nil {
			s.recordPartition(hi-lo, ltEnd-lo, gtStart-ltEnd, hi-gtStart)
		}
		switch {
		case k < ltEnd:
			hi = ltEnd
		case k >= gtStart:
			lo = gtStart
		default:
			return items[k], nil
		}
	}
}

func checkRank(rank, numItems int) error {
	if rank < 0 || rank >= numItems {
		return fmt.Errorf("rank %d with %d items: %w", rank, numItems, ErrRankOutOfBounds)
	}
	return nil
}
