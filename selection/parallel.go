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
	"sync"

	"golang.org/x/sync/errgroup"
)

// parallelizable reports whether a working set of n items should fan out.
func (s *Selector[C]) parallelizable(n int) bool {
	return s.workers > 1 && n >= _MIN_PARALLEL_ITEMS
}

// groupMediansParallel fills medians one worker per contiguous span of
// groups. Groups tile the items and every worker owns distinct median
// slots, so all writes are disjoint and the only synchronization is the
// final join.
func (s *Selector[C]) groupMediansParallel(items []C, medians []C) {
	span := (len(medians) + s.workers - 1) / s.workers
	var wg sync.WaitGroup
	for start := 0; start < len(medians); start += span {
		end := start + span
		if end > len(medians) {
			end = len(medians)
		}
		wg.Add(1)
		go func(gLo, gHi int) {
			defer wg.Done()
			for g := gLo; g < gHi; g++ {
				lo := g * s.groupSize
				hi := lo + s.groupSize
				if hi > len(items) {
					hi = len(items)
				}
				medians[g] = items[s.groupMedian(items, lo, hi)]
			}
		}(start, end)
	}
	wg.Wait()
}

// classifyParallel classifies contiguous chunks concurrently, then
// concatenates the per-chunk buckets in chunk order. That reproduces the
// exact bucket contents and ordering of the sequential classifier, so the
// two paths are interchangeable.
func (s *Selector[C]) classifyParallel(items []C, pivot C) ([]C, []C, []C, error) {
	span := (len(items) + s.workers - 1) / s.workers
	numChunks := (len(items) + span - 1) / span
	ltParts := make([][]C, numChunks)
	eqParts := make([][]C, numChunks)
	gtParts := make([][]C, numChunks)

	var g errgroup.Group
	for i := 0; i < numChunks; i++ {
		i := i
		start := i * span
		end := start + span
		if end > len(items) {
			end = len(items)
		}
		g.Go(func() error {
			lt, eq, gt, err := s.classify(items[start:end], pivot)
			if err != nil {
				return err
			}
			ltParts[i], eqParts[i], gtParts[i] = lt, eq, gt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	var lt, eq, gt []C
	for i := 0; i < numChunks; i++ {
		lt = append(lt, ltParts[i]...)
		eq = append(eq, eqParts[i]...)
		gt = append(gt, gtParts[i]...)
	}
	return lt, eq, gt, nil
}
