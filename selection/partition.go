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
)

// partitionThreeWay splits items into new less-than, equal and greater-than
// buckets. Routing every pivot-equal item into the middle bucket is what
// lets duplicate-heavy collections resolve in one pass instead of clumping
// on one side.
func (s *Selector[C]) partitionThreeWay(items []C, pivot C) ([]C, []C, []C, error) {
	if s.parallelizable(len(items)) {
		return s.classifyParallel(items, pivot)
	}
	return s.classify(items, pivot)
}

// classify is the sequential single-pass classifier. An item that compares
// neither before nor after the pivot must equal it; anything else means the
// compare function does not induce a total order over the collection.
func (s *Selector[C]) classify(items []C, pivot C) ([]C, []C, []C, error) {
	var lt, eq, gt []C
	for _, item := range items {
		switch {
		case s.compareFn(item, pivot):
			lt = append(lt, item)
		case s.compareFn(pivot, item):
			gt = append(gt, item)
		case item == pivot:
			eq = append(eq, item)
		default:
			return nil, nil, nil, fmt.Errorf("item %v against pivot %v: %w", item, pivot, ErrIncomparable)
		}
	}
	return lt, eq, gt, nil
}

// partitionRange reorders items[lo:hi] around the pivot value in one pass
// (the Dutch national flag scheme). On return items[lo:ltEnd] order before
// the pivot, items[ltEnd:gtStart] equal it and items[gtStart:hi] order
// after it. Items outside the window are untouched.
func (s *Selector[C]) partitionRange(items []C, lo, hi int, pivot C) (ltEnd, gtStart int, err error) {
	lt, i, gt := lo, lo, hi
	for i < gt {
		switch {
		case s.compareFn(items[i], pivot):
			items[lt], items[i] = items[i], items[lt]
			lt++
			i++
		case s.compareFn(pivot, items[i]):
			gt--
			items[i], items[gt] = items[gt], items[i]
		case items[i] == pivot:
			i++
		default:
			return 0, 0, fmt.Errorf("item %v against pivot %v: %w", items[i], pivot, ErrIncomparable)
		}
	}
	return lt, gt, nil
}
