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
	"math"
)

const (
	// Tail rounding keeps quantile boundaries like 0.1*n from missing their
	// exact natural rank to floating point noise.
	tailRoundingFactor = 1e7
)

// Median returns the lower median, the item of rank (len(items)-1)/2. For
// odd sizes that is the unique middle item, for even sizes the smaller of
// the two middle items. The input slice is left untouched.
func (s *Selector[C]) Median(items []C) (C, error) {
	var zero C
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	return s.Select(items, (len(items)-1)/2)
}

// Quantile returns the item at the given normalized rank in [0, 1] under
// inclusive semantics: the smallest item whose cumulative weight reaches
// rank*n. Quantile(items, 0) is the minimum, Quantile(items, 1) the
// maximum, and Quantile(items, 0.5) agrees with Median.
func (s *Selector[C]) Quantile(items []C, normalizedRank float64) (C, error) {
	var zero C
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	if err := checkNormalizedRank(normalizedRank); err != nil {
		return zero, err
	}
	return s.Select(items, naturalRankIndex(normalizedRank, len(items)))
}

// Quantiles resolves several normalized ranks against the same collection,
// returning the items in the order the ranks were given.
func (s *Selector[C]) Quantiles(items []C, normalizedRanks []float64) ([]C, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	ranks := make([]int, len(normalizedRanks))
	for i, r := range normalizedRanks {
		if err := checkNormalizedRank(r); err != nil {
			return nil, err
		}
		ranks[i] = naturalRankIndex(r, len(items))
	}
	return s.SelectRanks(items, ranks)
}

// naturalRankIndex converts a normalized rank to the 0-based index of the
// item holding it under inclusive semantics.
func naturalRankIndex(normalizedRank float64, numItems int) int {
	naturalRank := normalizedRank * float64(numItems)
	if numItems <= tailRoundingFactor {
		naturalRank = math.Round(naturalRank*tailRoundingFactor) / tailRoundingFactor
	}
	index := int(math.Ceil(naturalRank)) - 1
	if index < 0 {
		index = 0
	}
	if index > numItems-1 {
		index = numItems - 1
	}
	return index
}

func checkNormalizedRank(normalizedRank float64) error {
	if math.IsNaN(normalizedRank) || normalizedRank < 0 || normalizedRank > 1 {
		return ErrInvalidRank
	}
	return nil
}
