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
	"golang.org/x/exp/constraints"

	"github.com/AustinRochford/orderstat/common"
)

// Select returns the item of the given rank using a one-shot selector with
// groups of 5.
func Select[C comparable](items []C, rank int, compareFn common.CompareFn[C]) (C, error) {
	s, err := NewSelectorWithDefault(compareFn)
	if err != nil {
		var zero C
		return zero, err
	}
	return s.Select(items, rank)
}

// SelectInPlace reorders items so that items[rank] holds the item of the
// given rank, using a one-shot selector with groups of 5.
func SelectInPlace[C comparable](items []C, rank int, compareFn common.CompareFn[C]) (C, error) {
	s, err := NewSelectorWithDefault(compareFn)
	if err != nil {
		var zero C
		return zero, err
	}
	return s.SelectInPlace(items, rank)
}

// Median returns the lower median using a one-shot selector with groups
// of 5.
func Median[C comparable](items []C, compareFn common.CompareFn[C]) (C, error) {
	s, err := NewSelectorWithDefault(compareFn)
	if err != nil {
		var zero C
		return zero, err
	}
	return s.Median(items)
}

// Quantile returns the item at the given normalized rank using a one-shot
// selector with groups of 5.
func Quantile[C comparable](items []C, normalizedRank float64, compareFn common.CompareFn[C]) (C, error) {
	s, err := NewSelectorWithDefault(compareFn)
	if err != nil {
		var zero C
		return zero, err
	}
	return s.Quantile(items, normalizedRank)
}

// SelectOrdered is Select over any naturally ordered element type.
func SelectOrdered[T constraints.Ordered](items []T, rank int) (T, error) {
	return Select(items, rank, common.OrderedComparator[T](false))
}

// SelectInPlaceOrdered is SelectInPlace over any naturally ordered element
// type.
func SelectInPlaceOrdered[T constraints.Ordered](items []T, rank int) (T, error) {
	return SelectInPlace(items, rank, common.OrderedComparator[T](false))
}

// MedianOrdered is Median over any naturally ordered element type.
func MedianOrdered[T constraints.Ordered](items []T) (T, error) {
	return Median(items, common.OrderedComparator[T](false))
}

// QuantileOrdered is Quantile over any naturally ordered element type.
func QuantileOrdered[T constraints.Ordered](items []T, normalizedRank float64) (T, error) {
	return Quantile(items, normalizedRank, common.OrderedComparator[T](false))
}
