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

package common

import (
	"golang.org/x/exp/constraints"
)

// OrderedComparator returns a CompareFn over any naturally ordered type.
// Note that the order it induces over floating point values is not total in
// the presence of NaN.
func OrderedComparator[T constraints.Ordered](reverseOrder bool) CompareFn[T] {
	return func(a, b T) bool {
		if reverseOrder {
			return a > b
		}
		return a < b
	}
}

var Int64Comparator = func(reverseOrder bool) CompareFn[int64] {
	return func(a, b int64) bool {
		if reverseOrder {
			return a > b
		}
		return a < b
	}
}

var Float64Comparator = func(reverseOrder bool) CompareFn[float64] {
	return func(a, b float64) bool {
		if reverseOrder {
			return a > b
		}
		return a < b
	}
}

var StringComparator = func(reverseOrder bool) CompareFn[string] {
	return func(a, b string) bool {
		if reverseOrder {
			return a > b
		}
		return a < b
	}
}
