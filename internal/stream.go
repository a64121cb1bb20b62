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

package internal

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
)

const (
	DEFAULT_STREAM_SEED = uint64(9001)
)

// Stream produces a deterministic sequence of values by hashing a running
// counter with murmur3. Sequences are reproducible across runs and platforms
// for a given seed, which keeps generated test data stable.
type Stream struct {
	seed    uint64
	counter uint64
	scratch [8]byte
}

func NewStream(seed uint64) *Stream {
	return &Stream{seed: seed}
}

// NextUint64 returns the next value of the stream.
func (s *Stream) NextUint64() uint64 {
	binary.LittleEndian.PutUint64(s.scratch[:], s.counter)
	s.counter++
	return murmur3.SeedSum64(s.seed, s.scratch[:])
}

// NextInt64n returns the next value of the stream reduced to [0, n).
func (s *Stream) NextInt64n(n int64) int64 {
	return int64(s.NextUint64() % uint64(n))
}

// NextFloat64 returns the next value of the stream reduced to [0, 1).
func (s *Stream) NextFloat64() float64 {
	return float64(s.NextUint64()>>11) / (1 << 53)
}

// Permutation returns a deterministic permutation of [0, n) built with
// xxhash-driven Fisher-Yates swaps.
func Permutation(seed uint64, n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var scratch [8]byte
	for i := n - 1; i > 0; i-- {
		binary.LittleEndian.PutUint64(scratch[:], uint64(i))
		h := xxhash.NewWithSeed(seed)
		h.Write(scratch[:])
		j := int(h.Sum64() % uint64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
