/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package symtab

// Stats summarizes bucket occupancy. Formatting is the caller's
// business, the table only computes the numbers.
type Stats struct {
	// MaxChain and MinChain are the longest and shortest chain lengths
	// over all buckets. Empty buckets count, so MinChain is 0 unless
	// every bucket is occupied.
	MaxChain int
	MinChain int
	// AvgChain is the binding count divided by the number of non-empty
	// buckets, 0 for an empty table.
	AvgChain float64
}

// Stats scans every bucket and returns the occupancy extremes and the
// weighted average chain length.
func (t *Table[V]) Stats() Stats {
	s := Stats{MinChain: t.bindings}
	nonEmpty := 0
	for _, b := range t.buckets {
		n := 0
		for ; b != nil; b = b.next {
			n++
		}
		if n > 0 {
			nonEmpty++
		}
		if n > s.MaxChain {
			s.MaxChain = n
		}
		if n < s.MinChain {
			s.MinChain = n
		}
	}
	if nonEmpty > 0 {
		s.AvgChain = float64(t.bindings) / float64(nonEmpty)
	}
	return s
}
