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

// Package strhash implements the multiplicative string hash used by
// container/symtab for bucket placement.
//
// It folds each byte into a 32-bit accumulator, h = h*65599 + b, with
// wraparound. Order-sensitive, deterministic and NOT cryptographic.
// Callers reduce the result modulo their bucket count.
package strhash

const multiplier = 65599

// Hash returns the hash of the given bytes.
func Hash(b []byte) uint32 {
	h := uint32(0)
	for i := 0; i < len(b); i++ {
		h = h*multiplier + uint32(b[i])
	}
	return h
}

// HashStr returns the hash of the given string.
func HashStr(s string) uint32 {
	h := uint32(0)
	for i := 0; i < len(s); i++ {
		h = h*multiplier + uint32(s[i])
	}
	return h
}
