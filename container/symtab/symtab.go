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

// Package symtab implements a mutable string-keyed hash table with
// separate chaining and staged bucket growth.
//
// The table owns a copy of every key it stores; it never owns the
// values, only holds them. It is NOT safe for concurrent use.
package symtab

import (
	"github.com/bytedance/gopkg/lang/dirtmake"

	"github.com/cloudwego/symtab/hash/strhash"
	"github.com/cloudwego/symtab/internal/hack"
)

// bucketSchedule is the fixed ascending set of permitted bucket counts.
// A table starts at the first entry and only ever grows; len(buckets)
// is always a member of this list.
var bucketSchedule = [...]int{519, 1021, 2053, 4093, 8191, 16381, 32771, 65521}

const (
	minBuckets = 519
	maxBuckets = 65521
)

// binding is a single key/value chain node. The table owns the key
// bytes; the value is the caller's.
type binding[V any] struct {
	key  []byte
	v    V
	next *binding[V]
}

// Table maps string keys to values of type V.
// The zero value is not usable, use New.
type Table[V any] struct {
	bindings int
	buckets  []*binding[V]
}

// New creates an empty Table at the minimum bucket count.
func New[V any]() *Table[V] {
	return &Table[V]{buckets: make([]*binding[V], minBuckets)}
}

// Len returns the number of bindings in the table.
func (t *Table[V]) Len() int {
	return t.bindings
}

// Buckets returns the current bucket count.
func (t *Table[V]) Buckets() int {
	return len(t.buckets)
}

func (t *Table[V]) find(key string) *binding[V] {
	i := strhash.HashStr(key) % uint32(len(t.buckets))
	for b := t.buckets[i]; b != nil; b = b.next {
		if hack.ByteSliceToString(b.key) == key {
			return b
		}
	}
	return nil
}

// Contains reports whether key is present.
func (t *Table[V]) Contains(key string) bool {
	return t.find(key) != nil
}

// Get returns the value bound to key.
func (t *Table[V]) Get(key string) (v V, ok bool) {
	if b := t.find(key); b != nil {
		return b.v, true
	}
	return
}

// nextBucketCount walks the schedule until bindings fits under the
// bucket count, or the schedule is exhausted.
func nextBucketCount(buckets, bindings int) int {
	for i := 0; bindings >= buckets && buckets != maxBuckets; i++ {
		buckets = bucketSchedule[i]
	}
	return buckets
}

// rehash relinks every binding into a fresh bucket array of size n.
// Each old chain is walked head to tail and its bindings are prepended
// to their new buckets, so intra-bucket order reverses across a
// rehash. No ordering is promised to callers.
func (t *Table[V]) rehash(n int) {
	buckets := make([]*binding[V], n)
	for _, b := range t.buckets {
		for b != nil {
			next := b.next
			i := strhash.Hash(b.key) % uint32(n)
			b.next = buckets[i]
			buckets[i] = b
			b = next
		}
	}
	t.buckets = buckets
}

// Put binds key to v and reports whether the insert happened.
//
// Put is insert-only: if key is already present the table is left
// untouched, including the old value, and Put returns false.
// Growth runs before the insert; once the binding count reaches the
// bucket count the table rehashes to the next schedule entry that
// fits, up to the maximum.
func (t *Table[V]) Put(key string, v V) bool {
	if t.find(key) != nil {
		return false
	}
	if n := nextBucketCount(len(t.buckets), t.bindings); n != len(t.buckets) {
		t.rehash(n)
	}
	k := dirtmake.Bytes(len(key), len(key))
	copy(k, key)
	i := strhash.HashStr(key) % uint32(len(t.buckets))
	t.buckets[i] = &binding[V]{key: k, v: v, next: t.buckets[i]}
	t.bindings++
	return true
}

// Remove deletes the binding for key and reports whether it was found.
func (t *Table[V]) Remove(key string) bool {
	i := strhash.HashStr(key) % uint32(len(t.buckets))
	var prev *binding[V]
	for b := t.buckets[i]; b != nil; prev, b = b, b.next {
		if hack.ByteSliceToString(b.key) != key {
			continue
		}
		if prev == nil {
			t.buckets[i] = b.next
		} else {
			prev.next = b.next
		}
		t.bindings--
		b.key, b.next = nil, nil
		return true
	}
	return false
}

// Range calls f once per binding, in bucket index order then chain
// order within a bucket. The key is a no-copy view of table-owned
// bytes and must not be retained after the key is removed. f may
// modify the value through the pointer but must not add or remove
// bindings.
func (t *Table[V]) Range(f func(key string, v *V)) {
	if f == nil {
		panic("symtab: nil visitor")
	}
	for _, b := range t.buckets {
		for ; b != nil; b = b.next {
			f(hack.ByteSliceToString(b.key), &b.v)
		}
	}
}

// Reset drops every binding and shrinks the table back to the minimum
// bucket count. Reset on a nil table is a no-op.
func (t *Table[V]) Reset() {
	if t == nil {
		return
	}
	for i, b := range t.buckets {
		for b != nil {
			next := b.next
			b.key, b.next = nil, nil
			b = next
		}
		t.buckets[i] = nil
	}
	if len(t.buckets) != minBuckets {
		t.buckets = make([]*binding[V], minBuckets)
	}
	t.bindings = 0
}
