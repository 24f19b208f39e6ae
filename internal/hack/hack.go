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

// Package hack contains unsafe conversions shared inside this module.
package hack

import "unsafe"

// ByteSliceToString converts b to a string without copy.
// The result aliases b, so b must not be modified while the string is
// in use.
func ByteSliceToString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}
