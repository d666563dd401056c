// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "runtime"

// SecureWipe overwrites b with zeros. runtime.KeepAlive keeps the compiler
// from dropping the stores as dead writes.
func SecureWipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
