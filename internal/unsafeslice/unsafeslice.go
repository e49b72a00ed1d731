// Copyright 2023 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package unsafeslice reinterprets slices of one type as another without
// copying.
package unsafeslice

import (
	"reflect"
	"unsafe"
)

const u64Size = 8

// U64ToBytes returns a byte slice referring to the contents of the input
// word slice, in the machine's native byte order.
// SAFETY: the returned byte slice must never be written to, only read.
func U64ToBytes(words []uint64) (b []byte) {
	bh := (*reflect.SliceHeader)(unsafe.Pointer(&b))
	wh := *(*reflect.SliceHeader)(unsafe.Pointer(&words))
	bh.Data = wh.Data
	bh.Len = wh.Len * u64Size
	bh.Cap = wh.Cap * u64Size
	return b
}
