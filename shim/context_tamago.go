// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && (amd64 || arm || arm64)

package shim

import (
	"unsafe"

	"github.com/usbarmory/tamago/dma"
)

// newContext reserves loader context scratch storage from the default
// DMA region, keeping it firmware visible regardless of Go runtime
// memory placement. The release function must be invoked on all return
// paths.
func newContext() (ctx *imageContext, release func()) {
	addr, buf := dma.Reserve(int(unsafe.Sizeof(imageContext{})), 8)

	return (*imageContext)(unsafe.Pointer(&buf[0])), func() {
		dma.Release(addr)
	}
}
