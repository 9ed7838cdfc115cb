// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tamago && (386 || amd64 || arm || arm64)

package shim

// newContext allocates loader context scratch storage, its address is
// taken right before the synchronous protocol calls (see ptrval). The
// release function is a no-op, storage is reclaimed by the garbage
// collector.
func newContext() (ctx *imageContext, release func()) {
	return &imageContext{}, func() {}
}
