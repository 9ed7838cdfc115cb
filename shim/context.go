// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build 386 || amd64 || arm || arm64

package shim

// imageContext provides scratch storage for the PE/COFF loader context
// (shim, PE_COFF_LOADER_IMAGE_CONTEXT), built by the protocol context
// function and consumed by its hash function within a single Hash
// invocation, never reused across calls.
//
// The structure is never inspected, only its size and alignment
// matter, the uint64 backing keeps the block 8-byte aligned.
type imageContext [(contextSize + 7) / 8]uint64
