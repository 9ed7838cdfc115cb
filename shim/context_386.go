// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build 386

package shim

// PE_COFF_LOADER_IMAGE_CONTEXT size on System V i386 targets, 64-bit
// fields are 4-byte aligned
const contextSize = 60
