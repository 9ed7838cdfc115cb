// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build arm

package shim

// PE_COFF_LOADER_IMAGE_CONTEXT size on AAPCS ILP32 targets, 64-bit
// fields are 8-byte aligned
const contextSize = 64
