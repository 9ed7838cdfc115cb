// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build amd64 || arm64

package shim

// PE_COFF_LOADER_IMAGE_CONTEXT size on LP64 targets
const contextSize = 80
