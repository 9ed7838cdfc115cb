// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build 386 || amd64 || arm || arm64

package shim

import (
	"unsafe"

	"github.com/usbarmory/shimlock/efi"
)

// callService invokes the protocol function at fn with up to five
// arguments, using the calling convention shim protocol functions
// follow on the target architecture (cdecl on 386, System V on amd64,
// AAPCS on arm and arm64). The convention is selected at build time
// through the architecture file suffix, defined in call_386.s,
// call_amd64.s, call_arm.s, call_arm64.s.
func callService(fn uintptr, args []uintptr) (status uintptr)

func call(fn uintptr, args []uintptr) efi.Status {
	return efi.Status(callService(fn, args))
}

// These functions help preparing callService arguments, allowing a
// single prototype for all protocol functions.
//
// Obtaining pointers in this fashion is typically unsafe, however
// arguments are converted right before invoking Go assembly on a
// synchronous call, which is identical to typed pointer arguments in
// the callService prototype.

func bufptr(buf []byte) uintptr {
	if len(buf) == 0 {
		return 0
	}

	return uintptr(unsafe.Pointer(&buf[0]))
}

func ptrval(ptr any) uintptr {
	var p unsafe.Pointer

	switch v := ptr.(type) {
	case *imageContext:
		p = unsafe.Pointer(v)
	case *[SHA256DigestSize]byte:
		p = unsafe.Pointer(v)
	case *[SHA1DigestSize]byte:
		p = unsafe.Pointer(v)
	default:
		panic("internal error, invalid ptrval")
	}

	return uintptr(p)
}
