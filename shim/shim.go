// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build 386 || amd64 || arm || arm64

// Package shim implements access to the Shim Lock protocol, installed
// by the shim first-stage bootloader (https://github.com/rhboot/shim)
// to let subsequent boot stages validate executable images, under UEFI
// Secure Boot, against the certificate embedded in shim.
//
// The protocol is not part of the UEFI specification, its interface
// layout and calling conventions follow the shim implementation.
//
// This package is only meant to be used with `GOOS=tamago` as
// supported by the TamaGo framework for bare metal Go, see
// https://github.com/usbarmory/tamago.
package shim

import (
	"errors"
	"math"
	"unsafe"

	"github.com/usbarmory/shimlock/efi"
)

const (
	// SHA256DigestSize is the length of an Authenticode SHA-256 digest.
	SHA256DigestSize = 32
	// SHA1DigestSize is the length of an Authenticode SHA-1 digest.
	SHA1DigestSize = 20
)

// GUID is the Shim Lock protocol identifier.
var GUID = efi.GUID{
	Data1: 0x605dab50,
	Data2: 0xe046,
	Data3: 0x4300,
	Data4: [8]byte{0xab, 0xb6, 0x3d, 0xd8, 0x10, 0xdd, 0x8b, 0x23},
}

// Hashes represents the Authenticode digests of a PE/COFF executable
// image, as computed by the Shim Lock protocol.
//
// Its contents are meaningful only after a successful Hash call.
type Hashes struct {
	// SHA256 is the Authenticode SHA-256 digest.
	SHA256 [SHA256DigestSize]byte
	// SHA1 is the Authenticode SHA-1 digest.
	SHA1 [SHA1DigestSize]byte
}

// SHIM_LOCK interface layout, field order and widths are part of the
// firmware contract (shim, SHIM_LOCK GUID protocol).
type protocol struct {
	Verify  uintptr
	Hash    uintptr
	Context uintptr
}

// Lock represents a Shim Lock protocol instance.
//
// The underlying firmware functions are not documented as reentrant, a
// Lock must not be used concurrently.
type Lock struct {
	verify  uintptr
	hash    uintptr
	context uintptr

	// foreign call dispatcher, overridden in tests
	call func(fn uintptr, args []uintptr) efi.Status
}

// Init initializes a Shim Lock protocol instance from its interface
// address, as returned by the protocol location mechanism of the
// caller (e.g. EFI Boot Services LocateProtocol).
//
// The interface memory remains firmware owned, its function pointers
// are only read, never written.
func Init(addr uintptr) (*Lock, error) {
	if addr == 0 {
		return nil, errors.New("invalid protocol address")
	}

	p := (*protocol)(unsafe.Pointer(addr))

	return &Lock{
		verify:  p.Verify,
		hash:    p.Hash,
		context: p.Context,
		call:    call,
	}, nil
}

// Verify checks that buf, a PE/COFF executable image, is signed by a
// certificate trusted by shim.
//
// The buffer length must be representable in the protocol size
// argument (UINT32), larger buffers return EFI_BAD_BUFFER_SIZE without
// invoking the protocol.
//
// A nil return indicates that the image signature chains to a trusted
// certificate, any other outcome is returned as the protocol status
// code, the acceptance policy is left to the caller.
func (l *Lock) Verify(buf []byte) error {
	size, err := bufferSize(buf)

	if err != nil {
		return err
	}

	return l.call(l.verify, []uintptr{bufptr(buf), size}).Err()
}

// Hash computes the Authenticode SHA-256 and SHA-1 digests of buf, a
// PE/COFF executable image, filling hashes on success.
//
// The protocol requires two ordered calls, the first builds the image
// loader context which the second consumes to compute the digests. A
// context failure (e.g. malformed image) is returned without
// attempting the digest computation. After any error the hashes
// contents are unspecified and must not be used.
//
// The same buffer length constraint as Verify applies.
func (l *Lock) Hash(buf []byte, hashes *Hashes) error {
	if hashes == nil {
		return errors.New("invalid hashes pointer")
	}

	size, err := bufferSize(buf)

	if err != nil {
		return err
	}

	ctx, release := newContext()
	defer release()

	if err = l.call(l.context, []uintptr{bufptr(buf), size, ptrval(ctx)}).Err(); err != nil {
		return err
	}

	return l.call(l.hash, []uintptr{bufptr(buf), size, ptrval(ctx), ptrval(&hashes.SHA256), ptrval(&hashes.SHA1)}).Err()
}

// bufferSize checks that the image length fits the protocol UINT32
// size argument.
func bufferSize(buf []byte) (uintptr, error) {
	if uint64(len(buf)) > math.MaxUint32 {
		return 0, efi.BadBufferSize
	}

	return uintptr(len(buf)), nil
}
