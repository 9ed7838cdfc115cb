// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package efi implements basic types for interfacing with UEFI
// firmware protocols following the specifications at:
//
//	https://uefi.org/specs/UEFI/2.10/
package efi

import (
	"fmt"
)

// Status represents an EFI_STATUS code.
//
// EFI_STATUS is an UINTN, its width follows the platform word size.
type Status uintptr

// error class bit
const errBit = ^(^Status(0) >> 1)

// EFI Status Codes, UEFI Specification 2.10, Appendix D
const (
	Success Status = 0

	LoadError           Status = errBit | 0x01
	InvalidParameter    Status = errBit | 0x02
	Unsupported         Status = errBit | 0x03
	BadBufferSize       Status = errBit | 0x04
	BufferTooSmall      Status = errBit | 0x05
	NotReady            Status = errBit | 0x06
	DeviceError         Status = errBit | 0x07
	WriteProtected      Status = errBit | 0x08
	OutOfResources      Status = errBit | 0x09
	VolumeCorrupted     Status = errBit | 0x0a
	VolumeFull          Status = errBit | 0x0b
	NoMedia             Status = errBit | 0x0c
	MediaChanged        Status = errBit | 0x0d
	NotFound            Status = errBit | 0x0e
	AccessDenied        Status = errBit | 0x0f
	NoResponse          Status = errBit | 0x10
	NoMapping           Status = errBit | 0x11
	Timeout             Status = errBit | 0x12
	NotStarted          Status = errBit | 0x13
	AlreadyStarted      Status = errBit | 0x14
	Aborted             Status = errBit | 0x15
	ICMPError           Status = errBit | 0x16
	TFTPError           Status = errBit | 0x17
	ProtocolError       Status = errBit | 0x18
	IncompatibleVersion Status = errBit | 0x19
	SecurityViolation   Status = errBit | 0x1a
	CRCError            Status = errBit | 0x1b
	EndOfMedia          Status = errBit | 0x1c
	EndOfFile           Status = errBit | 0x1f
	InvalidLanguage     Status = errBit | 0x20
	CompromisedData     Status = errBit | 0x21
	IPAddressConflict   Status = errBit | 0x22
	HTTPError           Status = errBit | 0x23
)

// EFI Warning Codes, UEFI Specification 2.10, Appendix D
const (
	WarnUnknownGlyph   Status = 0x01
	WarnDeleteFailure  Status = 0x02
	WarnWriteFailure   Status = 0x03
	WarnBufferTooSmall Status = 0x04
	WarnStaleData      Status = 0x05
	WarnFileSystem     Status = 0x06
	WarnResetRequired  Status = 0x07
)

var statusNames = map[Status]string{
	Success:             "EFI_SUCCESS",
	LoadError:           "EFI_LOAD_ERROR",
	InvalidParameter:    "EFI_INVALID_PARAMETER",
	Unsupported:         "EFI_UNSUPPORTED",
	BadBufferSize:       "EFI_BAD_BUFFER_SIZE",
	BufferTooSmall:      "EFI_BUFFER_TOO_SMALL",
	NotReady:            "EFI_NOT_READY",
	DeviceError:         "EFI_DEVICE_ERROR",
	WriteProtected:      "EFI_WRITE_PROTECTED",
	OutOfResources:      "EFI_OUT_OF_RESOURCES",
	VolumeCorrupted:     "EFI_VOLUME_CORRUPTED",
	VolumeFull:          "EFI_VOLUME_FULL",
	NoMedia:             "EFI_NO_MEDIA",
	MediaChanged:        "EFI_MEDIA_CHANGED",
	NotFound:            "EFI_NOT_FOUND",
	AccessDenied:        "EFI_ACCESS_DENIED",
	NoResponse:          "EFI_NO_RESPONSE",
	NoMapping:           "EFI_NO_MAPPING",
	Timeout:             "EFI_TIMEOUT",
	NotStarted:          "EFI_NOT_STARTED",
	AlreadyStarted:      "EFI_ALREADY_STARTED",
	Aborted:             "EFI_ABORTED",
	ICMPError:           "EFI_ICMP_ERROR",
	TFTPError:           "EFI_TFTP_ERROR",
	ProtocolError:       "EFI_PROTOCOL_ERROR",
	IncompatibleVersion: "EFI_INCOMPATIBLE_VERSION",
	SecurityViolation:   "EFI_SECURITY_VIOLATION",
	CRCError:            "EFI_CRC_ERROR",
	EndOfMedia:          "EFI_END_OF_MEDIA",
	EndOfFile:           "EFI_END_OF_FILE",
	InvalidLanguage:     "EFI_INVALID_LANGUAGE",
	CompromisedData:     "EFI_COMPROMISED_DATA",
	IPAddressConflict:   "EFI_IP_ADDRESS_CONFLICT",
	HTTPError:           "EFI_HTTP_ERROR",

	WarnUnknownGlyph:   "EFI_WARN_UNKNOWN_GLYPH",
	WarnDeleteFailure:  "EFI_WARN_DELETE_FAILURE",
	WarnWriteFailure:   "EFI_WARN_WRITE_FAILURE",
	WarnBufferTooSmall: "EFI_WARN_BUFFER_TOO_SMALL",
	WarnStaleData:      "EFI_WARN_STALE_DATA",
	WarnFileSystem:     "EFI_WARN_FILE_SYSTEM",
	WarnResetRequired:  "EFI_WARN_RESET_REQUIRED",
}

// IsError returns whether the status falls in the error class.
func (s Status) IsError() bool {
	return s&errBit != 0
}

// Err returns nil if the status indicates success, the status itself
// as error otherwise. Warning codes are treated as non-success.
func (s Status) Err() error {
	if s == Success {
		return nil
	}

	return s
}

// Error implements the error interface, the original status code is
// preserved and can be matched with errors.Is.
func (s Status) Error() string {
	return s.String()
}

// String returns the specification name of the status code.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("EFI_STATUS(%#x)", uintptr(s))
}
