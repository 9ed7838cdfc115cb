// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package efi

import (
	"errors"
	"strings"
	"testing"
)

func TestStatusErr(t *testing.T) {
	if err := Success.Err(); err != nil {
		t.Errorf("Success should not convert to an error, got %v", err)
	}

	for _, tt := range []struct {
		name   string
		status Status
	}{
		{"error class", SecurityViolation},
		{"warning class", WarnStaleData},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Err()

			if err == nil {
				t.Fatal("expected an error")
			}

			if !errors.Is(err, tt.status) {
				t.Errorf("expected %v, got %v", tt.status, err)
			}
		})
	}
}

func TestStatusIsError(t *testing.T) {
	if !SecurityViolation.IsError() {
		t.Error("EFI_SECURITY_VIOLATION should be in the error class")
	}

	if WarnStaleData.IsError() {
		t.Error("EFI_WARN_STALE_DATA should not be in the error class")
	}

	if Success.IsError() {
		t.Error("EFI_SUCCESS should not be in the error class")
	}
}

func TestStatusString(t *testing.T) {
	for _, tt := range []struct {
		status Status
		want   string
	}{
		{Success, "EFI_SUCCESS"},
		{BadBufferSize, "EFI_BAD_BUFFER_SIZE"},
		{SecurityViolation, "EFI_SECURITY_VIOLATION"},
		{WarnResetRequired, "EFI_WARN_RESET_REQUIRED"},
	} {
		if s := tt.status.String(); s != tt.want {
			t.Errorf("expected %q, got %q", tt.want, s)
		}
	}

	// undefined codes render the raw value
	if s := (errBit | 0xff).String(); !strings.HasPrefix(s, "EFI_STATUS(") {
		t.Errorf("unexpected rendering for undefined code, got %q", s)
	}
}

func TestGUIDString(t *testing.T) {
	guid := GUID{
		Data1: 0x605dab50,
		Data2: 0xe046,
		Data3: 0x4300,
		Data4: [8]byte{0xab, 0xb6, 0x3d, 0xd8, 0x10, 0xdd, 0x8b, 0x23},
	}

	if want, s := "605dab50-e046-4300-abb6-3dd810dd8b23", guid.String(); s != want {
		t.Errorf("expected %q, got %q", want, s)
	}
}
