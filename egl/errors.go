// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import (
	"errors"
	"slices"
)

// ErrUnavailable is returned when the platform EGL library cannot be loaded.
var ErrUnavailable = errors.New("egl: library not available")

// ErrorCode is a value returned by eglGetError.
type ErrorCode Int

// Error codes.
const (
	Success           ErrorCode = 0x3000
	NotInitialized    ErrorCode = 0x3001
	BadAccess         ErrorCode = 0x3002
	BadAlloc          ErrorCode = 0x3003
	BadAttribute      ErrorCode = 0x3004
	BadConfig         ErrorCode = 0x3005
	BadContext        ErrorCode = 0x3006
	BadCurrentSurface ErrorCode = 0x3007
	BadDisplay        ErrorCode = 0x3008
	BadMatch          ErrorCode = 0x3009
	BadNativePixmap   ErrorCode = 0x300A
	BadNativeWindow   ErrorCode = 0x300B
	BadParameter      ErrorCode = 0x300C
	BadSurface        ErrorCode = 0x300D
	ContextLost       ErrorCode = 0x300E
)

var errorNames = map[ErrorCode]string{
	Success:           "EGL_SUCCESS",
	NotInitialized:    "EGL_NOT_INITIALIZED",
	BadAccess:         "EGL_BAD_ACCESS",
	BadAlloc:          "EGL_BAD_ALLOC",
	BadAttribute:      "EGL_BAD_ATTRIBUTE",
	BadConfig:         "EGL_BAD_CONFIG",
	BadContext:        "EGL_BAD_CONTEXT",
	BadCurrentSurface: "EGL_BAD_CURRENT_SURFACE",
	BadDisplay:        "EGL_BAD_DISPLAY",
	BadMatch:          "EGL_BAD_MATCH",
	BadNativePixmap:   "EGL_BAD_NATIVE_PIXMAP",
	BadNativeWindow:   "EGL_BAD_NATIVE_WINDOW",
	BadParameter:      "EGL_BAD_PARAMETER",
	BadSurface:        "EGL_BAD_SURFACE",
	ContextLost:       "EGL_CONTEXT_LOST",
}

// String returns the EGL name of the code, or "Other".
func (c ErrorCode) String() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return "Other"
}

// Errors eglCreateWindowSurface is documented to raise.
var SurfaceErrors = []ErrorCode{
	BadDisplay, NotInitialized, BadConfig, BadNativeWindow,
	BadAttribute, BadAlloc, BadMatch,
}

// Errors eglSwapBuffers is documented to raise.
var SwapErrors = []ErrorCode{
	BadDisplay, NotInitialized, BadSurface, ContextLost,
}

// Classify names c if it is one of expected and returns "Other" otherwise.
func Classify(c ErrorCode, expected []ErrorCode) string {
	if slices.Contains(expected, c) {
		return c.String()
	}
	return "Other"
}
