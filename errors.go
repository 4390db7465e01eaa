// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext

import (
	"errors"
	"fmt"

	"github.com/gogpu/glcontext/egl"
)

// Package errors.
var (
	// ErrAPINotSupported is returned by New when Config.API is not GLES.
	ErrAPINotSupported = errors.New("glcontext: API not supported")

	// ErrInvalidWindowHandle is returned by New when the window handle is
	// not an Android NDK handle or carries a null window.
	ErrInvalidWindowHandle = errors.New("glcontext: invalid window handle")

	// ErrCreationFailed is returned by New for any driver failure while
	// opening the display, choosing a config, binding the surface or
	// creating the context. The EGL error is logged.
	ErrCreationFailed = errors.New("glcontext: creation failed")

	// ErrDestroyed is returned by operations on a destroyed Context.
	ErrDestroyed = errors.New("glcontext: context destroyed")
)

// DriverError reports a failed best-effort driver call on a live Context.
type DriverError struct {
	// Op is the EGL entry point, e.g. "eglSwapBuffers".
	Op string
	// Code is the value of eglGetError after the failure.
	Code egl.ErrorCode
	// Class is Code's name within the entry point's documented errors,
	// or "Other".
	Class string
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("glcontext: %s failed: %s (%#x)", e.Op, e.Class, int32(e.Code))
}

// creationFailed wraps ErrCreationFailed with the failing stage.
func creationFailed(stage string) error {
	return fmt.Errorf("%w: %s", ErrCreationFailed, stage)
}
