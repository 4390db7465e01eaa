// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package egl defines the EGL entry points glcontext drives and the
// registry of implementations.
//
// The System driver forwards to libEGL through github.com/gogpu/wgpu's
// pure Go binding (no cgo). Tests and alternative EGL implementations
// (ANGLE, a headless Mesa build) provide their own Driver.
//
// Every Driver method is a synchronous call into the EGL library and is
// subject to EGL's per-thread current-context rules.
package egl

// Driver is the subset of EGL 1.4 used to bootstrap a window context.
//
// Methods mirror the C entry points: failures are reported through the
// returned sentinel or boolean and the detail is available from GetError.
// Driver values are used as map keys and must be comparable.
type Driver interface {
	// GetError returns and clears the calling thread's last error.
	GetError() ErrorCode

	// GetDisplay returns the display for a native display, or NoDisplay.
	GetDisplay(native NativeDisplay) Display

	// Initialize initializes dpy and reports the EGL version.
	Initialize(dpy Display) (major, minor Int, ok bool)

	// Terminate releases every resource associated with dpy.
	Terminate(dpy Display) bool

	// QueryString returns a display string (Vendor, Version, ...).
	QueryString(dpy Display, name Int) string

	// ChooseConfig fills configs with descriptors matching the
	// None-terminated attribs and returns how many were written.
	ChooseConfig(dpy Display, attribs []Int, configs []Config) (n int, ok bool)

	// GetConfigAttrib returns one attribute of cfg.
	GetConfigAttrib(dpy Display, cfg Config, attr Int) (Int, bool)

	// CreateWindowSurface binds a surface to win, or returns NoSurface.
	// attribs may be nil.
	CreateWindowSurface(dpy Display, cfg Config, win NativeWindow, attribs []Int) Surface

	// DestroySurface destroys s.
	DestroySurface(dpy Display, s Surface) bool

	// CreateContext creates a context sharing objects with share (NoContext
	// for none), or returns NoContext.
	CreateContext(dpy Display, cfg Config, share Context, attribs []Int) Context

	// DestroyContext destroys ctx.
	DestroyContext(dpy Display, ctx Context) bool

	// MakeCurrent binds ctx with draw and read surfaces to the calling
	// thread. NoSurface/NoContext releases the binding.
	MakeCurrent(dpy Display, draw, read Surface, ctx Context) bool

	// GetCurrentContext returns the context current on the calling thread.
	GetCurrentContext() Context

	// SwapBuffers posts the back buffer of s.
	SwapBuffers(dpy Display, s Surface) bool

	// GetProcAddress returns the address of a client API or extension
	// function, or 0.
	GetProcAddress(name string) uintptr
}
