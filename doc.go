// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glcontext creates OpenGL ES contexts on Android native windows
// through EGL.
//
// # Overview
//
// New takes a native window handle and a Config and returns a Context that
// is already current on the calling thread:
//
//	runtime.LockOSThread()
//	defer runtime.UnlockOSThread()
//
//	ctx, err := glcontext.New(window.Handle(window.AndroidNdk(win)), glcontext.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer ctx.Destroy()
//
//	gl.Init(ctx.GetProcAddress) // any GL loader
//	for frame := range frames {
//	    draw(frame)
//	    _ = ctx.SwapBuffers()
//	}
//
// # Negotiation
//
// New opens the default EGL display, asks eglChooseConfig for up to 64
// window-renderable configs matching the requested sizes, then tries the
// configs in the driver's order until eglCreateWindowSurface accepts one.
// The context is created on that same config, optionally sharing objects
// with Config.Share.
//
// # Errors
//
// New returns ErrAPINotSupported or ErrInvalidWindowHandle before touching
// the driver, and an error wrapping ErrCreationFailed for any EGL failure.
// EGL error codes are logged through the package logger (see SetLogger).
// MakeCurrent, MakeNotCurrent and SwapBuffers are best effort: failures are
// logged and returned as *DriverError for callers that want to react.
//
// # Drivers
//
// By default the egl package's "system" driver is used, which loads
// libEGL.so with github.com/gogpu/wgpu's pure Go binding (build with
// CGO_ENABLED=0). WithDriver injects any other egl.Driver.
package glcontext
