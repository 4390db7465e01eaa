// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext

import (
	"log/slog"

	"github.com/gogpu/glcontext/egl"
)

// Option configures New.
//
// Example:
//
//	// Platform libEGL, package logger
//	ctx, err := glcontext.New(win, glcontext.DefaultConfig())
//
//	// Injected driver and logger
//	ctx, err := glcontext.New(win, cfg,
//	    glcontext.WithDriver(drv),
//	    glcontext.WithLogger(logger),
//	)
type Option func(*options)

// options holds the optional collaborators of New.
type options struct {
	driver       egl.Driver
	logger       *slog.Logger
	formatter    WindowFormatter
	nativeVisual bool
}

// defaultOptions returns the default New options.
func defaultOptions() options {
	return options{
		driver: nil, // egl.Default() when nil
		logger: nil, // Logger() when nil
	}
}

// WithDriver selects the EGL driver instead of egl.Default().
func WithDriver(d egl.Driver) Option {
	return func(o *options) {
		o.driver = d
	}
}

// WithLogger sets the logger of the created Context instead of the
// package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithWindowFormatter makes the builder apply each candidate config's
// EGL_NATIVE_VISUAL_ID to the window through f before binding a surface.
func WithWindowFormatter(f WindowFormatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

// WithNativeVisualFormat is WithWindowFormatter with the platform
// formatter (ANativeWindow_setBuffersGeometry on Android). It is skipped
// with a warning where no platform formatter exists.
func WithNativeVisualFormat() Option {
	return func(o *options) {
		o.nativeVisual = true
	}
}
