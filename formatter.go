// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext

import (
	"github.com/gogpu/glcontext/egl"
	"github.com/gogpu/glcontext/internal/anative"
)

// WindowFormatter changes the buffer format of a native window.
//
// On Android an ANativeWindow defaults to the format it was created with;
// a surface for a config whose EGL_NATIVE_VISUAL_ID differs is rejected
// with EGL_BAD_MATCH on some drivers. Setting the window format to the
// config's visual first lets such configs bind.
type WindowFormatter interface {
	SetBuffersFormat(win egl.NativeWindow, format int32) error
}

// platformFormatter returns the ANativeWindow formatter, or an error where
// the platform has none.
func platformFormatter() (WindowFormatter, error) {
	f, err := anative.Open()
	if err != nil {
		return nil, err
	}
	return f, nil
}

// applyVisualFormat sets the window format to ec's native visual. Failures
// are logged and the bind is attempted anyway.
func (c *Context) applyVisualFormat(f WindowFormatter, win egl.NativeWindow, ec egl.Config) {
	visual, ok := c.drv.GetConfigAttrib(c.display, ec, egl.NativeVisualID)
	if !ok {
		code := c.drv.GetError()
		c.log.Warn("EGL_NATIVE_VISUAL_ID unavailable", "err", code.String(), "code", hexCode(code))
		return
	}
	if err := f.SetBuffersFormat(win, int32(visual)); err != nil {
		c.log.Warn("failed to set window buffers format", "format", visual, "err", err)
	}
}
