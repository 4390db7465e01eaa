// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext

import (
	"log/slog"

	"github.com/gogpu/glcontext/egl"
	"github.com/gogpu/glcontext/window"
)

// nativeWindow extracts the ANativeWindow* from p. It makes no driver
// calls, so a rejected handle never reaches EGL.
func nativeWindow(log *slog.Logger, p window.Provider) (egl.NativeWindow, error) {
	if p == nil {
		log.Error("window handle provider is nil")
		return 0, ErrInvalidWindowHandle
	}

	h := p.RawWindowHandle()
	if h.Kind() != window.KindAndroidNdk {
		log.Error("invalid window handle", "handle", h.String())
		return 0, ErrInvalidWindowHandle
	}
	if h.IsNil() {
		log.Error("window handle is null")
		return 0, ErrInvalidWindowHandle
	}
	return egl.NativeWindow(h.Value()), nil
}
