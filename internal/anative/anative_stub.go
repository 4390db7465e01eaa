// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !android || !(amd64 || arm64) || cgo

package anative

import "github.com/gogpu/glcontext/egl"

// Formatter is unavailable on this platform.
type Formatter struct{}

// Open reports ErrUnavailable.
func Open() (*Formatter, error) {
	return nil, ErrUnavailable
}

// SetBuffersFormat reports ErrUnavailable.
func (*Formatter) SetBuffersFormat(egl.NativeWindow, int32) error {
	return ErrUnavailable
}
