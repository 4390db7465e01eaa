// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !linux || !(amd64 || arm64) || cgo

package egl

// System reports ErrUnavailable. The pure Go libEGL binding needs
// Linux or Android on amd64/arm64 built with CGO_ENABLED=0.
func System() (Driver, error) {
	return nil, ErrUnavailable
}
