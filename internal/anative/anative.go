// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package anative calls into the Android NDK native window API.
package anative

import "errors"

// ErrUnavailable is returned by Open where libandroid cannot be used.
var ErrUnavailable = errors.New("anative: libandroid not available")
