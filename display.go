// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext

import (
	"sync"

	"github.com/gogpu/glcontext/egl"
)

// eglGetDisplay(EGL_DEFAULT_DISPLAY) returns the same display to every
// caller and eglTerminate invalidates all objects on it, so the display is
// only terminated when the last Context that initialized it is destroyed.
type displayKey struct {
	drv egl.Driver
	dpy egl.Display
}

var (
	displayMu   sync.Mutex
	displayRefs = make(map[displayKey]int)
)

// acquireDisplay records one more initialized user of dpy.
func acquireDisplay(drv egl.Driver, dpy egl.Display) {
	displayMu.Lock()
	defer displayMu.Unlock()
	displayRefs[displayKey{drv, dpy}]++
}

// releaseDisplay drops the reference taken by acquireDisplay when acquired
// is true and returns how many users of dpy remain. The display may be
// terminated when none remain.
func releaseDisplay(drv egl.Driver, dpy egl.Display, acquired bool) int {
	displayMu.Lock()
	defer displayMu.Unlock()

	key := displayKey{drv, dpy}
	n := displayRefs[key]
	if acquired && n > 0 {
		n--
	}
	if n == 0 {
		delete(displayRefs, key)
		return 0
	}
	displayRefs[key] = n
	return n
}
