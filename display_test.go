// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext

import (
	"testing"

	"github.com/gogpu/glcontext/egl"
	"github.com/gogpu/glcontext/internal/fakeegl"
)

func TestDisplayRefs(t *testing.T) {
	drv := &fakeegl.Driver{}
	const dpy = egl.Display(0x42)

	acquireDisplay(drv, dpy)
	acquireDisplay(drv, dpy)

	if n := releaseDisplay(drv, dpy, true); n != 1 {
		t.Errorf("first release left %d users, want 1", n)
	}
	if n := releaseDisplay(drv, dpy, false); n != 1 {
		t.Errorf("unacquired release left %d users, want 1", n)
	}
	if n := releaseDisplay(drv, dpy, true); n != 0 {
		t.Errorf("last release left %d users, want 0", n)
	}
	if _, ok := displayRefs[displayKey{drv, dpy}]; ok {
		t.Error("released display still tracked")
	}
	if n := releaseDisplay(drv, dpy, true); n != 0 {
		t.Errorf("extra release left %d users, want 0", n)
	}
}

func TestDisplayRefsPerDriver(t *testing.T) {
	a, b := &fakeegl.Driver{}, &fakeegl.Driver{}
	const dpy = egl.Display(0x43)

	acquireDisplay(a, dpy)
	defer releaseDisplay(a, dpy, true)

	if n := releaseDisplay(b, dpy, false); n != 0 {
		t.Errorf("driver b sees %d users of driver a's display", n)
	}
}

func TestFailedInitDoesNotTerminateSharedDisplay(t *testing.T) {
	drv := &fakeegl.Driver{}
	live := newTestContext(t, drv, DefaultConfig())
	defer live.Destroy()

	drv.FailInitialize = true
	if _, err := New(testWindow, DefaultConfig(), WithDriver(drv)); err == nil {
		t.Fatal("New() succeeded, want initialization failure")
	}
	if drv.Terminated() != 0 {
		t.Errorf("display terminated %d times while a Context is live", drv.Terminated())
	}
}
