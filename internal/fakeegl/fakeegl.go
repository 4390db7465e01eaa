// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fakeegl provides a scripted in-memory egl.Driver that records
// every call, for tests that must observe call order without a GPU.
package fakeegl

import (
	"maps"
	"slices"

	"github.com/gogpu/glcontext/egl"
)

// DisplayHandle is the display returned by GetDisplay.
const DisplayHandle egl.Display = 0xD15

// Call is one recorded driver call. Only the fields relevant to Op are set.
type Call struct {
	Op      string
	Display egl.Display
	Config  egl.Config
	Surface egl.Surface
	Context egl.Context
	Share   egl.Context
	Attribs []egl.Int
	Name    string

	// Capacity is the length of the config buffer passed to ChooseConfig.
	Capacity int
}

// Driver is a scripted egl.Driver. Configure the exported fields before
// use; the zero value has one config (0x1) and succeeds everywhere.
type Driver struct {
	// NoDisplay makes GetDisplay return egl.NoDisplay.
	NoDisplay bool
	// FailInitialize makes Initialize fail with EGL_NOT_INITIALIZED.
	FailInitialize bool
	// FailChooseConfig makes ChooseConfig fail with EGL_BAD_ATTRIBUTE.
	FailChooseConfig bool
	// Configs are returned by ChooseConfig in order. Nil means {0x1}.
	Configs []egl.Config
	// SurfaceErrors maps configs that cannot be bound to the error raised.
	SurfaceErrors map[egl.Config]egl.ErrorCode
	// FailContext makes CreateContext fail with EGL_BAD_MATCH.
	FailContext bool
	// FailMakeCurrent makes MakeCurrent fail with EGL_BAD_ACCESS.
	FailMakeCurrent bool
	// SwapError, when non-zero, makes SwapBuffers fail with that code.
	SwapError egl.ErrorCode
	// Procs maps symbol names to addresses.
	Procs map[string]uintptr
	// Attribs maps config attributes returned by GetConfigAttrib.
	Attribs map[egl.Config]map[egl.Int]egl.Int
	// Major and Minor are reported by Initialize. Zero means 1.4.
	Major, Minor egl.Int

	calls       []Call
	lastErr     egl.ErrorCode
	initialized bool
	next        uintptr
	surfaces    map[egl.Surface]bool
	contexts    map[egl.Context]bool
	current     egl.Context
	terminated  int
}

var _ egl.Driver = (*Driver)(nil)

func (d *Driver) record(c Call) {
	d.calls = append(d.calls, c)
}

func (d *Driver) fail(code egl.ErrorCode) {
	d.lastErr = code
}

func (d *Driver) handle() uintptr {
	d.next++
	return 0x100 + d.next
}

// GetError returns and clears the last error.
func (d *Driver) GetError() egl.ErrorCode {
	code := d.lastErr
	d.lastErr = egl.Success
	if code == 0 {
		code = egl.Success
	}
	return code
}

// GetDisplay returns DisplayHandle unless NoDisplay is set.
func (d *Driver) GetDisplay(native egl.NativeDisplay) egl.Display {
	d.record(Call{Op: "eglGetDisplay"})
	if d.NoDisplay {
		return egl.NoDisplay
	}
	return DisplayHandle
}

// Initialize marks the display initialized.
func (d *Driver) Initialize(dpy egl.Display) (major, minor egl.Int, ok bool) {
	d.record(Call{Op: "eglInitialize", Display: dpy})
	if d.FailInitialize || dpy != DisplayHandle {
		d.fail(egl.NotInitialized)
		return 0, 0, false
	}
	d.initialized = true
	if d.Major == 0 {
		return 1, 4, true
	}
	return d.Major, d.Minor, true
}

// Terminate releases every surface and context.
func (d *Driver) Terminate(dpy egl.Display) bool {
	d.record(Call{Op: "eglTerminate", Display: dpy})
	d.terminated++
	d.initialized = false
	clear(d.surfaces)
	clear(d.contexts)
	d.current = egl.NoContext
	return true
}

// QueryString returns fixed strings.
func (d *Driver) QueryString(dpy egl.Display, name egl.Int) string {
	switch name {
	case egl.Vendor:
		return "fakeegl"
	case egl.Version:
		return "1.4 fakeegl"
	}
	return ""
}

// ChooseConfig copies Configs into configs.
func (d *Driver) ChooseConfig(dpy egl.Display, attribs []egl.Int, configs []egl.Config) (int, bool) {
	d.record(Call{Op: "eglChooseConfig", Display: dpy, Attribs: slices.Clone(attribs), Capacity: len(configs)})
	if d.FailChooseConfig || !d.initialized {
		d.fail(egl.BadAttribute)
		return 0, false
	}
	src := d.Configs
	if src == nil {
		src = []egl.Config{0x1}
	}
	return copy(configs, src), true
}

// GetConfigAttrib returns the scripted attribute value, or 0.
func (d *Driver) GetConfigAttrib(dpy egl.Display, cfg egl.Config, attr egl.Int) (egl.Int, bool) {
	if !d.initialized {
		d.fail(egl.NotInitialized)
		return 0, false
	}
	return d.Attribs[cfg][attr], true
}

// CreateWindowSurface binds unless cfg is listed in SurfaceErrors.
func (d *Driver) CreateWindowSurface(dpy egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Int) egl.Surface {
	d.record(Call{Op: "eglCreateWindowSurface", Display: dpy, Config: cfg})
	if code, bad := d.SurfaceErrors[cfg]; bad {
		d.fail(code)
		return egl.NoSurface
	}
	if !d.initialized {
		d.fail(egl.NotInitialized)
		return egl.NoSurface
	}
	s := egl.Surface(d.handle())
	if d.surfaces == nil {
		d.surfaces = make(map[egl.Surface]bool)
	}
	d.surfaces[s] = true
	return s
}

// DestroySurface forgets s.
func (d *Driver) DestroySurface(dpy egl.Display, s egl.Surface) bool {
	d.record(Call{Op: "eglDestroySurface", Display: dpy, Surface: s})
	if !d.surfaces[s] {
		d.fail(egl.BadSurface)
		return false
	}
	delete(d.surfaces, s)
	return true
}

// CreateContext creates a context unless FailContext is set.
func (d *Driver) CreateContext(dpy egl.Display, cfg egl.Config, share egl.Context, attribs []egl.Int) egl.Context {
	d.record(Call{Op: "eglCreateContext", Display: dpy, Config: cfg, Share: share, Attribs: slices.Clone(attribs)})
	if d.FailContext {
		d.fail(egl.BadMatch)
		return egl.NoContext
	}
	if share != egl.NoContext && !d.contexts[share] {
		d.fail(egl.BadContext)
		return egl.NoContext
	}
	c := egl.Context(d.handle())
	if d.contexts == nil {
		d.contexts = make(map[egl.Context]bool)
	}
	d.contexts[c] = true
	return c
}

// DestroyContext forgets ctx.
func (d *Driver) DestroyContext(dpy egl.Display, ctx egl.Context) bool {
	d.record(Call{Op: "eglDestroyContext", Display: dpy, Context: ctx})
	if !d.contexts[ctx] {
		d.fail(egl.BadContext)
		return false
	}
	delete(d.contexts, ctx)
	if d.current == ctx {
		d.current = egl.NoContext
	}
	return true
}

// MakeCurrent records the binding.
func (d *Driver) MakeCurrent(dpy egl.Display, draw, read egl.Surface, ctx egl.Context) bool {
	d.record(Call{Op: "eglMakeCurrent", Display: dpy, Surface: draw, Context: ctx})
	if d.FailMakeCurrent {
		d.fail(egl.BadAccess)
		return false
	}
	if !d.initialized {
		d.fail(egl.NotInitialized)
		return false
	}
	if ctx != egl.NoContext && !d.contexts[ctx] {
		d.fail(egl.BadContext)
		return false
	}
	d.current = ctx
	return true
}

// GetCurrentContext returns the bound context.
func (d *Driver) GetCurrentContext() egl.Context {
	return d.current
}

// SwapBuffers fails with SwapError when set.
func (d *Driver) SwapBuffers(dpy egl.Display, s egl.Surface) bool {
	d.record(Call{Op: "eglSwapBuffers", Display: dpy, Surface: s})
	if d.SwapError != 0 {
		d.fail(d.SwapError)
		return false
	}
	if !d.surfaces[s] {
		d.fail(egl.BadSurface)
		return false
	}
	return true
}

// GetProcAddress looks name up in Procs.
func (d *Driver) GetProcAddress(name string) uintptr {
	d.record(Call{Op: "eglGetProcAddress", Name: name})
	return d.Procs[name]
}

// Calls returns every recorded call in order.
func (d *Driver) Calls() []Call {
	return slices.Clone(d.calls)
}

// Ops returns the recorded operation names in order.
func (d *Driver) Ops() []string {
	ops := make([]string, len(d.calls))
	for i, c := range d.calls {
		ops[i] = c.Op
	}
	return ops
}

// CallsOf returns the recorded calls of one operation.
func (d *Driver) CallsOf(op string) []Call {
	var out []Call
	for _, c := range d.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears the call log.
func (d *Driver) Reset() {
	d.calls = nil
}

// LiveSurfaces returns the surfaces not yet destroyed.
func (d *Driver) LiveSurfaces() []egl.Surface {
	return slices.Sorted(maps.Keys(d.surfaces))
}

// LiveContexts returns the contexts not yet destroyed.
func (d *Driver) LiveContexts() []egl.Context {
	return slices.Sorted(maps.Keys(d.contexts))
}

// Terminated returns how many times eglTerminate was called.
func (d *Driver) Terminated() int {
	return d.terminated
}
