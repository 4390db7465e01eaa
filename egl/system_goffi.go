// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux && (amd64 || arm64) && !cgo

package egl

import (
	"fmt"
	"sync"

	wegl "github.com/gogpu/wgpu/hal/gles/egl"
)

var (
	systemOnce sync.Once
	systemErr  error
)

func init() {
	Register(DriverSystem, func() Driver {
		d, err := System()
		if err != nil {
			return nil
		}
		return d
	})
}

// System returns the driver backed by the platform libEGL (libEGL.so on
// Android). The library is loaded on first use; a load failure is sticky.
func System() (Driver, error) {
	systemOnce.Do(func() {
		systemErr = wegl.Init()
		if systemErr != nil {
			slogger().Error("egl: failed to load libEGL", "err", systemErr)
			return
		}
		slogger().Debug("egl: libEGL loaded")
	})
	if systemErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, systemErr)
	}
	return systemDriver{}, nil
}

// systemDriver forwards every call to the wgpu EGL binding.
type systemDriver struct{}

func (systemDriver) GetError() ErrorCode {
	return ErrorCode(wegl.GetError())
}

func (systemDriver) GetDisplay(native NativeDisplay) Display {
	return Display(wegl.GetDisplay(wegl.EGLNativeDisplayType(native)))
}

func (systemDriver) Initialize(dpy Display) (major, minor Int, ok bool) {
	var maj, mnr wegl.EGLInt
	if wegl.Initialize(wegl.EGLDisplay(dpy), &maj, &mnr) == wegl.False {
		return 0, 0, false
	}
	return Int(maj), Int(mnr), true
}

func (systemDriver) Terminate(dpy Display) bool {
	return wegl.Terminate(wegl.EGLDisplay(dpy)) != wegl.False
}

func (systemDriver) QueryString(dpy Display, name Int) string {
	return wegl.QueryString(wegl.EGLDisplay(dpy), wegl.EGLInt(name))
}

func (systemDriver) ChooseConfig(dpy Display, attribs []Int, configs []Config) (int, bool) {
	list := toEGLInts(attribs)
	if list == nil {
		return 0, false
	}
	out := make([]wegl.EGLConfig, len(configs))
	var outPtr *wegl.EGLConfig
	if len(out) > 0 {
		outPtr = &out[0]
	}
	var n wegl.EGLInt
	if wegl.ChooseConfig(wegl.EGLDisplay(dpy), &list[0], outPtr, wegl.EGLInt(len(out)), &n) == wegl.False {
		return 0, false
	}
	count := min(int(n), len(configs))
	for i := range count {
		configs[i] = Config(out[i])
	}
	return count, true
}

func (systemDriver) GetConfigAttrib(dpy Display, cfg Config, attr Int) (Int, bool) {
	var v wegl.EGLInt
	if wegl.GetConfigAttrib(wegl.EGLDisplay(dpy), wegl.EGLConfig(cfg), wegl.EGLInt(attr), &v) == wegl.False {
		return 0, false
	}
	return Int(v), true
}

func (systemDriver) CreateWindowSurface(dpy Display, cfg Config, win NativeWindow, attribs []Int) Surface {
	var attribPtr *wegl.EGLInt
	if list := toEGLInts(attribs); list != nil {
		attribPtr = &list[0]
	}
	return Surface(wegl.CreateWindowSurface(wegl.EGLDisplay(dpy), wegl.EGLConfig(cfg), wegl.EGLNativeWindowType(win), attribPtr))
}

func (systemDriver) DestroySurface(dpy Display, s Surface) bool {
	return wegl.DestroySurface(wegl.EGLDisplay(dpy), wegl.EGLSurface(s)) != wegl.False
}

func (systemDriver) CreateContext(dpy Display, cfg Config, share Context, attribs []Int) Context {
	var attribPtr *wegl.EGLInt
	if list := toEGLInts(attribs); list != nil {
		attribPtr = &list[0]
	}
	return Context(wegl.CreateContext(wegl.EGLDisplay(dpy), wegl.EGLConfig(cfg), wegl.EGLContext(share), attribPtr))
}

func (systemDriver) DestroyContext(dpy Display, ctx Context) bool {
	return wegl.DestroyContext(wegl.EGLDisplay(dpy), wegl.EGLContext(ctx)) != wegl.False
}

func (systemDriver) MakeCurrent(dpy Display, draw, read Surface, ctx Context) bool {
	return wegl.MakeCurrent(wegl.EGLDisplay(dpy), wegl.EGLSurface(draw), wegl.EGLSurface(read), wegl.EGLContext(ctx)) != wegl.False
}

func (systemDriver) GetCurrentContext() Context {
	return Context(wegl.GetCurrentContext())
}

func (systemDriver) SwapBuffers(dpy Display, s Surface) bool {
	return wegl.SwapBuffers(wegl.EGLDisplay(dpy), wegl.EGLSurface(s)) != wegl.False
}

func (systemDriver) GetProcAddress(name string) uintptr {
	return wegl.GetProcAddress(name)
}

// toEGLInts copies an attribute list into the binding's element type.
// It returns nil for an empty list.
func toEGLInts(attribs []Int) []wegl.EGLInt {
	if len(attribs) == 0 {
		return nil
	}
	out := make([]wegl.EGLInt, len(attribs))
	for i, a := range attribs {
		out[i] = wegl.EGLInt(a)
	}
	return out
}
