// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext

import (
	"log/slog"
	"strings"
	"unsafe"

	"github.com/gogpu/glcontext/egl"
	"github.com/gogpu/glcontext/window"
)

// Context is an OpenGL ES context bound to a native window surface.
//
// A Context owns its EGL display reference, window surface and rendering
// context. It is not safe for concurrent use: EGL binds a current context
// to an OS thread, so callers normally create, use and destroy a Context
// on one goroutine locked with runtime.LockOSThread.
type Context struct {
	drv egl.Driver
	log *slog.Logger

	display egl.Display
	surface egl.Surface
	context egl.Context

	config egl.Config
	info   ConfigInfo

	major, minor int

	// acquired is set once the display reference is counted.
	acquired  bool
	destroyed bool
}

// New creates an OpenGL ES context for the window of p and makes it
// current on the calling thread.
//
// New fails with ErrAPINotSupported when cfg.API is not APIGLES and with
// ErrInvalidWindowHandle when p does not carry a non-null Android NDK
// window; neither calls the driver. Any driver failure returns an error
// wrapping ErrCreationFailed after everything created so far is released.
func New(p window.Provider, cfg Config, opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		log = Logger()
	}

	if cfg.API != APIGLES {
		log.Error("requested API is not supported", "api", cfg.API.String())
		return nil, ErrAPINotSupported
	}

	win, err := nativeWindow(log, p)
	if err != nil {
		return nil, err
	}

	drv := o.driver
	if drv == nil {
		drv = egl.Default()
	}
	if drv == nil {
		log.Error("no EGL driver available", "registered", egl.Available())
		return nil, creationFailed("no EGL driver")
	}

	if s := cfg.Share; s != nil && (s.destroyed || s.drv != drv) {
		log.Error("share context is destroyed or uses another driver")
		return nil, creationFailed("invalid share context")
	}

	formatter := o.formatter
	if formatter == nil && o.nativeVisual {
		f, err := platformFormatter()
		if err != nil {
			log.Warn("native visual format not applied", "err", err)
		} else {
			formatter = f
		}
	}

	c := &Context{drv: drv, log: log}
	if err := c.create(win, cfg, formatter); err != nil {
		c.teardown()
		return nil, err
	}

	_ = c.MakeCurrent()
	return c, nil
}

// create runs display negotiation, surface binding and context creation.
// On error the caller tears down whatever was created.
func (c *Context) create(win egl.NativeWindow, cfg Config, f WindowFormatter) error {
	if err := c.openDisplay(); err != nil {
		return err
	}

	candidates, err := c.chooseConfigs(cfg)
	if err != nil {
		return err
	}

	ec, err := c.bindSurface(candidates, win, f)
	if err != nil {
		return err
	}

	return c.createContext(ec, cfg)
}

// MakeCurrent binds the context and its surface (as draw and read surface)
// to the calling thread. A driver failure is logged and returned as a
// *DriverError.
func (c *Context) MakeCurrent() error {
	if c.destroyed {
		return ErrDestroyed
	}
	if !c.drv.MakeCurrent(c.display, c.surface, c.surface, c.context) {
		return c.driverError("eglMakeCurrent", "make_current", nil)
	}
	return nil
}

// MakeNotCurrent releases the calling thread's current context on the
// context's display.
func (c *Context) MakeNotCurrent() error {
	if c.destroyed {
		return ErrDestroyed
	}
	return c.makeNotCurrent()
}

func (c *Context) makeNotCurrent() error {
	if !c.drv.MakeCurrent(c.display, egl.NoSurface, egl.NoSurface, egl.NoContext) {
		return c.driverError("eglMakeCurrent", "make_not_current", nil)
	}
	return nil
}

// IsCurrent reports whether the context is current on the calling thread.
func (c *Context) IsCurrent() bool {
	if c.destroyed || c.context == egl.NoContext {
		return false
	}
	return c.drv.GetCurrentContext() == c.context
}

// GetProcAddress returns the address of an OpenGL ES or EGL extension
// function, or nil when the driver does not know name. The result is
// meant for a GL function loader.
//
// A name containing a NUL byte cannot be passed to the driver and yields
// nil.
func (c *Context) GetProcAddress(name string) unsafe.Pointer {
	if strings.IndexByte(name, 0) >= 0 {
		c.log.Error("symbol name contains NUL", "name", name)
		return nil
	}
	//nolint:govet // eglGetProcAddress returns a C function address
	return unsafe.Pointer(c.drv.GetProcAddress(name))
}

// SwapBuffers presents the surface's back buffer. A driver failure is
// logged with its classification (EGL_BAD_SURFACE, EGL_CONTEXT_LOST, ...)
// and returned as a *DriverError; the Context stays usable.
func (c *Context) SwapBuffers() error {
	if c.destroyed {
		return ErrDestroyed
	}
	if !c.drv.SwapBuffers(c.display, c.surface) {
		return c.driverError("eglSwapBuffers", "swap_buffers", egl.SwapErrors)
	}
	return nil
}

// Config returns the driver's description of the chosen configuration.
func (c *Context) Config() ConfigInfo {
	return c.info
}

// Version returns the EGL version reported when the display was
// initialized.
func (c *Context) Version() (major, minor int) {
	return c.major, c.minor
}

// Destroy releases the context, its surface and its display reference, in
// that order after unbinding the thread's current context. Destroy is
// idempotent; driver failures are logged only.
//
// Destroying a Context used as Config.Share by a live Context is a caller
// error.
func (c *Context) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.log.Info("destroying EGL context")
	c.teardown()
}

// teardown unbinds, destroys the surface, destroys the context and
// releases the display, skipping whatever was never created. It is used
// by Destroy and by failed construction.
func (c *Context) teardown() {
	if c.display == egl.NoDisplay {
		return
	}

	_ = c.makeNotCurrent()

	if c.surface != egl.NoSurface {
		c.log.Debug("eglDestroySurface")
		if !c.drv.DestroySurface(c.display, c.surface) {
			_ = c.driverError("eglDestroySurface", "destroy", nil)
		}
		c.surface = egl.NoSurface
	}

	if c.context != egl.NoContext {
		c.log.Debug("eglDestroyContext")
		if !c.drv.DestroyContext(c.display, c.context) {
			_ = c.driverError("eglDestroyContext", "destroy", nil)
		}
		c.context = egl.NoContext
	}

	if users := releaseDisplay(c.drv, c.display, c.acquired); users > 0 {
		c.log.Debug("display still in use, not terminating", "users", users)
	} else {
		c.log.Debug("eglTerminate")
		if !c.drv.Terminate(c.display) {
			_ = c.driverError("eglTerminate", "destroy", nil)
		}
	}
	c.acquired = false
	c.display = egl.NoDisplay
}

// driverError reads the pending EGL error, logs it and returns it as a
// *DriverError. expected limits the classification to the entry point's
// documented errors; nil names every known code.
func (c *Context) driverError(op, in string, expected []egl.ErrorCode) error {
	code := c.drv.GetError()
	class := code.String()
	if expected != nil {
		class = egl.Classify(code, expected)
	}
	c.log.Error(op+" failed", "in", in, "err", class, "code", hexCode(code))
	return &DriverError{Op: op, Code: code, Class: class}
}
