// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext

import (
	"fmt"

	"github.com/gogpu/glcontext/egl"
)

// bindSurface tries the candidates in order and keeps the first window
// surface the driver accepts. A config the window cannot use only costs
// one attempt.
func (c *Context) bindSurface(candidates []egl.Config, win egl.NativeWindow, f WindowFormatter) (egl.Config, error) {
	for i, ec := range candidates {
		if f != nil {
			c.applyVisualFormat(f, win, ec)
		}

		s := c.drv.CreateWindowSurface(c.display, ec, win, nil)
		if s == egl.NoSurface {
			code := c.drv.GetError()
			c.log.Error("eglCreateWindowSurface failed",
				"candidate", i,
				"err", egl.Classify(code, egl.SurfaceErrors),
				"code", hexCode(code),
			)
			continue
		}

		c.surface = s
		c.log.Debug("window surface created", "candidate", i)
		return ec, nil
	}

	c.log.Error("all configs failed", "tried", len(candidates))
	return 0, creationFailed("all configs failed")
}

// createContext creates the rendering context on ec, the config the
// surface was bound with.
func (c *Context) createContext(ec egl.Config, cfg Config) error {
	share := egl.NoContext
	if cfg.Share != nil {
		share = cfg.Share.context
	}

	c.context = c.drv.CreateContext(c.display, ec, share, cfg.contextAttribs())
	if c.context == egl.NoContext {
		code := c.drv.GetError()
		c.log.Error("eglCreateContext failed", "err", code.String(), "code", hexCode(code))
		return creationFailed("context creation failed")
	}

	c.config = ec
	c.info = c.describeConfig(ec)
	c.log.Info("EGL context created",
		"version", fmt.Sprintf("%d.%d", cfg.Version.Major, cfg.Version.Minor),
		"shared", share != egl.NoContext,
		"config", c.info.String(),
	)
	return nil
}
