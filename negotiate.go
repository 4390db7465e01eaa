// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/glcontext/egl"
)

// openDisplay opens and initializes the default display.
func (c *Context) openDisplay() error {
	c.display = c.drv.GetDisplay(egl.DefaultDisplay)
	if c.display == egl.NoDisplay {
		c.log.Error("eglGetDisplay returned EGL_NO_DISPLAY")
		return creationFailed("no display")
	}

	major, minor, ok := c.drv.Initialize(c.display)
	if !ok {
		code := c.drv.GetError()
		c.log.Error("eglInitialize failed", "err", code.String(), "code", hexCode(code))
		return creationFailed("display initialization failed")
	}
	acquireDisplay(c.drv, c.display)
	c.acquired = true
	c.major, c.minor = int(major), int(minor)

	c.log.Info("initialized EGL", "version", fmt.Sprintf("%d.%d", major, minor))
	c.log.Debug("EGL display",
		"vendor", c.drv.QueryString(c.display, egl.Vendor),
		"version", c.drv.QueryString(c.display, egl.Version),
	)
	return nil
}

// chooseConfigs returns up to egl.MaxConfigs configs matching cfg, in the
// driver's preference order.
func (c *Context) chooseConfigs(cfg Config) ([]egl.Config, error) {
	configs := make([]egl.Config, egl.MaxConfigs)
	n, ok := c.drv.ChooseConfig(c.display, cfg.configAttribs(), configs)
	if !ok || n < 0 {
		code := c.drv.GetError()
		c.log.Error("eglChooseConfig failed", "err", code.String(), "code", hexCode(code), "count", n)
		return nil, creationFailed("config selection failed")
	}
	if n > len(configs) {
		c.log.Warn("eglChooseConfig reported more configs than requested", "count", n, "capacity", len(configs))
		n = len(configs)
	}
	if n == 0 {
		c.log.Error("eglChooseConfig returned 0 configs")
		return nil, creationFailed("no matching config")
	}
	configs = configs[:n]
	c.log.Info("eglChooseConfig returned configs", "count", n)

	if c.log.Enabled(context.Background(), slog.LevelDebug) {
		for i, ec := range configs {
			info := c.describeConfig(ec)
			c.log.Debug("candidate config", "index", i, "config", info.String())
		}
	}
	return configs, nil
}

// describeConfig queries the attributes of ec. Attributes the driver
// refuses to report are left zero.
func (c *Context) describeConfig(ec egl.Config) ConfigInfo {
	attr := func(a egl.Int) int {
		v, ok := c.drv.GetConfigAttrib(c.display, ec, a)
		if !ok {
			return 0
		}
		return int(v)
	}
	return ConfigInfo{
		ID:             attr(egl.ConfigID),
		RedBits:        attr(egl.RedSize),
		GreenBits:      attr(egl.GreenSize),
		BlueBits:       attr(egl.BlueSize),
		AlphaBits:      attr(egl.AlphaSize),
		DepthBits:      attr(egl.DepthSize),
		StencilBits:    attr(egl.StencilSize),
		Samples:        attr(egl.Samples),
		NativeVisualID: attr(egl.NativeVisualID),
	}
}

// hexCode formats an EGL error code for logs.
func hexCode(code egl.ErrorCode) string {
	return fmt.Sprintf("%#x", int32(code))
}
