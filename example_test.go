// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext_test

import (
	"errors"
	"fmt"

	"github.com/gogpu/glcontext"
	"github.com/gogpu/glcontext/internal/fakeegl"
	"github.com/gogpu/glcontext/window"
)

func ExampleNew() {
	// A real application passes the ANativeWindow* from its activity and
	// uses the default driver.
	win := window.Handle(window.AndroidNdk(0x7f00a000))

	ctx, err := glcontext.New(win, glcontext.DefaultConfig(), glcontext.WithDriver(&fakeegl.Driver{}))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer ctx.Destroy()

	major, minor := ctx.Version()
	fmt.Printf("EGL %d.%d, current: %v\n", major, minor, ctx.IsCurrent())
	// Output: EGL 1.4, current: true
}

func ExampleNew_unsupportedAPI() {
	cfg := glcontext.DefaultConfig()
	cfg.API = glcontext.APIGL

	_, err := glcontext.New(window.Handle(window.AndroidNdk(0x7f00a000)), cfg)
	fmt.Println(errors.Is(err, glcontext.ErrAPINotSupported))
	// Output: true
}
