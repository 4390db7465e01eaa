// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build android && (amd64 || arm64) && !cgo

package anative

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"

	"github.com/gogpu/glcontext/egl"
)

var (
	openOnce sync.Once
	openErr  error

	// androidLib is the handle to the loaded libandroid.so library.
	androidLib unsafe.Pointer

	symSetBuffersGeometry unsafe.Pointer
	cifSetBuffersGeometry types.CallInterface
)

// Formatter sets ANativeWindow buffer geometry.
type Formatter struct{}

// Open loads libandroid.so and resolves ANativeWindow_setBuffersGeometry.
// Loading happens once; a failure is sticky.
func Open() (*Formatter, error) {
	openOnce.Do(func() {
		openErr = load()
	})
	if openErr != nil {
		return nil, openErr
	}
	return &Formatter{}, nil
}

func load() error {
	var err error
	androidLib, err = ffi.LoadLibrary("libandroid.so")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	symSetBuffersGeometry, err = ffi.GetSymbol(androidLib, "ANativeWindow_setBuffersGeometry")
	if err != nil {
		return fmt.Errorf("ANativeWindow_setBuffersGeometry not found: %w", err)
	}

	// int32_t ANativeWindow_setBuffersGeometry(ANativeWindow*, int32_t width, int32_t height, int32_t format)
	return ffi.PrepareCallInterface(&cifSetBuffersGeometry, types.DefaultCall,
		types.SInt32TypeDescriptor,
		[]*types.TypeDescriptor{
			types.PointerTypeDescriptor,
			types.SInt32TypeDescriptor,
			types.SInt32TypeDescriptor,
			types.SInt32TypeDescriptor,
		})
}

// SetBuffersFormat changes the pixel format of win's buffers, keeping the
// window's own size (width and height 0).
func (*Formatter) SetBuffersFormat(win egl.NativeWindow, format int32) error {
	var (
		result int32
		ptr    = uintptr(win)
		width  int32
		height int32
	)
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&ptr),
		unsafe.Pointer(&width),
		unsafe.Pointer(&height),
		unsafe.Pointer(&format),
	}
	if err := ffi.CallFunction(&cifSetBuffersGeometry, symSetBuffersGeometry, unsafe.Pointer(&result), args[:]); err != nil {
		return err
	}
	if result < 0 {
		return fmt.Errorf("anative: ANativeWindow_setBuffersGeometry returned %d", result)
	}
	return nil
}
