// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window defines the raw native window handle exchanged between a
// windowing layer and glcontext.
//
// A windowing layer (an Android NativeActivity driver, a GLFW wrapper, ...)
// implements Provider and reports the handle variant it owns. glcontext only
// reads the variant and the raw pointer; it never takes ownership of the
// native window.
//
//	type activityWindow struct{ win uintptr } // ANativeWindow*
//
//	func (w activityWindow) RawWindowHandle() window.RawHandle {
//	    return window.AndroidNdk(w.win)
//	}
package window

import "fmt"

// Kind identifies the platform variant of a RawHandle.
type Kind uint8

const (
	// KindUnknown is the zero value and never valid.
	KindUnknown Kind = iota

	// KindAndroidNdk carries an ANativeWindow*.
	KindAndroidNdk

	// KindXlib carries an X11 Window XID.
	KindXlib

	// KindWayland carries a wl_surface*.
	KindWayland

	// KindWin32 carries an HWND.
	KindWin32

	// KindAppKit carries an NSView*.
	KindAppKit

	// KindWeb carries a canvas element id.
	KindWeb
)

// String returns the variant name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindAndroidNdk:
		return "AndroidNdk"
	case KindXlib:
		return "Xlib"
	case KindWayland:
		return "Wayland"
	case KindWin32:
		return "Win32"
	case KindAppKit:
		return "AppKit"
	case KindWeb:
		return "Web"
	default:
		return "Unknown"
	}
}

// RawHandle is a tagged native window reference.
//
// The value field is unexported so a handle always carries a kind; build
// one with the constructor for the platform variant. 16 bytes, value type.
type RawHandle struct {
	kind  Kind
	value uintptr
}

// AndroidNdk wraps an ANativeWindow* obtained from the NativeActivity
// callbacks (onNativeWindowCreated).
func AndroidNdk(nativeWindow uintptr) RawHandle {
	return RawHandle{kind: KindAndroidNdk, value: nativeWindow}
}

// Xlib wraps an X11 window id.
func Xlib(window uintptr) RawHandle {
	return RawHandle{kind: KindXlib, value: window}
}

// Wayland wraps a wl_surface*.
func Wayland(surface uintptr) RawHandle {
	return RawHandle{kind: KindWayland, value: surface}
}

// Win32 wraps an HWND.
func Win32(hwnd uintptr) RawHandle {
	return RawHandle{kind: KindWin32, value: hwnd}
}

// AppKit wraps an NSView*.
func AppKit(view uintptr) RawHandle {
	return RawHandle{kind: KindAppKit, value: view}
}

// Web wraps a canvas element id.
func Web(id uint32) RawHandle {
	return RawHandle{kind: KindWeb, value: uintptr(id)}
}

// Kind returns the platform variant.
func (h RawHandle) Kind() Kind { return h.kind }

// Value returns the raw pointer or id carried by the handle.
func (h RawHandle) Value() uintptr { return h.value }

// IsNil reports whether the handle carries a null reference.
func (h RawHandle) IsNil() bool { return h.value == 0 }

// String formats the handle as Kind(0x...).
func (h RawHandle) String() string {
	return fmt.Sprintf("%s(%#x)", h.kind, h.value)
}

// Provider is implemented by anything that owns a native window.
type Provider interface {
	// RawWindowHandle returns the native handle of the window. It is read
	// once per glcontext.New call.
	RawWindowHandle() RawHandle
}

// Handle adapts a bare RawHandle to Provider.
//
//	ctx, err := glcontext.New(window.Handle(window.AndroidNdk(win)), cfg)
type Handle RawHandle

// RawWindowHandle returns h as a RawHandle.
func (h Handle) RawWindowHandle() RawHandle { return RawHandle(h) }

// Ensure Handle implements Provider.
var _ Provider = Handle{}
