// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

// EGL handle and value types. Handles are opaque driver identifiers; the
// zero value of each is the matching "no object" sentinel.
type (
	// Int is EGLint.
	Int int32
	// Display is an EGLDisplay connection.
	Display uintptr
	// Config is an EGLConfig frame buffer configuration descriptor.
	Config uintptr
	// Surface is an EGLSurface.
	Surface uintptr
	// Context is an EGLContext.
	Context uintptr
	// NativeDisplay is EGLNativeDisplayType.
	NativeDisplay uintptr
	// NativeWindow is EGLNativeWindowType (ANativeWindow* on Android).
	NativeWindow uintptr
)

// Sentinels.
const (
	DefaultDisplay NativeDisplay = 0
	NoDisplay      Display       = 0
	NoSurface      Surface       = 0
	NoContext      Context       = 0
)

// MaxConfigs is the capacity used when enumerating configurations.
const MaxConfigs = 64

// Config attributes.
const (
	AlphaSize      Int = 0x3021
	BlueSize       Int = 0x3022
	GreenSize      Int = 0x3023
	RedSize        Int = 0x3024
	DepthSize      Int = 0x3025
	StencilSize    Int = 0x3026
	ConfigID       Int = 0x3028
	NativeVisualID Int = 0x302E
	Samples        Int = 0x3031
	SampleBuffers  Int = 0x3032
	SurfaceType    Int = 0x3033
	None           Int = 0x3038
	RenderableType Int = 0x3040
	Conformant     Int = 0x3042
)

// Context attributes.
const (
	ContextMajorVersion Int = 0x3098
	ContextMinorVersion Int = 0x30FB
)

// Renderable type bits.
const (
	OpenGLESBit  Int = 0x0001
	OpenGLES2Bit Int = 0x0004
	OpenGLBit    Int = 0x0008
	OpenGLES3Bit Int = 0x0040
)

// Surface type bits.
const (
	PbufferBit Int = 0x0001
	WindowBit  Int = 0x0004
)

// QueryString targets.
const (
	Vendor     Int = 0x3053
	Version    Int = 0x3054
	Extensions Int = 0x3055
	ClientAPIs Int = 0x308D
)
