// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcontext/egl"
)

// API selects the client API of the context.
type API uint8

const (
	// APIGL is desktop OpenGL. It is not supported and New rejects it.
	APIGL API = iota

	// APIGLES is OpenGL ES.
	APIGLES
)

// String returns the API name.
func (a API) String() string {
	switch a {
	case APIGL:
		return "GL"
	case APIGLES:
		return "GLES"
	default:
		return "Unknown"
	}
}

// Version is a client API version.
type Version struct {
	Major int
	Minor int
}

// Config describes the requested pixel format and context.
//
// New copies the Config; later changes do not affect a created Context.
type Config struct {
	// API must be APIGLES.
	API API

	// Color channel, depth and stencil sizes in bits. EGL treats them as
	// minimums and prefers larger sizes for color.
	RedBits     uint8
	GreenBits   uint8
	BlueBits    uint8
	AlphaBits   uint8
	DepthBits   uint8
	StencilBits uint8

	// Samples is the requested MSAA sample count. Zero requests no
	// multisample buffer (EGL_SAMPLE_BUFFERS 0); a multisample buffer with
	// zero samples cannot be requested. Negative values are treated as zero.
	Samples int

	// Version is the requested context version, e.g. {3, 0}.
	Version Version

	// Share, when non-nil, is a live Context whose objects (textures,
	// buffers, shaders) the new context shares. Share is only read during
	// New and must outlive the new Context.
	Share *Context
}

// DefaultConfig returns an OpenGL ES 3.0 configuration with RGBA8888
// color, a 24-bit depth buffer, an 8-bit stencil buffer and no MSAA.
func DefaultConfig() Config {
	return Config{
		API:         APIGLES,
		RedBits:     8,
		GreenBits:   8,
		BlueBits:    8,
		AlphaBits:   8,
		DepthBits:   24,
		StencilBits: 8,
		Samples:     0,
		Version:     Version{Major: 3, Minor: 0},
	}
}

// renderableBit returns the EGL_RENDERABLE_TYPE bit for the requested
// OpenGL ES major version. ES 3.x contexts are created on ES2 conformant
// configs; EGL_OPENGL_ES3_BIT_KHR would require EGL_KHR_create_context.
func (c Config) renderableBit() egl.Int {
	if c.Version.Major >= 2 {
		return egl.OpenGLES2Bit
	}
	return egl.OpenGLESBit
}

// configAttribs returns the None-terminated eglChooseConfig attribute list.
func (c Config) configAttribs() []egl.Int {
	api := c.renderableBit()
	samples := max(c.Samples, 0)
	sampleBuffers := egl.Int(0)
	if samples > 0 {
		sampleBuffers = 1
	}

	return []egl.Int{
		egl.SurfaceType, egl.WindowBit,
		egl.RenderableType, api,
		egl.Conformant, api,
		egl.RedSize, egl.Int(c.RedBits),
		egl.GreenSize, egl.Int(c.GreenBits),
		egl.BlueSize, egl.Int(c.BlueBits),
		egl.AlphaSize, egl.Int(c.AlphaBits),
		egl.DepthSize, egl.Int(c.DepthBits),
		egl.StencilSize, egl.Int(c.StencilBits),
		egl.SampleBuffers, sampleBuffers,
		egl.Samples, egl.Int(samples),
		egl.None,
	}
}

// contextAttribs returns the None-terminated eglCreateContext attribute list.
func (c Config) contextAttribs() []egl.Int {
	return []egl.Int{
		egl.ContextMajorVersion, egl.Int(c.Version.Major),
		egl.ContextMinorVersion, egl.Int(c.Version.Minor),
		egl.None,
	}
}

// ConfigInfo is what the driver reports for the chosen configuration.
type ConfigInfo struct {
	// ID is EGL_CONFIG_ID.
	ID int

	RedBits     int
	GreenBits   int
	BlueBits    int
	AlphaBits   int
	DepthBits   int
	StencilBits int
	Samples     int

	// NativeVisualID is EGL_NATIVE_VISUAL_ID, an AHardwareBuffer format
	// on Android (1 = RGBA_8888, 4 = RGB_565).
	NativeVisualID int
}

// String formats the info for logs, e.g.
// "id=3 rgba=8/8/8/8 depth=24 stencil=8 samples=0 visual=1".
func (i ConfigInfo) String() string {
	return fmt.Sprintf("id=%d rgba=%d/%d/%d/%d depth=%d stencil=%d samples=%d visual=%d",
		i.ID, i.RedBits, i.GreenBits, i.BlueBits, i.AlphaBits,
		i.DepthBits, i.StencilBits, i.Samples, i.NativeVisualID)
}

// ColorFormat maps the color channel sizes to a WebGPU texture format, or
// TextureFormatUndefined when there is no equivalent (e.g. RGB565).
func (i ConfigInfo) ColorFormat() gputypes.TextureFormat {
	switch {
	case i.RedBits == 8 && i.GreenBits == 8 && i.BlueBits == 8:
		return gputypes.TextureFormatRGBA8Unorm
	case i.RedBits == 10 && i.GreenBits == 10 && i.BlueBits == 10 && i.AlphaBits == 2:
		return gputypes.TextureFormatRGB10A2Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// DepthStencilFormat maps the depth and stencil sizes to a WebGPU texture
// format, or TextureFormatUndefined when the config has neither buffer or
// the combination has no equivalent.
func (i ConfigInfo) DepthStencilFormat() gputypes.TextureFormat {
	switch {
	case i.DepthBits == 24 && i.StencilBits == 8:
		return gputypes.TextureFormatDepth24PlusStencil8
	case i.DepthBits == 24 && i.StencilBits == 0:
		return gputypes.TextureFormatDepth24Plus
	case i.DepthBits == 16 && i.StencilBits == 0:
		return gputypes.TextureFormatDepth16Unorm
	case i.DepthBits == 0 && i.StencilBits == 8:
		return gputypes.TextureFormatStencil8
	default:
		return gputypes.TextureFormatUndefined
	}
}
