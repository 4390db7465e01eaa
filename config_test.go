// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext

import (
	"slices"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcontext/egl"
)

func TestAPIString(t *testing.T) {
	tests := []struct {
		api  API
		want string
	}{
		{APIGL, "GL"},
		{APIGLES, "GLES"},
		{API(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.api.String(); got != tt.want {
			t.Errorf("API(%d).String() = %q, want %q", tt.api, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.API != APIGLES {
		t.Errorf("API = %v, want GLES", cfg.API)
	}
	if cfg.Version != (Version{3, 0}) {
		t.Errorf("Version = %+v, want 3.0", cfg.Version)
	}
	if cfg.RedBits != 8 || cfg.GreenBits != 8 || cfg.BlueBits != 8 || cfg.AlphaBits != 8 {
		t.Errorf("color bits = %d/%d/%d/%d, want 8/8/8/8", cfg.RedBits, cfg.GreenBits, cfg.BlueBits, cfg.AlphaBits)
	}
	if cfg.DepthBits != 24 || cfg.StencilBits != 8 {
		t.Errorf("depth/stencil = %d/%d, want 24/8", cfg.DepthBits, cfg.StencilBits)
	}
	if cfg.Samples != 0 || cfg.Share != nil {
		t.Errorf("Samples = %d, Share = %v, want 0 and nil", cfg.Samples, cfg.Share)
	}
}

func TestRenderableBit(t *testing.T) {
	tests := []struct {
		version Version
		want    egl.Int
	}{
		{Version{1, 1}, egl.OpenGLESBit},
		{Version{2, 0}, egl.OpenGLES2Bit},
		{Version{3, 0}, egl.OpenGLES2Bit},
		{Version{3, 2}, egl.OpenGLES2Bit},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Version = tt.version
		if got := cfg.renderableBit(); got != tt.want {
			t.Errorf("renderableBit() for %d.%d = %#x, want %#x", tt.version.Major, tt.version.Minor, got, tt.want)
		}
		attribs := cfg.configAttribs()
		if attribs[3] != tt.want || attribs[5] != tt.want {
			t.Errorf("RENDERABLE_TYPE/CONFORMANT for %d.%d = %#x/%#x, want %#x",
				tt.version.Major, tt.version.Minor, attribs[3], attribs[5], tt.want)
		}
	}
}

func TestConfigAttribs(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() Config
		want []egl.Int
	}{
		{
			name: "default",
			cfg:  DefaultConfig,
			want: []egl.Int{
				egl.SurfaceType, egl.WindowBit,
				egl.RenderableType, egl.OpenGLES2Bit,
				egl.Conformant, egl.OpenGLES2Bit,
				egl.RedSize, 8, egl.GreenSize, 8, egl.BlueSize, 8, egl.AlphaSize, 8,
				egl.DepthSize, 24, egl.StencilSize, 8,
				egl.SampleBuffers, 0, egl.Samples, 0,
				egl.None,
			},
		},
		{
			name: "es2 rgb565 msaa",
			cfg: func() Config {
				return Config{
					API: APIGLES, RedBits: 5, GreenBits: 6, BlueBits: 5,
					DepthBits: 16, Samples: 4, Version: Version{2, 0},
				}
			},
			want: []egl.Int{
				egl.SurfaceType, egl.WindowBit,
				egl.RenderableType, egl.OpenGLES2Bit,
				egl.Conformant, egl.OpenGLES2Bit,
				egl.RedSize, 5, egl.GreenSize, 6, egl.BlueSize, 5, egl.AlphaSize, 0,
				egl.DepthSize, 16, egl.StencilSize, 0,
				egl.SampleBuffers, 1, egl.Samples, 4,
				egl.None,
			},
		},
		{
			name: "es1 negative samples",
			cfg: func() Config {
				return Config{API: APIGLES, RedBits: 8, GreenBits: 8, BlueBits: 8, Samples: -2, Version: Version{1, 1}}
			},
			want: []egl.Int{
				egl.SurfaceType, egl.WindowBit,
				egl.RenderableType, egl.OpenGLESBit,
				egl.Conformant, egl.OpenGLESBit,
				egl.RedSize, 8, egl.GreenSize, 8, egl.BlueSize, 8, egl.AlphaSize, 0,
				egl.DepthSize, 0, egl.StencilSize, 0,
				egl.SampleBuffers, 0, egl.Samples, 0,
				egl.None,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg().configAttribs()
			if !slices.Equal(got, tt.want) {
				t.Errorf("configAttribs() =\n%v\nwant\n%v", got, tt.want)
			}
			if got[len(got)-1] != egl.None {
				t.Error("attribute list is not None-terminated")
			}
		})
	}
}

func TestContextAttribs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = Version{Major: 3, Minor: 2}
	want := []egl.Int{egl.ContextMajorVersion, 3, egl.ContextMinorVersion, 2, egl.None}
	if got := cfg.contextAttribs(); !slices.Equal(got, want) {
		t.Errorf("contextAttribs() = %v, want %v", got, want)
	}
}

func TestConfigInfoString(t *testing.T) {
	i := ConfigInfo{ID: 3, RedBits: 8, GreenBits: 8, BlueBits: 8, AlphaBits: 8, DepthBits: 24, StencilBits: 8, NativeVisualID: 1}
	want := "id=3 rgba=8/8/8/8 depth=24 stencil=8 samples=0 visual=1"
	if got := i.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestConfigInfoFormats(t *testing.T) {
	tests := []struct {
		name      string
		info      ConfigInfo
		wantColor gputypes.TextureFormat
		wantDS    gputypes.TextureFormat
	}{
		{
			name:      "rgba8 d24s8",
			info:      ConfigInfo{RedBits: 8, GreenBits: 8, BlueBits: 8, AlphaBits: 8, DepthBits: 24, StencilBits: 8},
			wantColor: gputypes.TextureFormatRGBA8Unorm,
			wantDS:    gputypes.TextureFormatDepth24PlusStencil8,
		},
		{
			name:      "rgbx8 d24",
			info:      ConfigInfo{RedBits: 8, GreenBits: 8, BlueBits: 8, DepthBits: 24},
			wantColor: gputypes.TextureFormatRGBA8Unorm,
			wantDS:    gputypes.TextureFormatDepth24Plus,
		},
		{
			name:      "rgb10a2 d16",
			info:      ConfigInfo{RedBits: 10, GreenBits: 10, BlueBits: 10, AlphaBits: 2, DepthBits: 16},
			wantColor: gputypes.TextureFormatRGB10A2Unorm,
			wantDS:    gputypes.TextureFormatDepth16Unorm,
		},
		{
			name:      "rgb565 stencil only",
			info:      ConfigInfo{RedBits: 5, GreenBits: 6, BlueBits: 5, StencilBits: 8},
			wantColor: gputypes.TextureFormatUndefined,
			wantDS:    gputypes.TextureFormatStencil8,
		},
		{
			name:      "no depth or stencil",
			info:      ConfigInfo{RedBits: 8, GreenBits: 8, BlueBits: 8},
			wantColor: gputypes.TextureFormatRGBA8Unorm,
			wantDS:    gputypes.TextureFormatUndefined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.ColorFormat(); got != tt.wantColor {
				t.Errorf("ColorFormat() = %v, want %v", got, tt.wantColor)
			}
			if got := tt.info.DepthStencilFormat(); got != tt.wantDS {
				t.Errorf("DepthStencilFormat() = %v, want %v", got, tt.wantDS)
			}
		})
	}
}
