// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcontext

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/gogpu/glcontext/egl"
	"github.com/gogpu/glcontext/internal/fakeegl"
)

// recordingFormatter records SetBuffersFormat calls together with the
// number of surface binds the driver had seen at that point.
type recordingFormatter struct {
	drv   *fakeegl.Driver
	err   error
	calls []formatCall
}

type formatCall struct {
	win        egl.NativeWindow
	format     int32
	bindsSoFar int
}

func (f *recordingFormatter) SetBuffersFormat(win egl.NativeWindow, format int32) error {
	f.calls = append(f.calls, formatCall{
		win:        win,
		format:     format,
		bindsSoFar: len(f.drv.CallsOf("eglCreateWindowSurface")),
	})
	return f.err
}

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.driver != nil || o.logger != nil || o.formatter != nil || o.nativeVisual {
		t.Errorf("defaultOptions() = %+v, want zero collaborators", o)
	}
}

func TestOptionsApply(t *testing.T) {
	drv := &fakeegl.Driver{}
	logger := slog.New(slog.DiscardHandler)
	f := &recordingFormatter{drv: drv}

	o := defaultOptions()
	for _, opt := range []Option{WithDriver(drv), WithLogger(logger), WithWindowFormatter(f), WithNativeVisualFormat()} {
		opt(&o)
	}

	if o.driver != drv {
		t.Error("WithDriver did not set the driver")
	}
	if o.logger != logger {
		t.Error("WithLogger did not set the logger")
	}
	if o.formatter != f {
		t.Error("WithWindowFormatter did not set the formatter")
	}
	if !o.nativeVisual {
		t.Error("WithNativeVisualFormat did not set nativeVisual")
	}
}

func TestWithWindowFormatter(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"formatter succeeds", nil},
		{"formatter fails", errors.New("setBuffersGeometry: -22")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv := &fakeegl.Driver{
				Configs:       []egl.Config{0x51, 0x52, 0x53},
				SurfaceErrors: map[egl.Config]egl.ErrorCode{0x51: egl.BadMatch, 0x52: egl.BadMatch},
				Attribs: map[egl.Config]map[egl.Int]egl.Int{
					0x51: {egl.NativeVisualID: 1},
					0x52: {egl.NativeVisualID: 4},
					0x53: {egl.NativeVisualID: 2},
				},
			}
			f := &recordingFormatter{drv: drv, err: tt.err}

			ctx := newTestContext(t, drv, DefaultConfig(), WithWindowFormatter(f))
			defer ctx.Destroy()

			want := []formatCall{
				{win: 0xA11, format: 1, bindsSoFar: 0},
				{win: 0xA11, format: 4, bindsSoFar: 1},
				{win: 0xA11, format: 2, bindsSoFar: 2},
			}
			if len(f.calls) != len(want) {
				t.Fatalf("formatter called %d times, want %d", len(f.calls), len(want))
			}
			for i := range want {
				if f.calls[i] != want[i] {
					t.Errorf("call %d = %+v, want %+v", i, f.calls[i], want[i])
				}
			}
		})
	}
}

func TestWithNativeVisualFormatUnavailable(t *testing.T) {
	// No platform formatter exists off Android; New proceeds without one.
	drv := &fakeegl.Driver{}
	ctx := newTestContext(t, drv, DefaultConfig(), WithNativeVisualFormat())
	defer ctx.Destroy()

	if !ctx.IsCurrent() {
		t.Error("IsCurrent() = false")
	}
}
