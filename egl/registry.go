// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import "github.com/gogpu/gpucontext"

// DriverSystem is the name the platform libEGL driver registers under.
const DriverSystem = "system"

// drivers holds registered driver factories. The platform library is
// preferred over anything registered later.
var drivers = gpucontext.NewRegistry[Driver](
	gpucontext.WithPriority(DriverSystem),
)

// Register registers a driver factory under name, replacing any previous
// factory with that name. A factory may return nil when its library is not
// usable on this system.
//
// Typically called from init:
//
//	func init() {
//	    egl.Register("angle", newANGLEDriver)
//	}
func Register(name string, factory func() Driver) {
	drivers.Register(name, factory)
}

// Unregister removes the factory registered under name.
// This is useful for testing.
func Unregister(name string) {
	drivers.Unregister(name)
}

// Lookup returns the driver registered under name, or nil.
func Lookup(name string) Driver {
	return drivers.Get(name)
}

// Default returns the highest-priority registered driver, or nil when none
// is registered or the preferred one could not be loaded.
func Default() Driver {
	return drivers.Best()
}

// Available returns the registered driver names.
func Available() []string {
	return drivers.Available()
}
