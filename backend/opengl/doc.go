// Package opengl implements glapi.GL on desktop OpenGL 3.3 core via go-gl.
//
// Build with -tags opengl. Without the tag New always fails with
// errors.KindContextUnavailable, so binaries that only use the headless
// backend need no cgo toolchain.
//
// The caller owns the window and the context: make it current on a thread
// locked with runtime.LockOSThread before New, and dispatch every call from
// that thread.
package opengl
