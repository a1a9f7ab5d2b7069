// Package glbridge marshals calls from a sandboxed WebAssembly guest to a
// stateful, object-handle-based graphics API (the WebGL 1 call surface).
//
// The guest can only pass small integers, floats and (ptr, len) ranges of its
// own linear memory. The bridge gives it stable integer handles for host
// objects and materializes memory-backed arguments on every call.
//
// # Architecture Overview
//
//	glbridge/            Root package with the Memory and MemoryAccessor contract
//	├── resource/        Per-kind handle tables with tombstones
//	├── marshal/         Strings and typed views over guest memory
//	├── glapi/           Host graphics API interface and enum constants
//	├── bridge/          Dispatch surface and compile/link error translation
//	├── host/            wazero host module ("env") and guest loader
//	├── backend/         headless (pure Go) and opengl (go-gl) GL implementations
//	├── errors/          Structured error types
//	└── cmd/glrun/       CLI that runs a guest and prints its GL call trace
//
// # Quick Start
//
//	gl := headless.New()
//	env, err := host.New(gl, host.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rt := wazero.NewRuntime(ctx)
//	defer rt.Close(ctx)
//
//	if err := env.Register(ctx, rt); err != nil {
//	    log.Fatal(err)
//	}
//	guest, err := host.LoadGuest(ctx, rt, wasmBytes, host.GuestConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = guest.Call(ctx, "run")
//
// # Handles
//
// Handles are dense per kind and start at 0. A buffer handle 3 and a texture
// handle 3 are unrelated. Deleted handles are tombstoned and never reissued
// unless slot reuse is enabled. The value 0xFFFFFFFF (-1 as i32) is the null
// handle, accepted only where the host call takes a nullable object.
//
// # Memory Model
//
// Guest memory can grow between calls, which may move its backing buffer.
// The bridge re-acquires the memory view on every call and never keeps a
// view, pointer or slice past the call that obtained it.
//
// # Thread Safety
//
// A bridge Context serves one guest and one graphics context and must be
// driven from a single goroutine, like the graphics API behind it.
package glbridge
