// Package host exposes a bridge.Context to wasm guests as a wazero host module.
//
// Env registers one host function per guest entry point under a single
// import module (default "env"). Arguments arrive as raw i32/f32 values and
// are decoded according to the Signatures table. Memory arguments are read
// from the calling module's linear memory, fetched anew on every call so
// growth between calls is observed.
//
// A dispatch error traps the guest: the host function panics and wazero
// returns the error from the guest's exported call. Host GL errors are not
// traps; the guest observes them through glGetError.
//
// Typical setup:
//
//	rt := wazero.NewRuntime(ctx)
//	env, err := host.New(gl, host.WithLogger(logger))
//	if err != nil { ... }
//	if err := env.Register(ctx, rt); err != nil { ... }
//	guest, err := host.LoadGuest(ctx, rt, wasm, host.GuestConfig{WASI: true})
//	if err != nil { ... }
//	_, err = guest.Call(ctx, "main")
package host
