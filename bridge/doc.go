// Package bridge implements the dispatch surface between a guest and the
// host graphics API.
//
// A Context owns one handle table per resource kind and forwards each guest
// entry point to a glapi.GL, resolving handle arguments through the tables
// and memory arguments through a marshal.Marshaller.
//
// # Errors
//
// Only two operations inspect host status: CompileShader returns an
// errors.KindCompileFailure carrying the shader info log, and LinkProgram
// returns errors.KindLinkFailure carrying the program info log. The failed
// object stays allocated. Every other host error stays in the host's sticky
// flag until the guest polls GetError.
//
// Bridge-level failures (invalid handles, out-of-bounds memory ranges) are
// returned as structured errors and never forwarded to the host as absent
// objects.
//
// # Null Handle
//
// resource.Null unbinds in BindBuffer, BindTexture, BindFramebuffer,
// UseProgram and FramebufferTexture2D. Anywhere else it is an invalid handle.
package bridge
