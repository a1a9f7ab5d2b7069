// Package headless provides a pure-Go glapi.GL that keeps object state in
// memory and records every call.
//
// It follows WebGL semantics closely enough to drive the bridge without a
// GPU: object names start at 1, errors are sticky until GetError, shaders
// compile and programs link against simple source checks, and active
// attributes and uniforms are discovered from the attached sources.
package headless
