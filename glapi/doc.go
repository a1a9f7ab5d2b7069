// Package glapi defines the host graphics API the bridge dispatches to.
//
// GL mirrors the WebGL 1 rendering context: object creation returns opaque
// host objects, state is set through enums, and errors accumulate in a
// sticky flag read by GetError. Implementations live under backend/.
package glapi
