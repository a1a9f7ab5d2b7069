// Package marshal materializes guest-memory arguments for host calls.
//
// Every read re-acquires the memory view through the MemoryAccessor, since a
// guest may grow (and so move) its memory between calls. Slices returned by
// ReadFloat32s and ReadBytes alias guest memory and must not be retained past
// the call that produced them.
package marshal
