package resource

// slotStore is the arena behind a Table. Slots are appended and tombstoned,
// never shifted, so an index always names the same logical slot.
type slotStore[T any] struct {
	entries  []entry[T]
	freeList []uint32
	reuse    bool
	live     int
}

type entry[T any] struct {
	value T
	valid bool
}

func newSlotStore[T any](reuse bool) *slotStore[T] {
	return &slotStore[T]{
		entries: make([]entry[T], 0, 16),
		reuse:   reuse,
	}
}

// create stores a value and returns its index.
// ok is false when the index space is exhausted.
func (s *slotStore[T]) create(value T) (uint32, bool) {
	e := entry[T]{value: value, valid: true}

	if s.reuse && len(s.freeList) > 0 {
		idx := s.freeList[len(s.freeList)-1]
		s.freeList = s.freeList[:len(s.freeList)-1]
		s.entries[idx] = e
		s.live++
		return idx, true
	}

	if uint64(len(s.entries)) > uint64(MaxHandle) {
		return 0, false
	}
	s.entries = append(s.entries, e)
	s.live++
	return uint32(len(s.entries) - 1), true //nolint:gosec // G115: bounded by MaxHandle
}

// get retrieves a value; state explains a miss.
func (s *slotStore[T]) get(idx uint32) (T, slotState) {
	var zero T
	if uint64(idx) >= uint64(len(s.entries)) {
		return zero, slotOutOfRange
	}
	e := s.entries[idx]
	if !e.valid {
		return zero, slotTombstone
	}
	return e.value, slotLive
}

// drop tombstones a slot and returns the value it held.
func (s *slotStore[T]) drop(idx uint32) (T, slotState) {
	value, state := s.get(idx)
	if state != slotLive {
		return value, state
	}
	var zero T
	s.entries[idx] = entry[T]{value: zero}
	s.live--
	if s.reuse {
		s.freeList = append(s.freeList, idx)
	}
	return value, slotLive
}

func (s *slotStore[T]) each(fn func(uint32, T) bool) {
	for i, e := range s.entries {
		if e.valid {
			if !fn(uint32(i), e.value) { //nolint:gosec // G115: bounded by MaxHandle
				break
			}
		}
	}
}

func (s *slotStore[T]) issued() int {
	return len(s.entries)
}

func (s *slotStore[T]) reset() {
	s.entries = nil
	s.freeList = nil
	s.live = 0
}

type slotState uint8

const (
	slotLive slotState = iota
	slotOutOfRange
	slotTombstone
)

func (st slotState) reason() string {
	switch st {
	case slotOutOfRange:
		return "handle was never issued"
	case slotTombstone:
		return "handle was deleted"
	default:
		return ""
	}
}
