package frontier

// compactThreshold is the member count below which MinSet never compacts.
const compactThreshold = 32

// MinSet is the linear-scan Priority. Every ExtractMin walks the live members in
// insertion order and keeps the first strictly smaller key, so equal keys resolve
// to the earliest-inserted member.
type MinSet[T comparable] struct {
	key   Key[T]
	items []T
	alive []bool
	pos   map[T]int
	live  int
}

// NewMinSet returns an empty MinSet ordered by key.
func NewMinSet[T comparable](key Key[T]) *MinSet[T] {
	return &MinSet[T]{key: key, pos: make(map[T]int)}
}

// InsertAll appends items in order, skipping members already present.
func (s *MinSet[T]) InsertAll(items []T) {
	for _, it := range items {
		if _, ok := s.pos[it]; ok {
			continue
		}
		s.pos[it] = len(s.items)
		s.items = append(s.items, it)
		s.alive = append(s.alive, true)
		s.live++
	}
}

// ExtractMin removes and returns the first member with the smallest key.
func (s *MinSet[T]) ExtractMin() (item T, key int, ok bool) {
	best := -1
	for i, it := range s.items {
		if !s.alive[i] {
			continue
		}
		if k := s.key(it); best < 0 || k < key {
			best, key = i, k
		}
	}
	if best < 0 {
		return item, 0, false
	}
	item = s.items[best]
	s.Remove(item)

	return item, key, true
}

// Update is a no-op: keys are re-read on every scan.
func (s *MinSet[T]) Update(T) {}

// Remove drops item if present.
func (s *MinSet[T]) Remove(item T) {
	i, ok := s.pos[item]
	if !ok {
		return
	}
	delete(s.pos, item)
	s.alive[i] = false
	s.live--
	if len(s.items) > compactThreshold && s.live < len(s.items)/2 {
		s.compact()
	}
}

// compact drops tombstones while keeping insertion order.
func (s *MinSet[T]) compact() {
	items := make([]T, 0, s.live)
	for i, it := range s.items {
		if s.alive[i] {
			s.pos[it] = len(items)
			items = append(items, it)
		}
	}
	s.items = items
	s.alive = make([]bool, len(items))
	for i := range s.alive {
		s.alive[i] = true
	}
}

// Contains reports membership.
func (s *MinSet[T]) Contains(item T) bool {
	_, ok := s.pos[item]
	return ok
}

// IsEmpty reports whether no members remain.
func (s *MinSet[T]) IsEmpty() bool { return s.live == 0 }

// Len returns the number of members.
func (s *MinSet[T]) Len() int { return s.live }
