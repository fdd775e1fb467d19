package chainmap

// Set is a key-only Table. It shares the chaining table, the values are
// zero-sized, so a Set costs only the keys and the chain headers.
type Set[K comparable] struct {
	t table[K, struct{}]
}

type SetOption[K comparable] func(s *Set[K])

// Override default hash function.
func WithSetHashFunc[K comparable](f HashFunc[K]) SetOption[K] {
	return func(s *Set[K]) {
		s.t.hashFunc = f
	}
}

func NewSet[K comparable](size int, opts ...SetOption[K]) (*Set[K], error) {
	var s Set[K]
	if err := s.t.init(size); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(&s)
	}

	return &s, nil
}

// Adds a key to the set. Returns whether it is new.
func (s *Set[K]) Add(key K) bool {
	return s.t.set(key, struct{}{})
}

func (s *Set[K]) Has(key K) bool {
	_, ok := s.t.get(key)
	return ok
}

// Removes a key. Returns whether it was in the set.
func (s *Set[K]) Remove(key K) bool {
	_, ok := s.t.delete(key)
	return ok
}

func (s *Set[K]) Len() int {
	return s.t.Len()
}

func (s *Set[K]) Size() int {
	return s.t.Size()
}

func (s *Set[K]) LoadFactor() float64 {
	return s.t.loadFactor()
}

func (s *Set[K]) Distribution() []int {
	return s.t.distribution()
}

func (s *Set[K]) Reset() {
	s.t.Reset()
}
