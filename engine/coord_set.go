package engine

// cellSet is a deduplicating set of cells that remembers insertion
// order, so a dead cell adjacent to several live cells is evaluated
// exactly once and candidate evaluation is reproducible run to run.
type cellSet struct {
	seen  map[Cell]struct{}
	order []Cell
}

func newCellSet() *cellSet {
	return &cellSet{
		seen: make(map[Cell]struct{}),
	}
}

func (s *cellSet) insert(c Cell) {
	if _, present := s.seen[c]; present {
		return
	}
	s.seen[c] = struct{}{}
	s.order = append(s.order, c)
}

func (s *cellSet) contains(c Cell) bool {
	_, present := s.seen[c]
	return present
}

// cells returns the members in insertion order.
func (s *cellSet) cells() []Cell {
	return s.order
}

func (s *cellSet) len() int {
	return len(s.order)
}
