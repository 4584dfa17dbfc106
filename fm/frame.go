package fm

import "github.com/polyoa/utvpioa/polyhedron"

// frame pairs a projected System with the original-variable index that
// each of its local columns corresponds to, so that variable identity
// survives the recursion without re-deriving it from string labels at
// every level.
type frame struct {
	sys *polyhedron.System
	idx []int
}

// removeAt eliminates the local column at pos, returning the resulting
// frame with idx shortened to match.
func removeAt(fr frame, pos int, removeRedundant bool, filter polyhedron.RedundancyFilter) (frame, error) {
	next, err := fr.sys.RemoveVar(pos, removeRedundant, filter)
	if err != nil {
		return frame{}, err
	}
	idx := make([]int, 0, len(fr.idx)-1)
	idx = append(idx, fr.idx[:pos]...)
	idx = append(idx, fr.idx[pos+1:]...)
	return frame{sys: next, idx: idx}, nil
}
