package merkletree

import "fmt"

// nodeStore owns one digest slot per tree position, 2*leafCount slots in all.
// Slot 0 is never addressed. A nil slot is the placeholder for a node whose
// leaf, or whose descendant leaves, have not yet been assigned; it is not a
// meaningful digest and a root derived from one is not canonical.
//
// Positions are trusted: the store performs no bounds checks beyond the
// construction time capacity validation, because every caller derives its
// positions from the indexing functions after validating the leaf index.
type nodeStore struct {
	nodes [][]byte
}

func newNodeStore(leafCount uint64) (*nodeStore, error) {
	if !IsPow2(uint(leafCount)) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLeafCount, leafCount)
	}
	return &nodeStore{nodes: make([][]byte, leafCount*2)}, nil
}

func (s *nodeStore) get(pos uint64) []byte {
	return s.nodes[pos]
}

func (s *nodeStore) put(pos uint64, value []byte) {
	s.nodes[pos] = value
}

// size is the slot count, which is always twice the leaf capacity.
func (s *nodeStore) size() uint64 {
	return uint64(len(s.nodes))
}
