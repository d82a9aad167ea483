package merkletree

import (
	"bytes"
	"fmt"
	"hash"
)

// Tree is a fixed capacity merkle binary tree over a flat array of digest
// slots. The capacity and the hasher are fixed at construction; the only
// mutation is overwriting a leaf, which incrementally recomputes the digests
// on that leaf's path to the root.
//
// A Tree provides no internal synchronization. SetAt requires exclusive
// access; Root, Nodes, Leaves and InclusionProof are read only and may run
// concurrently with each other, but not with an in flight SetAt, which they
// could observe mid way through an ancestor update.
type Tree struct {
	store  *nodeStore
	hasher hash.Hash
}

// New creates a tree with capacity for leafCount leaves, all slots holding
// the unassigned placeholder. leafCount must be a non zero power of 2 or
// ErrInvalidLeafCount is returned. The hasher decides the digest format and
// is captured for the life of the tree; the same hasher construction must be
// used by any party verifying proofs taken from this tree.
func New(leafCount uint64, hasher hash.Hash) (*Tree, error) {
	store, err := newNodeStore(leafCount)
	if err != nil {
		return nil, err
	}
	return &Tree{store: store, hasher: hasher}, nil
}

// FromItems creates a tree whose capacity is len(items) and assigns item k to
// leaf k for every k. It is exactly New followed by SetAt in index order, and
// by the order independence of assignment it produces the same root as any
// other order of assigning the same items.
func FromItems(items [][]byte, hasher hash.Hash) (*Tree, error) {
	t, err := New(uint64(len(items)), hasher)
	if err != nil {
		return nil, err
	}
	for k, item := range items {
		// the index is in range by construction
		_ = t.SetAt(uint64(k), item)
	}
	return t, nil
}

// SetAt assigns item to leaf leafIndex, overwriting any previous assignment,
// and recomputes the digest of every ancestor on the path to the root. Each
// step reads the current node and its sibling, combines them in structural
// left then right order, and stores the result at the parent. The cost is
// log2(LeafCount) hashes regardless of how many leaves are assigned.
//
// A sibling that has never been assigned still holds the placeholder, so
// roots read before every leaf has been assigned at least once are not
// canonical.
func (t *Tree) SetAt(leafIndex uint64, item []byte) error {
	leafCount := t.LeafCount()
	if leafIndex >= leafCount {
		return fmt.Errorf("%w: leaf %d, capacity %d", ErrIndexOutOfRange, leafIndex, leafCount)
	}

	pos := LeafPos(leafIndex, leafCount)
	t.store.put(pos, HashItem(t.hasher, item))

	for !IsRoot(pos) {
		node := t.store.get(pos)
		sibling := t.store.get(SiblingPos(pos))

		var parent []byte
		if IsLeftChild(pos) {
			parent = HashNodePair(t.hasher, node, sibling)
		} else {
			parent = HashNodePair(t.hasher, sibling, node)
		}

		pos = ParentPos(pos)
		t.store.put(pos, parent)
	}
	return nil
}

// Root returns a copy of the digest at the root position. It commits to every
// leaf only once every leaf has been assigned at least once.
func (t *Tree) Root() []byte {
	return bytes.Clone(t.store.get(RootPos))
}

// LeafCount returns the fixed leaf capacity of the tree.
func (t *Tree) LeafCount() uint64 {
	return t.store.size() / 2
}

// Height returns the number of edges from any leaf to the root, which is
// log2 of the leaf capacity.
func (t *Tree) Height() int {
	return Log2Pow2(t.LeafCount())
}

// Nodes returns copies of every node digest in position order, root first.
// Entry i of the returned slice is the digest at position i+1. Mutating the
// returned slices does not affect the tree.
func (t *Tree) Nodes() [][]byte {
	nodes := make([][]byte, 0, t.store.size()-1)
	for pos := RootPos; pos < t.store.size(); pos++ {
		nodes = append(nodes, bytes.Clone(t.store.get(pos)))
	}
	return nodes
}

// Leaves returns copies of the leaf digests in leaf index order. Mutating the
// returned slices does not affect the tree.
func (t *Tree) Leaves() [][]byte {
	leafCount := t.LeafCount()
	leaves := make([][]byte, 0, leafCount)
	for leafIndex := uint64(0); leafIndex < leafCount; leafIndex++ {
		leaves = append(leaves, bytes.Clone(t.store.get(LeafPos(leafIndex, leafCount))))
	}
	return leaves
}
