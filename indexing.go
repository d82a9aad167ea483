package merkletree

import "math/bits"

// Navigation around the flat tree storage is plain binary arithmetic on
// 1 based positions. These functions are the only place that knowledge of the
// complete-binary-tree-as-array layout lives; everything else treats
// positions as opaque. They are defined for all positions > 1 and place the
// burden of knowledge on the caller: asking for the parent or sibling of the
// root yields nonsense, not an error.

// RootPos is the position of the root node.
const RootPos = uint64(1)

// ParentPos returns the position of the parent of pos. The truncating shift
// is correct for both children: a left child at 2k and a right child at 2k+1
// both map to k.
func ParentPos(pos uint64) uint64 {
	return pos >> 1
}

// SiblingPos returns the position of the sibling of pos. Flipping the low bit
// moves right from an even (left) child and left from an odd (right) child.
func SiblingPos(pos uint64) uint64 {
	return pos ^ 1
}

// IsLeftChild reports whether pos is the left child of its parent.
func IsLeftChild(pos uint64) bool {
	return pos&1 == 0
}

// IsRoot reports whether pos is the root position.
func IsRoot(pos uint64) bool {
	return pos == RootPos
}

// LeafPos returns the position of leaf leafIndex in a tree with capacity
// leafCount. The leaves occupy the upper half of the position range,
// [leafCount, 2*leafCount).
func LeafPos(leafIndex uint64, leafCount uint64) uint64 {
	return leafIndex + leafCount
}

// PosDepth returns the number of edges between pos and the root. The root is
// at depth 0 and the leaves of a tree with capacity c are at depth Log2Pow2(c).
func PosDepth(pos uint64) int {
	return bits.Len64(pos) - 1
}
