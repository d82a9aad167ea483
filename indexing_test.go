package merkletree

import "testing"

// The fixtures below refer to the position layout for an 8 leaf tree:
//
//	                 1
//	         /              \
//	        2                3
//	     /     \          /     \
//	    4       5        6       7
//	   / \     / \      / \     / \
//	  8   9  10   11  12   13 14   15

func TestParentPos(t *testing.T) {
	tests := []struct {
		pos  uint64
		want uint64
	}{
		{2, 1},
		{3, 1},
		{4, 2},
		{5, 2},
		{10, 5},
		{11, 5},
		{14, 7},
		{15, 7},
	}
	for _, tt := range tests {
		if got := ParentPos(tt.pos); got != tt.want {
			t.Errorf("ParentPos(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestSiblingPos(t *testing.T) {
	tests := []struct {
		pos  uint64
		want uint64
	}{
		{2, 3},
		{3, 2},
		{8, 9},
		{9, 8},
		{14, 15},
		{15, 14},
	}
	for _, tt := range tests {
		if got := SiblingPos(tt.pos); got != tt.want {
			t.Errorf("SiblingPos(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestIsLeftChild(t *testing.T) {
	tests := []struct {
		pos  uint64
		want bool
	}{
		{2, true},
		{3, false},
		{10, true},
		{11, false},
		{14, true},
		{15, false},
	}
	for _, tt := range tests {
		if got := IsLeftChild(tt.pos); got != tt.want {
			t.Errorf("IsLeftChild(%d) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestLeafPos(t *testing.T) {
	tests := []struct {
		leafIndex uint64
		leafCount uint64
		want      uint64
	}{
		{0, 8, 8},
		{3, 8, 11},
		{7, 8, 15},
		{0, 1, 1}, // a single leaf tree's leaf is its root
		{1, 2, 3},
	}
	for _, tt := range tests {
		if got := LeafPos(tt.leafIndex, tt.leafCount); got != tt.want {
			t.Errorf("LeafPos(%d, %d) = %d, want %d", tt.leafIndex, tt.leafCount, got, tt.want)
		}
	}
}

func TestPosDepth(t *testing.T) {
	tests := []struct {
		pos  uint64
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{7, 2},
		{8, 3},
		{15, 3},
	}
	for _, tt := range tests {
		if got := PosDepth(tt.pos); got != tt.want {
			t.Errorf("PosDepth(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

// Climbing from any leaf by ParentPos alone must reach the root in exactly
// the tree height steps, and every position on the way is the parent of the
// sibling of the previous position too.
func TestClimbToRoot(t *testing.T) {
	leafCount := uint64(16)
	for leafIndex := uint64(0); leafIndex < leafCount; leafIndex++ {
		steps := 0
		for pos := LeafPos(leafIndex, leafCount); !IsRoot(pos); pos = ParentPos(pos) {
			if ParentPos(SiblingPos(pos)) != ParentPos(pos) {
				t.Fatalf("sibling of %d has a different parent", pos)
			}
			steps++
		}
		if steps != Log2Pow2(leafCount) {
			t.Errorf("leaf %d reached the root in %d steps, want %d", leafIndex, steps, Log2Pow2(leafCount))
		}
	}
}
