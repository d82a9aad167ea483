package merkletree

import (
	"bytes"
	"fmt"
)

// Side records which side of the authenticated path a proof step's sibling
// digest occupies. It is the side of the *sibling*, not of the node being
// authenticated: a verifier at a step with SideRight holds the left operand
// and appends the sibling.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// ProofStep is one rung of an inclusion proof: the digest of the sibling at
// that level and the side it occupies.
type ProofStep struct {
	Sibling []byte `cbor:"1,keyasint"`
	Side    Side   `cbor:"2,keyasint"`
}

// Proof is an inclusion proof for a single leaf: the sibling digests on the
// path from that leaf to the root, ordered leaf first. For a tree with
// capacity c it always has exactly Log2Pow2(c) steps.
//
// A proof is a point in time snapshot. The sibling digests are copied out of
// the tree when the proof is taken and do not track later SetAt calls.
type Proof struct {
	Steps []ProofStep `cbor:"1,keyasint"`
}

// InclusionProof returns the proof committing leaf leafIndex to the current
// root. Starting at the leaf position and ending below the root, each step
// captures the sibling digest of the current position and the sibling's side,
// then climbs to the parent.
//
// Siblings whose leaves have not been assigned still hold the placeholder, so
// proofs taken before the tree is fully populated verify only against the
// equally non canonical current root.
func (t *Tree) InclusionProof(leafIndex uint64) (Proof, error) {
	leafCount := t.LeafCount()
	if leafIndex >= leafCount {
		return Proof{}, fmt.Errorf("%w: leaf %d, capacity %d", ErrIndexOutOfRange, leafIndex, leafCount)
	}

	steps := make([]ProofStep, 0, Log2Pow2(leafCount))

	for pos := LeafPos(leafIndex, leafCount); !IsRoot(pos); pos = ParentPos(pos) {
		side := SideLeft
		if IsLeftChild(pos) {
			// the current node is the left child, so the witness is on the right
			side = SideRight
		}
		steps = append(steps, ProofStep{
			Sibling: bytes.Clone(t.store.get(SiblingPos(pos))),
			Side:    side,
		})
	}
	return Proof{Steps: steps}, nil
}
