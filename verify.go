package merkletree

import (
	"bytes"
	"hash"
)

// IncludedRoot replays proof against a candidate item and returns the root
// the pair commits to. At each step the running digest takes the structural
// position opposite the witness: with the sibling on the right the fold is
// H(running || sibling), with it on the left H(sibling || running).
//
// It never fails and deliberately does not compare against a known root: a
// wrong item, a corrupted proof or a tampered sibling simply produce a digest
// that will not match, and the comparison is the caller's (see
// VerifyInclusion). It touches no shared state and is safe to call from any
// number of goroutines, each with its own hasher.
func IncludedRoot(hasher hash.Hash, item []byte, proof Proof) []byte {
	root := HashItem(hasher, item)

	for _, step := range proof.Steps {
		if step.Side == SideRight {
			root = HashNodePair(hasher, root, step.Sibling)
		} else {
			root = HashNodePair(hasher, step.Sibling, root)
		}
	}
	return root
}

// VerifyInclusion reports whether item and proof reproduce root, which the
// caller obtained out of band from the tree holder. The hasher must be the
// same construction the tree was built with.
func VerifyInclusion(hasher hash.Hash, root []byte, item []byte, proof Proof) bool {
	return bytes.Equal(IncludedRoot(hasher, item, proof), root)
}
