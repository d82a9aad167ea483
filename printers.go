package merkletree

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// debug utilities

// placeholderString stands in for slots whose leaf, or whose descendant
// leaves, have not been assigned yet.
const placeholderString = "-"

func digestString(digest []byte) string {
	if digest == nil {
		return placeholderString
	}
	return hex.EncodeToString(digest)
}

// TreeString renders the digests of t one line per level, root first, for
// diagnostics and the demonstration commands. For an 8 leaf tree over a one
// byte hasher the output looks like:
//
//	nodes=15 height=3
//	0b
//	4c de
//	58 28 00 d5
//	47 24 7e 56 ef 49 12 04
func TreeString(t *Tree) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "nodes=%d height=%d\n", t.store.size()-1, t.Height())

	for depth := 0; depth <= t.Height(); depth++ {
		row := make([]string, 0, 1<<depth)
		for pos := uint64(1) << depth; pos < uint64(2)<<depth; pos++ {
			row = append(row, digestString(t.store.get(pos)))
		}
		sb.WriteString(strings.Join(row, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// ProofString renders each step of proof as side:hex, leaf step first.
func ProofString(proof Proof) string {
	steps := make([]string, 0, len(proof.Steps))
	for _, step := range proof.Steps {
		steps = append(steps, fmt.Sprintf("%s:%s", step.Side, digestString(step.Sibling)))
	}
	return strings.Join(steps, " ")
}
