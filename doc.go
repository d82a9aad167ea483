package merkletree

/*

# Fixed capacity merkle binary trees

Merkle Binary Trees (not tries) are the simplest merkle structure. This package
implements the fixed capacity flavour: the number of leaves is chosen up front,
must be a power of two, and never changes. In exchange for giving up appends we
get a very direct layout and very simple navigation:

 1. The whole tree, interior nodes included, lives in one flat array of digest
    slots. There are no node objects and no pointers to chase.
 2. Every node is identified by a 1 based position. Position 1 is the root and
    the leaves occupy the upper half of the array, [leafCount, 2*leafCount).
 3. Navigation is plain binary arithmetic on positions. The parent of i is i/2,
    the sibling of i is i^1, and i is a left child exactly when it is even.

# Layout

For a capacity of 8 leaves the positions are arranged like this, with slot 0 of
the backing array unused:

	                 1
	         /              \
	        2                3
	     /     \          /     \
	    4       5        6       7
	   / \     / \      / \     / \
	  8   9  10   11  12   13 14   15

Assigning a leaf recomputes only the digests on its path to the root, log2 of
the capacity slots, never the whole tree. The digest of an interior node is
H(left || right), where the operand order is decided by the structural side of
each child and never by the order in which the leaves were written. That is
what makes the final root independent of assignment order.

# Hashing

Nothing in this package cares which hash is used. Every operation that hashes
takes a [hash.Hash] and trees capture the one they are constructed with. Tests
and tooling can run the whole API over a one byte checksum (see the crc8
subpackage) while production callers inject sha256 or better, with no change
to the tree logic.

# Burden of knowledge

As with any flat position scheme, the low level position functions place a
burden of knowledge on the caller: asking for the parent or sibling of
position 1, or of a position outside the tree, yields nonsense rather than an
error. The Tree, Proof and verification APIs validate their caller supplied
leaf indices and return errors, so most code never touches raw positions.

# Proofs

An inclusion proof for a leaf is the ordered list of sibling digests on the
path from that leaf to the root, each carrying the side the sibling occupies.
Replaying the proof from a candidate item reproduces the root if and only if
the item is the one committed at that leaf. Verification never inspects the
tree: it is a pure fold over the proof, and rejection is by digest mismatch,
not by error.

*/
