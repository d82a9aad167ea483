package merkletree

import "hash"

// HashItem returns H(item), the leaf digest for a caller supplied item.
// ** the hasher is reset **
func HashItem(hasher hash.Hash, item []byte) []byte {
	hasher.Reset()
	hasher.Write(item)
	return hasher.Sum(nil)
}

// HashNodePair returns H(left || right), the digest of an interior node whose
// children carry the digests left and right. The operands are always the
// structural left and right children, never "first written" and "second
// written"; keeping that discipline is what makes the root independent of
// leaf assignment order.
// ** the hasher is reset **
func HashNodePair(hasher hash.Hash, left []byte, right []byte) []byte {
	hasher.Reset()
	hasher.Write(left)
	hasher.Write(right)
	return hasher.Sum(nil)
}
