package merkletree

import "errors"

var (
	ErrInvalidLeafCount = errors.New("the leaf count must be a non zero power of 2")
	ErrIndexOutOfRange  = errors.New("the leaf index is outside the capacity of the tree")
	ErrMalformedProof   = errors.New("the proof bytes are malformed")
)
