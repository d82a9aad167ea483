package merkletree

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Canonical proof interchange. Two encodings are provided: a minimal binary
// layout for constrained or cross language verifiers, and CBOR for callers
// already carrying a CBOR stack.
//
// The binary layout is:
//
//	[0]    digest width in bytes, w
//	[1:5]  step count, big endian uint32
//	then per step, 1 + w bytes: a side tag (0 = left, 1 = right) followed by
//	the sibling digest
//
// Every digest in a proof has the same width because every digest came from
// the same hasher, so the width is carried once in the header.

var ErrUnevenDigests = errors.New("the proof digests are not all the same width")

const (
	proofHeaderBytes = 5

	sideTagLeft  = uint8(0)
	sideTagRight = uint8(1)
)

// MarshalBinary encodes the proof in the canonical binary layout. It fails
// only if the sibling digests are not all the same width, or the width does
// not fit the single header byte, either of which means the proof was not
// produced by a single hasher against one tree.
func (p Proof) MarshalBinary() ([]byte, error) {
	width := 0
	if len(p.Steps) > 0 {
		width = len(p.Steps[0].Sibling)
	}
	if width > 255 {
		return nil, fmt.Errorf("%w: width %d exceeds the header byte", ErrUnevenDigests, width)
	}

	b := make([]byte, proofHeaderBytes, proofHeaderBytes+len(p.Steps)*(1+width))
	b[0] = uint8(width)
	binary.BigEndian.PutUint32(b[1:], uint32(len(p.Steps)))

	for _, step := range p.Steps {
		if len(step.Sibling) != width {
			return nil, fmt.Errorf(
				"%w: step width %d, proof width %d", ErrUnevenDigests, len(step.Sibling), width)
		}
		tag := sideTagLeft
		if step.Side == SideRight {
			tag = sideTagRight
		}
		b = append(b, tag)
		b = append(b, step.Sibling...)
	}
	return b, nil
}

// UnmarshalBinary decodes a proof from the canonical binary layout,
// validating the header against the available bytes and rejecting unknown
// side tags and trailing data with ErrMalformedProof.
func (p *Proof) UnmarshalBinary(data []byte) error {
	if len(data) < proofHeaderBytes {
		return fmt.Errorf("%w: %d bytes is too short for the header", ErrMalformedProof, len(data))
	}
	width := int(data[0])
	count := int(binary.BigEndian.Uint32(data[1:]))

	if len(data) != proofHeaderBytes+count*(1+width) {
		return fmt.Errorf(
			"%w: %d bytes for %d steps of width %d", ErrMalformedProof, len(data), count, width)
	}

	steps := make([]ProofStep, 0, count)
	b := data[proofHeaderBytes:]
	for i := 0; i < count; i++ {
		var side Side
		switch b[0] {
		case sideTagLeft:
			side = SideLeft
		case sideTagRight:
			side = SideRight
		default:
			return fmt.Errorf("%w: unknown side tag %d", ErrMalformedProof, b[0])
		}
		var sibling []byte
		if width > 0 {
			sibling = append([]byte(nil), b[1:1+width]...)
		}
		steps = append(steps, ProofStep{Sibling: sibling, Side: side})
		b = b[1+width:]
	}
	p.Steps = steps
	return nil
}

// CBORCodec pairs the encode and decode modes used for proof interchange.
// Encoding is deterministic so that byte identical proofs can be compared and
// cached by their serialization.
type CBORCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewProofCodec() (CBORCodec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CBORCodec{}, err
	}
	dec, err := cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}.DecMode()
	if err != nil {
		return CBORCodec{}, err
	}
	return CBORCodec{enc: enc, dec: dec}, nil
}

func (c CBORCodec) MarshalProof(p Proof) ([]byte, error) {
	return c.enc.Marshal(p)
}

func (c CBORCodec) UnmarshalProof(data []byte) (Proof, error) {
	var p Proof
	if err := c.dec.Unmarshal(data, &p); err != nil {
		return Proof{}, fmt.Errorf("%w: %v", ErrMalformedProof, err)
	}
	return p, nil
}
