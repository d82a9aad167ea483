// Package crc8 implements the CRC-8/DARC checksum as a hash.Hash.
//
// A one byte digest is useless cryptographically, which is the point: it
// makes every digest in a small tree legible at a glance, so tests and the
// demonstration commands can print whole trees and hand check proofs. It
// plugs into the tree exactly where sha256.New does, swapping hash strength
// without touching any tree logic.
package crc8

import "hash"

// Size of a CRC-8 checksum in bytes.
const Size = 1

// Poly is the reversed (LSB first) form of the DARC generator polynomial
// x^8 + x^5 + x^4 + x^3 + 1 (0x39).
const Poly = 0x9C

func update(crc uint8, p []byte) uint8 {
	for _, b := range p {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ Poly
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}

// Checksum returns the CRC-8/DARC checksum of data.
func Checksum(data []byte) uint8 {
	return update(0, data)
}

type digest struct {
	crc uint8
}

// New returns a hash.Hash computing the CRC-8/DARC checksum.
func New() hash.Hash {
	return &digest{}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func (d *digest) Write(p []byte) (int, error) {
	d.crc = update(d.crc, p)
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	return append(in, d.crc)
}
