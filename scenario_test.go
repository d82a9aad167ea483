package merkletree

// Shared fixture: the canonical 8 leaf tree over the phonetic alphabet,
// hashed with the one byte crc8 checksum. Every digest below was hand
// checked, interior nodes included, so tree construction and proofs can
// legitimately be tested against it.
//
//	                      0b
//	           4c                    de
//	      58        28          00        d5
//	    47   24   7e   56     ef   49   12   04
//	  Alpha  |  Charlie |    Echo   |  Golf   |
//	       Bravo      Delta      Foxtrot   Hotel

var natoItems = [][]byte{
	[]byte("Alpha"),
	[]byte("Bravo"),
	[]byte("Charlie"),
	[]byte("Delta"),
	[]byte("Echo"),
	[]byte("Foxtrot"),
	[]byte("Golf"),
	[]byte("Hotel"),
}

// natoNodes holds the expected digest for every position, root first, so
// natoNodes[i] is the digest at position i+1. This is the layout Tree.Nodes
// returns.
var natoNodes = [][]byte{
	{0x0B},
	{0x4C}, {0xDE},
	{0x58}, {0x28}, {0x00}, {0xD5},
	{0x47}, {0x24}, {0x7E}, {0x56}, {0xEF}, {0x49}, {0x12}, {0x04},
}

var natoRoot = []byte{0x0B}

var natoLeafDigests = [][]byte{
	{0x47}, {0x24}, {0x7E}, {0x56}, {0xEF}, {0x49}, {0x12}, {0x04},
}
