package gift128

// BlockSize is the GIFT-128 block size in bytes.
const BlockSize = 16

// KeySize is the GIFT-128 key size in bytes.
const KeySize = 16

// Block is a 128-bit plaintext or ciphertext block.
type Block [BlockSize]byte

// MaskedBlock is the byte-wise Boolean-masked counterpart of Block.
type MaskedBlock [BlockSize]MaskedByte

// Key is a 128-bit GIFT-128 key.
type Key [KeySize]byte

// MaskedKey is the byte-wise Boolean-masked counterpart of Key.
type MaskedKey [KeySize]MaskedByte

// packRoute carries out the bit routing shared by pack and maskedPack:
// first an intra-word swap-move that interleaves nibbles within each
// word, then an inter-word swap-move cascade that interleaves nibbles
// across all four words into the fixsliced bit order. Generic over
// wordOps so the identical routing runs for plain words (pack/unpack)
// and masked words (maskedPack/maskedUnpack) alike.
func packRoute[W wordOps[W]](s0, s1, s2, s3 W) (W, W, W, W) {
	s0 = swapMoveSingle(s0, 0x0a0a0a0a, 3)
	s0 = swapMoveSingle(s0, 0x00cc00cc, 6)
	s1 = swapMoveSingle(s1, 0x0a0a0a0a, 3)
	s1 = swapMoveSingle(s1, 0x00cc00cc, 6)
	s2 = swapMoveSingle(s2, 0x0a0a0a0a, 3)
	s2 = swapMoveSingle(s2, 0x00cc00cc, 6)
	s3 = swapMoveSingle(s3, 0x0a0a0a0a, 3)
	s3 = swapMoveSingle(s3, 0x00cc00cc, 6)

	s0, s1 = swapMove(s0, s1, 0x000f000f, 4)
	s0, s2 = swapMove(s0, s2, 0x000f000f, 8)
	s0, s3 = swapMove(s0, s3, 0x000f000f, 12)
	s1, s2 = swapMove(s1, s2, 0x00f000f0, 4)
	s1, s3 = swapMove(s1, s3, 0x00f000f0, 8)
	s2, s3 = swapMove(s2, s3, 0x0f000f00, 4)

	return s0, s1, s2, s3
}

// unpackRoute is the exact inverse of packRoute: the same swap-move
// operations are involutions, applied in reverse order.
func unpackRoute[W wordOps[W]](s0, s1, s2, s3 W) (W, W, W, W) {
	s2, s3 = swapMove(s2, s3, 0x0f000f00, 4)
	s1, s3 = swapMove(s1, s3, 0x00f000f0, 8)
	s1, s2 = swapMove(s1, s2, 0x00f000f0, 4)
	s0, s3 = swapMove(s0, s3, 0x000f000f, 12)
	s0, s2 = swapMove(s0, s2, 0x000f000f, 8)
	s0, s1 = swapMove(s0, s1, 0x000f000f, 4)

	s3 = swapMoveSingle(s3, 0x00cc00cc, 6)
	s3 = swapMoveSingle(s3, 0x0a0a0a0a, 3)
	s2 = swapMoveSingle(s2, 0x00cc00cc, 6)
	s2 = swapMoveSingle(s2, 0x0a0a0a0a, 3)
	s1 = swapMoveSingle(s1, 0x00cc00cc, 6)
	s1 = swapMoveSingle(s1, 0x0a0a0a0a, 3)
	s0 = swapMoveSingle(s0, 0x00cc00cc, 6)
	s0 = swapMoveSingle(s0, 0x0a0a0a0a, 3)

	return s0, s1, s2, s3
}

// pack produces the fixsliced State from a byte-ordered 16-byte block.
func pack(input Block) state[word] {
	s0 := word(input[6])<<24 | word(input[7])<<16 | word(input[14])<<8 | word(input[15])
	s1 := word(input[4])<<24 | word(input[5])<<16 | word(input[12])<<8 | word(input[13])
	s2 := word(input[2])<<24 | word(input[3])<<16 | word(input[10])<<8 | word(input[11])
	s3 := word(input[0])<<24 | word(input[1])<<16 | word(input[8])<<8 | word(input[9])

	s0, s1, s2, s3 = packRoute(s0, s1, s2, s3)
	return state[word]{s0: s0, s1: s1, s2: s2, s3: s3}
}

// unpack is the exact inverse of pack.
func unpack(s state[word]) Block {
	s0, s1, s2, s3 := unpackRoute(s.s0, s.s1, s.s2, s.s3)
	return Block{
		byte(s3 >> 24), byte(s3 >> 16 & 0xff),
		byte(s2 >> 24), byte(s2 >> 16 & 0xff),
		byte(s1 >> 24), byte(s1 >> 16 & 0xff),
		byte(s0 >> 24), byte(s0 >> 16 & 0xff),
		byte(s3 >> 8 & 0xff), byte(s3 & 0xff),
		byte(s2 >> 8 & 0xff), byte(s2 & 0xff),
		byte(s1 >> 8 & 0xff), byte(s1 & 0xff),
		byte(s0 >> 8 & 0xff), byte(s0 & 0xff),
	}
}

// maskedPack performs the identical bit routing as pack, but on a
// MaskedBlock: each share (the B bytes, then the Mu bytes) is assembled
// into its own word independently, and the routing runs once per share
// via the MaskedWord gadgets.
func maskedPack(input MaskedBlock) state[MaskedWord] {
	x0 := uint32(input[6].B)<<24 | uint32(input[7].B)<<16 | uint32(input[14].B)<<8 | uint32(input[15].B)
	x1 := uint32(input[4].B)<<24 | uint32(input[5].B)<<16 | uint32(input[12].B)<<8 | uint32(input[13].B)
	x2 := uint32(input[2].B)<<24 | uint32(input[3].B)<<16 | uint32(input[10].B)<<8 | uint32(input[11].B)
	x3 := uint32(input[0].B)<<24 | uint32(input[1].B)<<16 | uint32(input[8].B)<<8 | uint32(input[9].B)

	m0 := uint32(input[6].Mu)<<24 | uint32(input[7].Mu)<<16 | uint32(input[14].Mu)<<8 | uint32(input[15].Mu)
	m1 := uint32(input[4].Mu)<<24 | uint32(input[5].Mu)<<16 | uint32(input[12].Mu)<<8 | uint32(input[13].Mu)
	m2 := uint32(input[2].Mu)<<24 | uint32(input[3].Mu)<<16 | uint32(input[10].Mu)<<8 | uint32(input[11].Mu)
	m3 := uint32(input[0].Mu)<<24 | uint32(input[1].Mu)<<16 | uint32(input[8].Mu)<<8 | uint32(input[9].Mu)

	s0 := MaskedWord{X: x0, M: m0}
	s1 := MaskedWord{X: x1, M: m1}
	s2 := MaskedWord{X: x2, M: m2}
	s3 := MaskedWord{X: x3, M: m3}

	s0, s1, s2, s3 = packRoute(s0, s1, s2, s3)
	return state[MaskedWord]{s0: s0, s1: s1, s2: s2, s3: s3}
}

// maskedUnpack is the exact inverse of maskedPack.
func maskedUnpack(s state[MaskedWord]) MaskedBlock {
	s0, s1, s2, s3 := unpackRoute(s.s0, s.s1, s.s2, s.s3)

	byteAt := func(x uint32, shift uint) byte { return byte(x >> shift) }

	var out MaskedBlock
	xs := [4]uint32{s3.X, s2.X, s1.X, s0.X}
	ms := [4]uint32{s3.M, s2.M, s1.M, s0.M}
	for i, w := range xs {
		out[i*2] = MaskedByte{B: byteAt(w, 24), Mu: byteAt(ms[i], 24)}
		out[i*2+1] = MaskedByte{B: byteAt(w, 16), Mu: byteAt(ms[i], 16)}
	}
	for i, w := range xs {
		out[8+i*2] = MaskedByte{B: byteAt(w, 8), Mu: byteAt(ms[i], 8)}
		out[8+i*2+1] = MaskedByte{B: byteAt(w, 0), Mu: byteAt(ms[i], 0)}
	}
	return out
}

// bitslicedPack is the alternative entry point that interprets the block
// as already being four big-endian-loaded words, skipping the
// bit-permutation pack cost.
func bitslicedPack(input Block) state[word] {
	return state[word]{
		s0: word(beUint32(input[0:4])),
		s1: word(beUint32(input[4:8])),
		s2: word(beUint32(input[8:12])),
		s3: word(beUint32(input[12:16])),
	}
}

// bitslicedUnpack is the inverse of bitslicedPack.
func bitslicedUnpack(s state[word]) Block {
	var out Block
	putBeUint32(out[0:4], uint32(s.s0))
	putBeUint32(out[4:8], uint32(s.s1))
	putBeUint32(out[8:12], uint32(s.s2))
	putBeUint32(out[12:16], uint32(s.s3))
	return out
}

// bitslicedMaskedPack/bitslicedMaskedUnpack are the masked counterparts
// of bitslicedPack/bitslicedUnpack, assembling each share independently.
func bitslicedMaskedPack(input MaskedBlock) state[MaskedWord] {
	var xs, ms [4]byte
	var words [4]MaskedWord
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			xs[j] = input[i*4+j].B
			ms[j] = input[i*4+j].Mu
		}
		words[i] = MaskedWord{X: beUint32(xs[:]), M: beUint32(ms[:])}
	}
	return state[MaskedWord]{s0: words[0], s1: words[1], s2: words[2], s3: words[3]}
}

func bitslicedMaskedUnpack(s state[MaskedWord]) MaskedBlock {
	var out MaskedBlock
	words := [4]MaskedWord{s.s0, s.s1, s.s2, s.s3}
	for i, w := range words {
		var xb, mb [4]byte
		putBeUint32(xb[:], w.X)
		putBeUint32(mb[:], w.M)
		for j := 0; j < 4; j++ {
			out[i*4+j] = MaskedByte{B: xb[j], Mu: mb[j]}
		}
	}
	return out
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func putBeUint32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
