package gift128

// roundConstants are the 40 fixsliced-oriented GIFT-128 LFSR constants.
// They are not derivable by a shift register in fixsliced layout: they
// already encode the classical GIFT-128 round constants routed through
// the same bit permutation as the state, so the literal table is the
// only correct source.
var roundConstants = [numRounds]uint32{
	0x10000008, 0x80018000, 0x54000002, 0x01010181,
	0x8000001f, 0x10888880, 0x6001e000, 0x51500002,
	0x03030180, 0x8000002f, 0x10088880, 0x60016000,
	0x41500002, 0x03030080, 0x80000027, 0x10008880,
	0x4001e000, 0x11500002, 0x03020180, 0x8000002b,
	0x10080880, 0x60014000, 0x01400002, 0x02020080,
	0x80000021, 0x10000080, 0x0001c000, 0x51000002,
	0x03010180, 0x8000002e, 0x10088800, 0x60012000,
	0x40500002, 0x01030080, 0x80000006, 0x10008808,
	0xc001a000, 0x14500002, 0x01020181, 0x8000001a,
}

// applySbox runs sbox on four values taken positionally, returning its
// four outputs in the same positional order. This lets callers mirror
// the quintuple round's permuted S-box applications directly, e.g.
// `s3, s1, s2, s0 = applySbox(s3, s1, s2, s0)`, instead of re-deriving
// the permutation by hand.
func applySbox[W wordOps[W]](a, b, c, d W) (W, W, W, W) {
	out := sbox(state[W]{s0: a, s1: b, s2: c, s3: d})
	return out.s0, out.s1, out.s2, out.s3
}

// applyInvSbox is the invSbox counterpart of applySbox.
func applyInvSbox[W wordOps[W]](a, b, c, d W) (W, W, W, W) {
	out := invSbox(state[W]{s0: a, s1: b, s2: c, s3: d})
	return out.s0, out.s1, out.s2, out.s3
}

// quintupleRound is the fixsliced composition of five GIFT-128 rounds:
// five S-box layers separated by four linear permutations and one final
// 32-bit rotation, each XORing in two round-key halves and one round
// constant. rk must hold exactly 10 round-key halves, rc exactly 5
// round constants.
func quintupleRound[W wordOps[W]](s state[W], rk [10]W, rc [5]uint32) state[W] {
	s = sbox(s)
	s.s3 = nibbleRor1(s.s3)
	s.s1 = nibbleRor2(s.s1)
	s.s2 = nibbleRor3(s.s2)
	s.s1 = s.s1.Xor(rk[0])
	s.s2 = s.s2.Xor(rk[1])
	s.s0 = s.s0.XorConst(rc[0])

	s.s3, s.s1, s.s2, s.s0 = applySbox(s.s3, s.s1, s.s2, s.s0)
	s.s0 = halfRor4(s.s0)
	s.s1 = halfRor8(s.s1)
	s.s2 = halfRor12(s.s2)
	s.s1 = s.s1.Xor(rk[2])
	s.s2 = s.s2.Xor(rk[3])
	s.s3 = s.s3.XorConst(rc[1])

	s = sbox(s)
	s.s3 = s.s3.RotateRight(16)
	s.s2 = s.s2.RotateRight(16)
	s.s1 = swapMoveSingle(s.s1, 0x55555555, 1)
	s.s2 = swapMoveSingle(s.s2, 0x00005555, 1)
	s.s3 = swapMoveSingle(s.s3, 0x55550000, 1)
	s.s1 = s.s1.Xor(rk[4])
	s.s2 = s.s2.Xor(rk[5])
	s.s0 = s.s0.XorConst(rc[2])

	s.s3, s.s1, s.s2, s.s0 = applySbox(s.s3, s.s1, s.s2, s.s0)
	s.s0 = byteRor6(s.s0)
	s.s1 = byteRor4(s.s1)
	s.s2 = byteRor2(s.s2)
	s.s1 = s.s1.Xor(rk[6])
	s.s2 = s.s2.Xor(rk[7])
	s.s3 = s.s3.XorConst(rc[3])

	s = sbox(s)
	s.s3 = s.s3.RotateRight(24)
	s.s1 = s.s1.RotateRight(16)
	s.s2 = s.s2.RotateRight(8)
	s.s1 = s.s1.Xor(rk[8])
	s.s2 = s.s2.Xor(rk[9])
	s.s0 = s.s0.XorConst(rc[4])

	s.s0, s.s3 = s.s3, s.s0
	return s
}

// invQuintupleRound is the inverse of quintupleRound: the sequence is
// reversed, every forward rotation/shift is replaced with its
// complement, and sbox is replaced with invSbox.
func invQuintupleRound[W wordOps[W]](s state[W], rk [10]W, rc [5]uint32) state[W] {
	s.s0, s.s3 = s.s3, s.s0

	s.s1 = s.s1.Xor(rk[8])
	s.s2 = s.s2.Xor(rk[9])
	s.s0 = s.s0.XorConst(rc[4])
	s.s3 = s.s3.RotateRight(8)
	s.s1 = s.s1.RotateRight(16)
	s.s2 = s.s2.RotateRight(24)
	s.s3, s.s1, s.s2, s.s0 = applyInvSbox(s.s3, s.s1, s.s2, s.s0)

	s.s1 = s.s1.Xor(rk[6])
	s.s2 = s.s2.Xor(rk[7])
	s.s3 = s.s3.XorConst(rc[3])
	s.s0 = byteRor2(s.s0)
	s.s1 = byteRor4(s.s1)
	s.s2 = byteRor6(s.s2)
	s = invSbox(s)

	s.s1 = s.s1.Xor(rk[4])
	s.s2 = s.s2.Xor(rk[5])
	s.s0 = s.s0.XorConst(rc[2])
	s.s3 = swapMoveSingle(s.s3, 0x55550000, 1)
	s.s1 = swapMoveSingle(s.s1, 0x55555555, 1)
	s.s2 = swapMoveSingle(s.s2, 0x00005555, 1)
	s.s3 = s.s3.RotateRight(16)
	s.s2 = s.s2.RotateRight(16)
	s.s3, s.s1, s.s2, s.s0 = applyInvSbox(s.s3, s.s1, s.s2, s.s0)

	s.s1 = s.s1.Xor(rk[2])
	s.s2 = s.s2.Xor(rk[3])
	s.s3 = s.s3.XorConst(rc[1])
	s.s0 = halfRor12(s.s0)
	s.s1 = halfRor8(s.s1)
	s.s2 = halfRor4(s.s2)
	s = invSbox(s)

	s.s1 = s.s1.Xor(rk[0])
	s.s2 = s.s2.Xor(rk[1])
	s.s0 = s.s0.XorConst(rc[0])
	s.s3 = nibbleRor3(s.s3)
	s.s1 = nibbleRor2(s.s1)
	s.s2 = nibbleRor1(s.s2)
	s.s3, s.s1, s.s2, s.s0 = applyInvSbox(s.s3, s.s1, s.s2, s.s0)

	return s
}

// rounds applies the full 40-round GIFT-128 forward permutation: eight
// quintuple rounds, indexing round keys rk[i*2..i*2+10] and round
// constants rc[i..i+5] for i in {0,5,10,...,35}.
func rounds[W wordOps[W]](s state[W], rk roundKeys[W]) state[W] {
	for i := 0; i < 8; i++ {
		var rkChunk [10]W
		var rcChunk [5]uint32
		copy(rkChunk[:], rk[i*10:i*10+10])
		copy(rcChunk[:], roundConstants[i*5:i*5+5])
		s = quintupleRound(s, rkChunk, rcChunk)
	}
	return s
}

// invRounds applies the full inverse permutation: the inverse quintuple
// round, iterated in reverse order.
func invRounds[W wordOps[W]](s state[W], rk roundKeys[W]) state[W] {
	for i := 7; i >= 0; i-- {
		var rkChunk [10]W
		var rcChunk [5]uint32
		copy(rkChunk[:], rk[i*10:i*10+10])
		copy(rcChunk[:], roundConstants[i*5:i*5+5])
		s = invQuintupleRound(s, rkChunk, rcChunk)
	}
	return s
}
