package gift128

// keyUpdate is the classical-doubling update step of the GIFT-128 key
// schedule, generic over wordOps.
func keyUpdate[W wordOps[W]](x W) W {
	a := x.Shr(12).AndConst(0x0000000f)
	b := x.AndConst(0x00000fff).Shl(4)
	c := x.Shr(2).AndConst(0x3fff0000)
	d := x.AndConst(0x00030000).Shl(14)
	return a.Xor(b).Xor(c).Xor(d)
}

func rearrangeRoundKey0[W wordOps[W]](x W) W {
	x = swapMoveSingle(x, 0x00550055, 9)
	x = swapMoveSingle(x, 0x000f000f, 12)
	x = swapMoveSingle(x, 0x00003333, 18)
	return swapMoveSingle(x, 0x000000ff, 24)
}

func rearrangeRoundKey1[W wordOps[W]](x W) W {
	x = swapMoveSingle(x, 0x11111111, 3)
	x = swapMoveSingle(x, 0x03030303, 6)
	x = swapMoveSingle(x, 0x000f000f, 12)
	return swapMoveSingle(x, 0x000000ff, 24)
}

func rearrangeRoundKey2[W wordOps[W]](x W) W {
	x = swapMoveSingle(x, 0x0000aaaa, 15)
	x = swapMoveSingle(x, 0x00003333, 18)
	x = swapMoveSingle(x, 0x0000f0f0, 12)
	return swapMoveSingle(x, 0x000000ff, 24)
}

func rearrangeRoundKey3[W wordOps[W]](x W) W {
	x = swapMoveSingle(x, 0x0a0a0a0a, 3)
	x = swapMoveSingle(x, 0x00cc00cc, 6)
	x = swapMoveSingle(x, 0x0000f0f0, 12)
	return swapMoveSingle(x, 0x000000ff, 24)
}

// keyTripleUpdate0..4 and keyDoubleUpdate1..4 are the nine fixed
// bit-permutation updates the extension phase applies. Each ORs
// disjoint-bit pieces of the same word, so — as with the linear layer
// in linear.go — it is safe and generic to implement the OR as Xor of
// the AndConst/shift/rotate results.
func keyTripleUpdate0[W wordOps[W]](x W) W {
	return x.AndConst(0x33333333).RotateRight(24).Xor(x.AndConst(0xcccccccc).RotateRight(16))
}

func keyDoubleUpdate1[W wordOps[W]](x W) W {
	a := x.Shr(4).AndConst(0x0f000f00)
	b := x.AndConst(0x0f000f00).Shl(4)
	c := x.Shr(6).AndConst(0x00030003)
	d := x.AndConst(0x003f003f).Shl(2)
	return a.Xor(b).Xor(c).Xor(d)
}

func keyTripleUpdate1[W wordOps[W]](x W) W {
	a := x.Shr(6).AndConst(0x03000300)
	b := x.AndConst(0x3f003f00).Shl(2)
	c := x.Shr(5).AndConst(0x00070007)
	d := x.AndConst(0x001f001f).Shl(3)
	return a.Xor(b).Xor(c).Xor(d)
}

func keyDoubleUpdate2[W wordOps[W]](x W) W {
	return x.AndConst(0xaaaaaaaa).RotateRight(24).Xor(x.AndConst(0x55555555).RotateRight(16))
}

func keyTripleUpdate2[W wordOps[W]](x W) W {
	return x.AndConst(0x55555555).RotateRight(24).Xor(x.AndConst(0xaaaaaaaa).RotateRight(20))
}

func keyDoubleUpdate3[W wordOps[W]](x W) W {
	a := x.Shr(2).AndConst(0x03030303)
	b := x.AndConst(0x03030303).Shl(2)
	c := x.Shr(1).AndConst(0x70707070)
	d := x.AndConst(0x10101010).Shl(3)
	return a.Xor(b).Xor(c).Xor(d)
}

func keyTripleUpdate3[W wordOps[W]](x W) W {
	a := x.Shr(18).AndConst(0x00003030)
	b := x.AndConst(0x01010101).Shl(3)
	c := x.Shr(14).AndConst(0x0000c0c0)
	d := x.AndConst(0x0000e0e0).Shl(15)
	e := x.Shr(1).AndConst(0x07070707)
	f := x.AndConst(0x00001010).Shl(19)
	return a.Xor(b).Xor(c).Xor(d).Xor(e).Xor(f)
}

func keyDoubleUpdate4[W wordOps[W]](x W) W {
	a := x.Shr(4).AndConst(0x0fff0000)
	b := x.AndConst(0x000f0000).Shl(12)
	c := x.Shr(8).AndConst(0x000000ff)
	d := x.AndConst(0x000000ff).Shl(8)
	return a.Xor(b).Xor(c).Xor(d)
}

func keyTripleUpdate4[W wordOps[W]](x W) W {
	a := x.Shr(6).AndConst(0x03ff0000)
	b := x.AndConst(0x003f0000).Shl(10)
	c := x.Shr(4).AndConst(0x00000fff)
	d := x.AndConst(0x0000000f).Shl(12)
	return a.Xor(b).Xor(c).Xor(d)
}

// scheduleFromSeed runs the classical-doubling, rearrangement, and
// extension phases of the key schedule from four already-seeded round
// keys, producing all 80 entries. It is generic over wordOps: none of
// the three phases needs to know whether W is word or MaskedWord.
func scheduleFromSeed[W wordOps[W]](seed [4]W) roundKeys[W] {
	var rk roundKeys[W]
	rk[0], rk[1], rk[2], rk[3] = seed[0], seed[1], seed[2], seed[3]

	for i := 0; i < 16; i += 2 {
		rk[i+4] = rk[i+1]
		rk[i+5] = keyUpdate(rk[i])
	}

	for i := 0; i < 20; i += 10 {
		rk[i] = rearrangeRoundKey0(rk[i])
		rk[i+1] = rearrangeRoundKey0(rk[i+1])
		rk[i+2] = rearrangeRoundKey1(rk[i+2])
		rk[i+3] = rearrangeRoundKey1(rk[i+3])
		rk[i+4] = rearrangeRoundKey2(rk[i+4])
		rk[i+5] = rearrangeRoundKey2(rk[i+5])
		rk[i+6] = rearrangeRoundKey3(rk[i+6])
		rk[i+7] = rearrangeRoundKey3(rk[i+7])
	}

	for i := 20; i < numRoundKeys; i += 10 {
		rk[i] = rk[i-19]
		rk[i+1] = keyTripleUpdate0(rk[i-20])
		rk[i+2] = keyDoubleUpdate1(rk[i-17])
		rk[i+3] = keyTripleUpdate1(rk[i-18])
		rk[i+4] = keyDoubleUpdate2(rk[i-15])
		rk[i+5] = keyTripleUpdate2(rk[i-16])
		rk[i+6] = keyDoubleUpdate3(rk[i-13])
		rk[i+7] = keyTripleUpdate3(rk[i-14])
		rk[i+8] = keyDoubleUpdate4(rk[i-11])
		rk[i+9] = keyTripleUpdate4(rk[i-12])
		rk[i] = swapMoveSingle(rk[i], 0x00003333, 16)
		rk[i] = swapMoveSingle(rk[i], 0x55554444, 1)
		rk[i+1] = swapMoveSingle(rk[i+1], 0x55551100, 1)
	}

	return rk
}

// PrecomputeRoundKeys expands a 128-bit key into the 80 fixsliced
// round-key halves, computed once and reused for every block encrypted
// or decrypted under that key.
func PrecomputeRoundKeys(key Key) RoundKeys {
	seed := [4]word{
		word(beUint32(key[12:16])),
		word(beUint32(key[4:8])),
		word(beUint32(key[8:12])),
		word(beUint32(key[0:4])),
	}
	return scheduleFromSeed(seed)
}

// PrecomputeMaskedRoundKeys is the masked counterpart of
// PrecomputeRoundKeys. The seed step loads each 32-bit half from its
// four MaskedBytes in little-endian order, then applies the SwapBytes
// gadget. SwapBytes on a MaskedWord built this way can leak which bits
// belong to which byte of the key, since the byte boundaries it permutes
// are public; this routine does not attempt to close that gap. See
// DESIGN.md for the reasoning.
func PrecomputeMaskedRoundKeys(key MaskedKey) MaskedRoundKeys {
	seed := [4]MaskedWord{
		maskedSeedWord(key[12], key[13], key[14], key[15]),
		maskedSeedWord(key[4], key[5], key[6], key[7]),
		maskedSeedWord(key[8], key[9], key[10], key[11]),
		maskedSeedWord(key[0], key[1], key[2], key[3]),
	}
	return scheduleFromSeed(seed)
}

// maskedSeedWord loads four masked bytes in little-endian order (each
// share independently) and byte-swaps the result, exactly mirroring
// `u32::from_le_bytes([...]).swap_bytes()` applied to a MaskedWord.
func maskedSeedWord(b0, b1, b2, b3 MaskedByte) MaskedWord {
	x := uint32(b0.B) | uint32(b1.B)<<8 | uint32(b2.B)<<16 | uint32(b3.B)<<24
	m := uint32(b0.Mu) | uint32(b1.Mu)<<8 | uint32(b2.Mu)<<16 | uint32(b3.Mu)<<24
	return MaskedWord{X: x, M: m}.SwapBytes()
}
